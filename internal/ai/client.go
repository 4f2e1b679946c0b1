package ai

import (
	"context"
	"fmt"
	"strings"
)

// SDK names accepted by NewChatClient.
const (
	SDKGoOpenAI = "go-openai"
	SDKOpenAIGo = "openai-go"
)

// ChatRequest is a single-turn chat completion: one system message, one
// user message, fixed sampling parameters.
type ChatRequest struct {
	APIKey      string
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// ChatClient sends one chat completion and returns the first choice's text.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// NewChatClient returns the client for the configured SDK, talking to an
// OpenAI-compatible endpoint at baseURL.
func NewChatClient(sdk, baseURL string) (ChatClient, error) {
	switch strings.ToLower(strings.TrimSpace(sdk)) {
	case "", SDKGoOpenAI:
		return newGoOpenAIClient(baseURL), nil
	case SDKOpenAIGo:
		return newOpenAIGoClient(baseURL), nil
	default:
		return nil, fmt.Errorf("llm sdk %q not supported", sdk)
	}
}
