package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type goOpenAIClient struct {
	baseURL string
}

func newGoOpenAIClient(baseURL string) *goOpenAIClient {
	// go-openai appends "/chat/completions" to the base URL as-is.
	return &goOpenAIClient{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Complete builds a client for the request's key; the key is only known at
// request time.
func (c *goOpenAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	config := openai.DefaultConfig(req.APIKey)
	if c.baseURL != "" {
		config.BaseURL = c.baseURL
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: req.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: req.System},
				{Role: openai.ChatMessageRoleUser, Content: req.User},
			},
			MaxTokens:   req.MaxTokens,
			Temperature: float32(req.Temperature),
			TopP:        float32(req.TopP),
			Stream:      false,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
