package ai

import (
	"card_words_ai/internal/ai/prompts"
)

// Fixed sampling parameters; they are not tunable per request.
const (
	DefaultModel = "mixtral-8x7b-32768"
	Temperature  = 0.7
	MaxTokens    = 1024
	TopP         = 1.0
)

// KeyFunc returns the upstream API credential. It is called on every
// request so a missing key is detected at request time.
type KeyFunc func() string

type Generator struct {
	client       ChatClient
	apiKey       KeyFunc
	model        string
	systemPrompt string
}

func NewGenerator(client ChatClient, apiKey KeyFunc, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		client:       client,
		apiKey:       apiKey,
		model:        model,
		systemPrompt: prompts.GetCardSystemPrompt(),
	}
}

// Configured reports whether an API credential is currently available.
func (g *Generator) Configured() bool {
	return g.apiKey != nil && g.apiKey() != ""
}

func (g *Generator) Model() string {
	return g.model
}
