package ai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs.
// This supports services like OpenRouter, Azure OpenAI, Ollama, etc.
// JSON mode is not requested because many of them reject response_format;
// the prompt already demands a JSON object.
type CompatibleProvider struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewCompatibleProvider creates a new OpenAI-compatible provider.
func NewCompatibleProvider(apiKey, baseURL, model string, temperature float64) (*CompatibleProvider, error) {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &CompatibleProvider{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

// Name returns the provider name.
func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// Model returns the configured model.
func (p *CompatibleProvider) Model() string {
	return p.model
}

// CompleteJSON runs a plain chat completion.
func (p *CompatibleProvider) CompleteJSON(ctx context.Context, systemPrompt, content string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    chatMessages(systemPrompt, content),
		Temperature: openai.Float(p.temperature),
	}

	// Explicitly disable reasoning
	opts := []option.RequestOption{
		option.WithJSONSet("reasoning", map[string]interface{}{
			"enabled": false,
		}),
	}

	return firstChoice(p.client.Chat.Completions.New(ctx, params, opts...))
}
