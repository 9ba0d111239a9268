package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ppiankov/fnoltriage/internal/model"
)

// openAIProvider implements Provider using OpenAI's chat completions API.
type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(cfg model.LLMConfig) (*openAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = openai.GPT4oMini
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  m,
	}, nil
}

func (p *openAIProvider) Name() string {
	return "openai"
}

func (p *openAIProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an insurance claims assistant. Write concise, factual notes for human adjusters. Never invent facts that are not in the provided data.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
