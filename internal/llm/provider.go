package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/fnoltriage/internal/model"
)

// Provider is an LLM backend capable of drafting an adjuster note.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete generates text for the given prompt.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// NewProvider creates a provider from configuration. An empty provider
// name disables note generation and returns nil without error.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIProvider(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", cfg.Provider)
	}
}
