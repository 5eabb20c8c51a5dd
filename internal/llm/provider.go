package llm

import "context"

// Provider defines the interface for LLM text providers
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete sends a free-text prompt and returns the reply text
	Complete(ctx context.Context, prompt string) (string, error)
}
