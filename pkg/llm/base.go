// Package llm provides interfaces and utilities for chat-completion providers.
//
// It defines the Provider interface that all completion implementations must
// satisfy, along with message types, generation options, and a small error
// taxonomy that callers can use to distinguish failure modes.
package llm

import "context"

// Provider defines the interface for chat-completion providers.
//
// All implementations (DeepSeek, OpenAI, etc.) must implement this interface.
type Provider interface {
	// Generate generates text from a single user prompt.
	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error)

	// GenerateWithMessages generates text from a conversation
	// (system, user, assistant messages).
	//
	// Returns the generated text and any error. Errors are classified
	// through the sentinel errors in this package (ErrTimeout, ErrRequest,
	// ErrMalformedResponse) so callers can match with errors.Is.
	GenerateWithMessages(ctx context.Context, messages []Message, opts ...GenerateOption) (string, error)

	// Close closes the provider and releases resources.
	Close() error
}

// Message represents a single message in a conversation.
type Message struct {
	// Role is the message role: "system", "user", or "assistant".
	Role string `json:"role"`

	// Content is the message content text.
	Content string `json:"content"`
}

// GenerateOptions contains options for text generation.
type GenerateOptions struct {
	// Temperature controls randomness (0.0-2.0). Higher = more random.
	Temperature float64

	// MaxTokens limits the maximum number of tokens in the response.
	MaxTokens int
}

// GenerateOption is a function type for configuring generation options.
type GenerateOption func(*GenerateOptions)

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.Temperature = temp
	}
}

// WithMaxTokens sets the maximum number of tokens in the response.
func WithMaxTokens(max int) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.MaxTokens = max
	}
}

// ApplyGenerateOptions applies a slice of GenerateOption functions.
//
// This is a helper used internally by provider implementations.
// Default values: Temperature=0.7, MaxTokens=1000.
func ApplyGenerateOptions(opts []GenerateOption) *GenerateOptions {
	options := &GenerateOptions{
		Temperature: 0.7,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
