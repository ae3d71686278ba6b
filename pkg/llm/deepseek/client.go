package deepseek

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/staragent/staragent-go/pkg/llm"
)

// Client is a DeepSeek chat-completion client.
// It implements the llm.Provider interface. DeepSeek exposes an
// OpenAI-compatible API, so it reuses the OpenAI SDK with a different base URL.
type Client struct {
	client *openai.Client
	model  string
}

// Config is the configuration for the DeepSeek client.
// APIKey: DeepSeek API key (required)
// Model: model name, defaults to "deepseek-chat"
// BaseURL: API base URL, defaults to "https://api.deepseek.com"
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewClient creates a new DeepSeek chat-completion client.
func NewClient(cfg *Config) (*Client, error) {
	config := openai.DefaultConfig(cfg.APIKey)

	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	} else {
		config.BaseURL = "https://api.deepseek.com"
	}

	model := cfg.Model
	if model == "" {
		model = "deepseek-chat"
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Generate generates text from a single user prompt.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (string, error) {
	messages := []llm.Message{
		{Role: "user", Content: prompt},
	}
	return c.GenerateWithMessages(ctx, messages, opts...)
}

// GenerateWithMessages generates text from a conversation history.
//
// Failures are classified through llm.ClassifyError, and a reply with an
// empty choices array is reported as llm.ErrMalformedResponse. The returned
// text is trimmed of surrounding whitespace.
func (c *Client) GenerateWithMessages(ctx context.Context, messages []llm.Message, opts ...llm.GenerateOption) (string, error) {
	options := llm.ApplyGenerateOptions(opts)

	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		Temperature: float32(options.Temperature),
		MaxTokens:   options.MaxTokens,
		Stream:      false,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", llm.ClassifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", llm.ErrMalformedResponse
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Close closes the client connection.
// The OpenAI SDK holds no persistent resources; retained for interface compatibility.
func (c *Client) Close() error {
	return nil
}
