package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using the OpenAI chat completions API.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Complete performs a single chat completion round trip.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	model := p.config.Model
	if model == "" {
		model = openai.GPT4
	}

	timeout := p.config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Minute
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}

// classify maps provider failures onto the closed error set. The OpenAI API
// reports an over-long input either with the context_length_exceeded code or
// with a "maximum context length" message, depending on endpoint version.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code == "context_length_exceeded" {
			return fmt.Errorf("%w: %s", ErrContextTooLong, apiErr.Message)
		}
		if strings.Contains(strings.ToLower(apiErr.Message), "maximum context length") {
			return fmt.Errorf("%w: %s", ErrContextTooLong, apiErr.Message)
		}
	}
	return fmt.Errorf("openai: %w", err)
}
