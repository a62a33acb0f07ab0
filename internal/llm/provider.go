package llm

import (
	"context"
	"errors"
	"time"
)

// Provider is the text-completion service behind the drafting flow. The
// concrete implementation is OpenAI; tests use Mock.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request carries one completion call: a system/instruction block, a user
// block and an output-length bound.
type Request struct {
	System    string
	User      string
	MaxTokens int
}

var (
	// ErrContextTooLong reports that the provider rejected the input as
	// exceeding its context window. Callers surface this to the client so the
	// user can shorten their input; there is no automatic truncate-and-retry.
	ErrContextTooLong = errors.New("input exceeds the model context window")

	// ErrEmptyCompletion reports that the provider returned no usable text.
	ErrEmptyCompletion = errors.New("model returned an empty completion")
)

// Config holds provider configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}
