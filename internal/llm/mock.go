package llm

import (
	"context"
	"sync"
)

// Mock is a test double for Provider. CompleteFunc controls the response;
// Calls counts invocations so tests can assert that a failing request never
// reached the provider.
type Mock struct {
	mu           sync.Mutex
	calls        int
	CompleteFunc func(ctx context.Context, req Request) (string, error)
}

func (m *Mock) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", ErrEmptyCompletion
}

func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
