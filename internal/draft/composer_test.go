package draft

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/juristo/legaldocs/internal/legaldoc"
	"github.com/juristo/legaldocs/internal/llm"
	"github.com/stretchr/testify/require"
)

func TestCompose_PromptEmbedsInputs(t *testing.T) {
	var seen llm.Request
	mock := &llm.Mock{CompleteFunc: func(_ context.Context, req llm.Request) (string, error) {
		seen = req
		return "# Non-Disclosure Agreement\n\nThis agreement...", nil
	}}

	c := NewComposer(mock)
	answers := []legaldoc.Answer{{Question: "Who are the parties?", Answer: "Acme and Bob"}}
	out, err := c.Compose(context.Background(), "India", "I need an NDA", answers)
	require.NoError(t, err)
	require.Contains(t, out, "Non-Disclosure Agreement")

	require.Contains(t, seen.System, "India")
	require.Contains(t, seen.User, "I need an NDA")
	require.Contains(t, seen.User, "Acme and Bob")
	require.Equal(t, 1, mock.Calls())
}

func TestCompose_TokenBudget(t *testing.T) {
	var seen llm.Request
	mock := &llm.Mock{CompleteFunc: func(_ context.Context, req llm.Request) (string, error) {
		seen = req
		return "a perfectly plausible document body", nil
	}}

	c := NewComposer(mock)
	_, err := c.Compose(context.Background(), "India", "short input", nil)
	require.NoError(t, err)
	// short input leaves more than the fixed ceiling, so the ceiling applies
	require.Equal(t, 5000, seen.MaxTokens)

	// ~5000 words of input eats most of the 8192 budget
	long := strings.Repeat("word ", 5000)
	_, err = c.Compose(context.Background(), "India", long, nil)
	require.NoError(t, err)
	require.Less(t, seen.MaxTokens, 5000)
	require.GreaterOrEqual(t, seen.MaxTokens, 256)
}

func TestCompose_TooShortBoundary(t *testing.T) {
	reply := ""
	mock := &llm.Mock{CompleteFunc: func(context.Context, llm.Request) (string, error) {
		return reply, nil
	}}
	c := NewComposer(mock)

	// 9 characters after trimming -> rejected
	reply = " 123456789 "
	_, err := c.Compose(context.Background(), "India", "input", nil)
	require.ErrorIs(t, err, ErrTooShort)

	// exactly 10 characters -> accepted
	reply = "1234567890"
	out, err := c.Compose(context.Background(), "India", "input", nil)
	require.NoError(t, err)
	require.Equal(t, "1234567890", out)
}

func TestCompose_PropagatesProviderErrors(t *testing.T) {
	mock := &llm.Mock{CompleteFunc: func(context.Context, llm.Request) (string, error) {
		return "", llm.ErrContextTooLong
	}}
	c := NewComposer(mock)

	_, err := c.Compose(context.Background(), "India", "input", nil)
	require.True(t, errors.Is(err, llm.ErrContextTooLong))
}

func TestQuestions_ParsesLines(t *testing.T) {
	mock := &llm.Mock{CompleteFunc: func(context.Context, llm.Request) (string, error) {
		return "1. Who are the parties?\n\n2) What is the term?\n- Which state law applies?\n", nil
	}}
	c := NewComposer(mock)

	qs, err := c.Questions(context.Background(), "India", "I need an NDA")
	require.NoError(t, err)
	require.Equal(t, []string{"Who are the parties?", "What is the term?", "Which state law applies?"}, qs)
}

func TestEstimateTokens(t *testing.T) {
	// 10 words * 1.3 = 13
	require.Equal(t, 13, estimateTokens(strings.Repeat("w ", 10)))
	require.Equal(t, 0, estimateTokens(""))
}
