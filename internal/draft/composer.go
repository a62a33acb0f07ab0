package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/juristo/legaldocs/internal/legaldoc"
	"github.com/juristo/legaldocs/internal/llm"
)

const (
	// contextBudget is the total token budget assumed for the model. The
	// output bound is min(maxCompletionTokens, contextBudget - estimated
	// input); the estimate only needs to keep us under the provider's hard
	// limit, not to be exact.
	contextBudget       = 8192
	maxCompletionTokens = 5000
	minCompletionTokens = 256

	// minDraftLength is the minimum plausible length of a legal document body.
	minDraftLength = 10
)

// ErrTooShort reports a completion below the minimum plausible length.
var ErrTooShort = errors.New("generated document content is too short or invalid")

// Composer turns a generation request into a draft document body via the LLM.
type Composer struct {
	llm llm.Provider
}

func NewComposer(p llm.Provider) *Composer {
	return &Composer{llm: p}
}

// Compose builds the prompt, invokes the completion service and validates the
// result. The returned draft is markdown text; layout happens downstream.
func (c *Composer) Compose(ctx context.Context, country, userInput string, answers []legaldoc.Answer) (string, error) {
	system := systemBlock(country)
	user, err := userBlock(userInput, answers)
	if err != nil {
		return "", err
	}

	out, err := c.llm.Complete(ctx, llm.Request{
		System:    system,
		User:      user,
		MaxTokens: completionBudget(system + " " + user),
	})
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if len(out) < minDraftLength {
		return "", ErrTooShort
	}
	return out, nil
}

// Questions asks the model for clarifying questions the wizard should pose
// before drafting. Returns one question per slice element.
func (c *Composer) Questions(ctx context.Context, country, userInput string) ([]string, error) {
	system := fmt.Sprintf("You are a professional legal assistant preparing to draft a document tailored for %s. "+
		"Given the user's requirement, reply with up to 5 short clarifying questions you need answered before drafting. "+
		"Output one question per line with no numbering and no extra commentary.", country)

	out, err := c.llm.Complete(ctx, llm.Request{
		System:    system,
		User:      userInput,
		MaxTokens: 300,
	})
	if err != nil {
		return nil, err
	}

	questions := parseQuestions(out)
	if len(questions) == 0 {
		return nil, llm.ErrEmptyCompletion
	}
	return questions, nil
}

func systemBlock(country string) string {
	return fmt.Sprintf("You are a professional legal assistant with expertise in drafting legal documents tailored for %s. "+
		"Please provide your response in properly formatted Markdown, ensuring correct indentation and structure for a professional PDF document.", country)
}

func userBlock(userInput string, answers []legaldoc.Answer) (string, error) {
	serialized, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("serialize answers: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("Based on the following user input and answers, generate a legal document in Markdown format:\n\n")
	sb.WriteString("User Input: ")
	sb.WriteString(userInput)
	sb.WriteString("\nAnswers: ")
	sb.Write(serialized)
	return sb.String(), nil
}

// estimateTokens approximates token usage as round(word_count * 1.3). This is
// not a tokenizer; it only guards the provider's hard context limit.
func estimateTokens(s string) int {
	return int(float64(len(strings.Fields(s)))*1.3 + 0.5)
}

func completionBudget(input string) int {
	budget := contextBudget - estimateTokens(input)
	if budget > maxCompletionTokens {
		budget = maxCompletionTokens
	}
	if budget < minCompletionTokens {
		budget = minCompletionTokens
	}
	return budget
}

func parseQuestions(out string) []string {
	var questions []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789.)- ")
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}
