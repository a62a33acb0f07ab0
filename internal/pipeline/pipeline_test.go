package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/juristo/legaldocs/internal/draft"
	"github.com/juristo/legaldocs/internal/legaldoc"
	"github.com/juristo/legaldocs/internal/legaldoc/repository"
	"github.com/juristo/legaldocs/internal/legaldoc/service"
	"github.com/juristo/legaldocs/internal/llm"
	"github.com/juristo/legaldocs/internal/storage"
	"github.com/stretchr/testify/require"
)

// countingStore wraps another store and counts calls; err short-circuits.
type countingStore struct {
	mu    sync.Mutex
	calls int
	err   error
	inner storage.Store
}

func (s *countingStore) Store(ctx context.Context, filename string, data []byte, contentType string) (storage.Artifact, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return storage.Artifact{}, s.err
	}
	return s.inner.Store(ctx, filename, data, contentType)
}

// failingRepo accepts pings but refuses writes.
type failingRepo struct {
	repository.MemoryRepo
}

func (f *failingRepo) Insert(context.Context, *legaldoc.Record) (string, error) {
	return "", fmt.Errorf("write concern error")
}

func okLLM() *llm.Mock {
	return &llm.Mock{CompleteFunc: func(context.Context, llm.Request) (string, error) {
		return "# Non-Disclosure Agreement\n\nThis agreement is made between the parties.", nil
	}}
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := okLLM()
	repo := repository.NewMemoryRepo()
	gen := NewGenerator(draft.NewComposer(mock), storage.InlineStore{}, service.NewService(repo), true)

	res, err := gen.Generate(context.Background(), Request{
		UserID: "u1", UserInput: "I need an NDA", Country: "India",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Draft)
	require.NotEmpty(t, res.PDF.Inline)
	require.NotEmpty(t, res.DOCX.Inline)
	require.Contains(t, res.Preview, "<h1>")
	require.NotEmpty(t, res.RecordID)
	require.NoError(t, res.PersistErr)

	recs, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "India", recs[0].Country)
}

func TestGenerate_ValidationRejectsBeforeLLM(t *testing.T) {
	mock := okLLM()
	gen := NewGenerator(draft.NewComposer(mock), storage.InlineStore{}, service.NewService(repository.NewMemoryRepo()), true)

	_, err := gen.Generate(context.Background(), Request{UserID: "u1", UserInput: "I need an NDA"})

	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, StageValidating, perr.Stage)
	require.True(t, errors.Is(err, ErrValidation))
	require.Equal(t, 0, mock.Calls(), "no LLM call may happen for an invalid request")
}

func TestGenerate_StoreUnavailableIs503Class(t *testing.T) {
	mock := okLLM()
	gen := NewGenerator(draft.NewComposer(mock), storage.InlineStore{}, service.NewService(repository.Unavailable{}), true)

	_, err := gen.Generate(context.Background(), Request{UserID: "u1", UserInput: "I need an NDA", Country: "India"})
	require.True(t, errors.Is(err, repository.ErrUnavailable))
	require.Equal(t, 0, mock.Calls())
}

func TestGenerate_ContextTooLongStopsPipeline(t *testing.T) {
	mock := &llm.Mock{CompleteFunc: func(context.Context, llm.Request) (string, error) {
		return "", fmt.Errorf("%w: 9000 tokens requested", llm.ErrContextTooLong)
	}}
	store := &countingStore{inner: storage.InlineStore{}}
	gen := NewGenerator(draft.NewComposer(mock), store, service.NewService(repository.NewMemoryRepo()), true)

	_, err := gen.Generate(context.Background(), Request{UserID: "u1", UserInput: "huge", Country: "India"})

	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, StageDrafting, perr.Stage)
	require.True(t, errors.Is(err, llm.ErrContextTooLong))
	require.Equal(t, 0, store.calls, "no store call after a drafting failure")
}

func TestGenerate_UploadFailureLeavesNoRecord(t *testing.T) {
	store := &countingStore{err: &storage.UploadError{Err: fmt.Errorf("connection reset")}}
	repo := repository.NewMemoryRepo()
	gen := NewGenerator(draft.NewComposer(okLLM()), store, service.NewService(repo), false)

	_, err := gen.Generate(context.Background(), Request{UserID: "u1", UserInput: "I need an NDA", Country: "India"})

	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, StageStoring, perr.Stage)
	var ue *storage.UploadError
	require.True(t, errors.As(err, &ue))

	recs, _ := repo.ListByUser(context.Background(), "u1")
	require.Empty(t, recs, "no record may reference an unconfirmed URL")
}

func TestGenerate_PersistFailureIsSwallowed(t *testing.T) {
	gen := NewGenerator(draft.NewComposer(okLLM()), storage.InlineStore{}, service.NewService(&failingRepo{}), true)

	res, err := gen.Generate(context.Background(), Request{UserID: "u1", UserInput: "I need an NDA", Country: "India"})
	require.NoError(t, err, "persist failure must not fail the request")
	require.NotEmpty(t, res.PDF.Inline, "artifact is still returned")
	require.Error(t, res.PersistErr)

	var pe *service.PersistError
	require.True(t, errors.As(res.PersistErr, &pe))
}
