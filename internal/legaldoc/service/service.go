package service

import (
	"context"
	"fmt"

	"github.com/juristo/legaldocs/internal/legaldoc"
	"github.com/juristo/legaldocs/internal/legaldoc/repository"
)

// PersistError wraps a failed record write. The pipeline swallows it (the
// user still gets their document) but keeps it on the result for telemetry.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return fmt.Sprintf("persist document record: %v", e.Err) }
func (e *PersistError) Unwrap() error { return e.Err }

// Service is the persistence layer for generated document records.
type Service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Save writes one record. Write failures come back as *PersistError so the
// orchestrator can distinguish them from store-unreachable conditions.
func (s *Service) Save(ctx context.Context, rec *legaldoc.Record) (string, error) {
	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return "", &PersistError{Err: err}
	}
	return id, nil
}

// ListByUser returns the user's generation history, newest first for the
// Mongo-backed repository.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*legaldoc.Record, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
