package repository

import (
	"context"
	"errors"

	"github.com/juristo/legaldocs/internal/legaldoc"
)

var (
	// ErrUnavailable means the backing store cannot be reached at all. The
	// handler maps it to 503, distinct from a failed insert.
	ErrUnavailable = errors.New("document store unavailable")
)

// Repository persists generated document records. Insert is not idempotent:
// retrying a failed persist after a successful generation yields a duplicate
// record, which is accepted because generation itself is never auto-retried.
type Repository interface {
	Insert(ctx context.Context, rec *legaldoc.Record) (string, error)
	ListByUser(ctx context.Context, userID string) ([]*legaldoc.Record, error)
	Ping(ctx context.Context) error
}
