package repository

import (
	"context"
	"testing"

	"github.com/juristo/legaldocs/internal/legaldoc"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_InsertAndList(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	id, err := repo.Insert(ctx, &legaldoc.Record{UserID: "u1", UserInput: "I need an NDA", Country: "India", PDFURL: "https://cdn.example/doc.pdf"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = repo.Insert(ctx, &legaldoc.Record{UserID: "u2", UserInput: "lease agreement", Country: "India"})
	require.NoError(t, err)

	recs, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "I need an NDA", recs[0].UserInput)
	require.False(t, recs[0].CreatedAt.IsZero())

	require.NoError(t, repo.Ping(ctx))
}

func TestUnavailableRepo(t *testing.T) {
	var repo Unavailable
	ctx := context.Background()

	require.ErrorIs(t, repo.Ping(ctx), ErrUnavailable)
	_, err := repo.Insert(ctx, &legaldoc.Record{UserID: "u1"})
	require.ErrorIs(t, err, ErrUnavailable)
}
