package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/juristo/legaldocs/internal/legaldoc"
)

// MemoryRepo is an in-memory repository used when no MongoDB is configured
// (development) and in unit tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	seq   int
	store map[string]*legaldoc.Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*legaldoc.Record)}
}

func (m *MemoryRepo) Insert(_ context.Context, rec *legaldoc.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == "" {
		m.seq++
		rec.ID = fmt.Sprintf("doc_%d", m.seq)
	}
	rec.CreatedAt = time.Now()
	m.store[rec.ID] = rec
	return rec.ID, nil
}

func (m *MemoryRepo) ListByUser(_ context.Context, userID string) ([]*legaldoc.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*legaldoc.Record{}
	for _, r := range m.store {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryRepo) Ping(context.Context) error { return nil }

// Unavailable is a stub repository used when MongoDB was configured but could
// not be reached at startup. Every call reports ErrUnavailable so requests
// fail with a service-dependency error instead of silently losing records.
type Unavailable struct{}

func (Unavailable) Insert(context.Context, *legaldoc.Record) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) ListByUser(context.Context, string) ([]*legaldoc.Record, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Ping(context.Context) error { return ErrUnavailable }
