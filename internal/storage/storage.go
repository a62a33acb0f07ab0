package storage

import (
	"context"
	"fmt"
)

// Artifact is the outcome of storing a rendered binary: either a durable URL
// (upload deployments) or the base64 payload for inline transport. Exactly
// one field is set.
type Artifact struct {
	URL    string
	Inline string
}

// Store places a rendered artifact somewhere a client can get it. Which
// implementation runs is fixed per deployment, never per request.
type Store interface {
	Store(ctx context.Context, filename string, data []byte, contentType string) (Artifact, error)
}

// UploadError wraps any storage-side failure (network error, non-2xx
// response). The orchestrator must not persist a record referencing a URL
// that was never confirmed.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return fmt.Sprintf("artifact upload: %v", e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }
