package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/juristo/legaldocs/internal/draft"
	"github.com/juristo/legaldocs/internal/legaldoc"
	"github.com/juristo/legaldocs/internal/legaldoc/service"
	"github.com/juristo/legaldocs/internal/render"
	"github.com/juristo/legaldocs/internal/storage"
	"github.com/juristo/legaldocs/pkg/logger"
	"github.com/juristo/legaldocs/pkg/metrics"
)

// Stage identifies where in the generation sequence a request failed. The
// sequence is strictly validating -> drafting -> rendering -> storing ->
// persisting; a persisting failure does not fail the request.
type Stage string

const (
	StageValidating Stage = "validating"
	StageDrafting   Stage = "drafting"
	StageRendering  Stage = "rendering"
	StageStoring    Stage = "storing"
	StagePersisting Stage = "persisting"
)

// ErrValidation marks a rejected request (missing/malformed fields).
var ErrValidation = errors.New("invalid request")

// Error wraps a stage failure so the handler can classify the HTTP response.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Request is one document generation request. Answers may be empty but must
// be present; the other fields are required.
type Request struct {
	UserID    string
	UserInput string
	Country   string
	Answers   []legaldoc.Answer
}

// Result is a completed generation. PersistErr records a swallowed record
// write failure: the client still got the artifact, but it will not appear in
// their document history.
type Result struct {
	Draft      string
	PDF        storage.Artifact
	DOCX       storage.Artifact
	Preview    string
	RecordID   string
	PersistErr error
}

// Generator runs the generation pipeline as one synchronous chain. It owns no
// mutable per-request state; concurrent requests are independent.
type Generator struct {
	composer *draft.Composer
	store    storage.Store
	records  *service.Service
	inline   bool
}

// NewGenerator wires the pipeline. inline selects the response variant: when
// true, DOCX and HTML preview are produced alongside the PDF and everything
// is returned in the response body instead of uploaded.
func NewGenerator(composer *draft.Composer, store storage.Store, records *service.Service, inline bool) *Generator {
	return &Generator{composer: composer, store: store, records: records, inline: inline}
}

// Generate runs validate -> draft -> render -> store -> persist. Every error
// except persistence failure aborts the pipeline; persistence failure is
// logged, counted and reported on the Result only.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, g.fail(StageValidating, err)
	}
	if err := g.records.Ping(ctx); err != nil {
		return nil, g.fail(StageValidating, err)
	}

	body, err := g.composer.Compose(ctx, req.Country, req.UserInput, req.Answers)
	if err != nil {
		return nil, g.fail(StageDrafting, err)
	}
	res := &Result{Draft: body}

	pdf, err := render.MarkdownPDF(body)
	if err != nil {
		return nil, g.fail(StageRendering, err)
	}
	var docx []byte
	if g.inline {
		if docx, err = render.DOCX(body); err != nil {
			return nil, g.fail(StageRendering, err)
		}
		if res.Preview, err = render.HTML(body); err != nil {
			return nil, g.fail(StageRendering, err)
		}
	}

	if res.PDF, err = g.store.Store(ctx, "document.pdf", pdf, "application/pdf"); err != nil {
		return nil, g.fail(StageStoring, err)
	}
	if g.inline {
		res.DOCX, err = g.store.Store(ctx, "document.docx", docx,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		if err != nil {
			return nil, g.fail(StageStoring, err)
		}
	}

	rec := &legaldoc.Record{
		UserID:    req.UserID,
		UserInput: req.UserInput,
		Answers:   req.Answers,
		Country:   req.Country,
		PDFURL:    res.PDF.URL,
		Inline:    g.inline,
	}
	if res.RecordID, err = g.records.Save(ctx, rec); err != nil {
		// Deliberate trade-off: the user gets their document now, even though
		// it will be missing from their history. Observable via the result
		// field, the counter and this log line.
		res.PersistErr = err
		metrics.PersistFailures.Inc()
		logger.Errorf("document record write failed for user %s: %v", req.UserID, err)
	}

	metrics.DocumentsGenerated.Inc()
	return res, nil
}

func (g *Generator) fail(stage Stage, err error) error {
	metrics.GenerationFailures.WithLabelValues(string(stage)).Inc()
	return &Error{Stage: stage, Err: err}
}

func validate(req Request) error {
	var missing []string
	if strings.TrimSpace(req.UserID) == "" {
		missing = append(missing, "userId")
	}
	if strings.TrimSpace(req.UserInput) == "" {
		missing = append(missing, "userInput")
	}
	if strings.TrimSpace(req.Country) == "" {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
