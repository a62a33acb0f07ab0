package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juristo/legaldocs/internal/draft"
	"github.com/juristo/legaldocs/internal/legaldoc"
	"github.com/juristo/legaldocs/internal/legaldoc/repository"
	"github.com/juristo/legaldocs/internal/legaldoc/service"
	"github.com/juristo/legaldocs/internal/llm"
	"github.com/juristo/legaldocs/internal/pipeline"
	"github.com/juristo/legaldocs/internal/storage"
)

// Legaldocs carries the handler dependencies for the document generation API.
type Legaldocs struct {
	Generator *pipeline.Generator
	Composer  *draft.Composer
	Records   *service.Service
	// Inline selects the response variant: base64 payloads + HTML preview
	// instead of a durable URL. Fixed per deployment.
	Inline bool
}

// RegisterLegaldocRoutes registers the document generation endpoints.
func RegisterLegaldocRoutes(r *gin.Engine, h *Legaldocs) {
	r.POST("/api/legaldocs/generate", h.Generate)
	r.POST("/api/legaldocs/questions", h.Questions)
	r.GET("/api/legaldocs/user/:userId", h.ListByUser)
}

type generateRequest struct {
	UserID string `json:"userId"`
	// pointer so a missing "answers" key is distinguishable from an empty list
	Answers   *[]legaldoc.Answer `json:"answers"`
	UserInput string             `json:"userInput"`
	Country   string             `json:"country"`
}

// Generate runs the full pipeline and returns either { pdfUrl } or
// { preview, pdf, docx } depending on the deployment's artifact mode.
func (h *Legaldocs) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body."})
		return
	}
	if req.UserID == "" || req.Answers == nil || req.UserInput == "" || req.Country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID, answers, user input, and country are required."})
		return
	}

	res, err := h.Generator.Generate(c.Request.Context(), pipeline.Request{
		UserID:    req.UserID,
		UserInput: req.UserInput,
		Country:   req.Country,
		Answers:   *req.Answers,
	})
	if err != nil {
		status, msg := classify(err)
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return
	}

	// res.PersistErr is intentionally absent from the response: the user gets
	// their document even when the history write failed.
	if h.Inline {
		c.JSON(http.StatusOK, gin.H{
			"preview": res.Preview,
			"pdf":     res.PDF.Inline,
			"docx":    res.DOCX.Inline,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pdfUrl": res.PDF.URL})
}

type questionsRequest struct {
	UserInput string `json:"userInput"`
	Country   string `json:"country"`
}

// Questions returns clarifying questions the drafting wizard should ask
// before generating.
func (h *Legaldocs) Questions(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body."})
		return
	}
	if req.UserInput == "" || req.Country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User input and country are required."})
		return
	}

	questions, err := h.Composer.Questions(c.Request.Context(), req.Country, req.UserInput)
	if err != nil {
		status, msg := classify(err)
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// ListByUser returns the user's generation history for the dashboard.
func (h *Legaldocs) ListByUser(c *gin.Context) {
	recs, err := h.Records.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database error. Please try again later."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": recs})
}

// classify maps pipeline errors onto the HTTP status taxonomy. Client input
// problems are 400, unreachable dependencies 503, everything else 500.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrValidation):
		return http.StatusBadRequest, "User ID, answers, user input, and country are required."
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable, "Database error. Please try again later."
	case errors.Is(err, llm.ErrContextTooLong):
		return http.StatusBadRequest, "Your input is too long to process. Please shorten the description or answers and try again."
	case errors.Is(err, draft.ErrTooShort), errors.Is(err, llm.ErrEmptyCompletion):
		return http.StatusBadRequest, "Generated document content is too short or invalid."
	}

	var ue *storage.UploadError
	if errors.As(err, &ue) {
		return http.StatusInternalServerError, "Failed to upload the generated document."
	}

	var perr *pipeline.Error
	if errors.As(err, &perr) && perr.Stage == pipeline.StageDrafting {
		return http.StatusInternalServerError, "Error generating document content."
	}
	return http.StatusInternalServerError, "An unexpected error occurred."
}
