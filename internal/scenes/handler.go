package scenes

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scenecoach-backend/internal/notion"
	"scenecoach-backend/internal/shared/server/middleware"
	"scenecoach-backend/internal/shared/server/respond"
)

// Binder binds a derived question set to an identity's interview session.
type Binder interface {
	BindQuestions(ctx context.Context, identity string, questions []string) error
}

// Handler wires the ingestion pipeline to HTTP.
type Handler struct {
	Pipeline *Pipeline
	Binder   Binder
}

// NewHandler constructs a Handler.
func NewHandler(pipeline *Pipeline, binder Binder) *Handler {
	return &Handler{Pipeline: pipeline, Binder: binder}
}

// RegisterRoutes attaches scene routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scenes/analysis", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)

	questions, err := h.Pipeline.Ingest(c.Request.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoScene):
			respond.Error(c, http.StatusNotFound, "not_found", "no scenes found", nil)
		case errors.Is(err, ErrNoContent):
			respond.JSON(c, http.StatusOK, gin.H{
				"message": "No scene content available to analyze.",
			})
		case errors.Is(err, ErrRetrievalFailed), errors.Is(err, notion.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "retrieval_failed", "failed to retrieve scene document", nil)
		case errors.Is(err, ErrParseFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "parse_failed", "scene document could not be parsed", nil)
		case errors.Is(err, ErrEmptyDerivation):
			respond.Error(c, http.StatusBadGateway, "empty_derivation", "no questions could be derived from the scene", nil)
		case errors.Is(err, ErrUpstreamUnavailable):
			respond.Error(c, http.StatusBadGateway, "upstream_unavailable", "generation service unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "scene analysis failed", nil)
		}
		return
	}

	if err := h.Binder.BindQuestions(c.Request.Context(), identity, questions); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start interview", nil)
		return
	}

	c.Set("questionCount", len(questions))
	respond.JSON(c, http.StatusOK, gin.H{"questions": questions})
}
