package interview

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scenecoach-backend/internal/shared/server/middleware"
	"scenecoach-backend/internal/shared/server/respond"
)

// Handler wires interview routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interview/questions", h.questions)
	rg.POST("/interview/answers", h.submitAnswer)
}

func (h *Handler) questions(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)

	questions, err := h.Svc.CurrentQuestions(c.Request.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveSession):
			respond.Error(c, http.StatusNotFound, "no_active_session", "no interview in progress", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch questions", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"questions": questions})
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

func (h *Handler) submitAnswer(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)

	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	step, err := h.Svc.SubmitAnswer(c.Request.Context(), identity, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "answer is required", nil)
		case errors.Is(err, ErrNoActiveSession):
			respond.Error(c, http.StatusNotFound, "no_active_session", "no interview in progress", nil)
		case errors.Is(err, ErrSessionComplete):
			respond.Error(c, http.StatusConflict, "session_complete", "interview already complete", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit answer", nil)
		}
		return
	}

	c.Set("answerIndex", step.Answered())
	respond.JSON(c, http.StatusOK, step)
}
