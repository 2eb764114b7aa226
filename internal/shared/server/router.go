package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scenecoach-backend/internal/documents"
	"scenecoach-backend/internal/interview"
	"scenecoach-backend/internal/scenes"
	"scenecoach-backend/internal/shared/config"
	"scenecoach-backend/internal/shared/server/middleware"
	"scenecoach-backend/internal/shared/server/respond"
	"scenecoach-backend/internal/tips"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	DocumentsHandler *documents.Handler
	ScenesHandler    *scenes.Handler
	InterviewHandler *interview.Handler
	TipsHandler      *tips.Handler
}

const generationGroup = "GENERATION"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	// Routes that end in a generation call get a slower bucket than the rest.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: groupFor,
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":       {Rate: 5, Burst: 20},
			generationGroup: {Rate: 0.5, Burst: 5},
		},
	}))

	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.ScenesHandler != nil {
		deps.ScenesHandler.RegisterRoutes(api)
	}
	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(api)
	}
	if deps.TipsHandler != nil {
		deps.TipsHandler.RegisterRoutes(api)
	}

	return r
}

func groupFor(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/scenes/analysis", "/api/v1/tips/ask":
		return generationGroup
	default:
		return "DEFAULT"
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
