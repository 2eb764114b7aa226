package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"scenecoach-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		identity, _ := c.Get(identityKey)
		documentID, _ := c.Get("documentId")
		questionCount, _ := c.Get("questionCount")
		answerIndex, _ := c.Get("answerIndex")

		telemetry.Info("request.complete", map[string]any{
			"request_id":     reqID,
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         status,
			"duration_ms":    float64(latency.Microseconds()) / 1000.0,
			"identity":       identity,
			"document_id":    documentID,
			"question_count": questionCount,
			"answer_index":   answerIndex,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
		})
	}
}
