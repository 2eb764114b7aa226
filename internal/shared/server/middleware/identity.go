package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scenecoach-backend/internal/shared/server/respond"
)

const identityKey = "identity"

// Identity extracts the caller identity from the X-Session-Id header and
// stores it in context. There is exactly one interview per identity, so every
// stateful route requires it.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		if c.Request.URL.Path == "/api/v1/health" {
			c.Next()
			return
		}

		id := strings.TrimSpace(c.GetHeader("X-Session-Id"))
		if id == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFromContext fetches the identity set by the Identity middleware.
func IdentityFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(identityKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
