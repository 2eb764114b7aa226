package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newIdentityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity())
	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/api/v1/interview/questions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"identity": IdentityFromContext(c)})
	})
	return router
}

func TestIdentityRequiredOnStatefulRoutes(t *testing.T) {
	router := newIdentityRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interview/questions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Missing identity") {
		t.Fatalf("expected missing-identity message: %s", resp.Body.String())
	}
}

func TestIdentityPropagatedFromHeader(t *testing.T) {
	router := newIdentityRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interview/questions", nil)
	req.Header.Set("X-Session-Id", "sess-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "sess-1") {
		t.Fatalf("expected identity in body: %s", resp.Body.String())
	}
}

func TestIdentityNotRequiredForHealth(t *testing.T) {
	router := newIdentityRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}
