package interview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newInterviewRouter(t *testing.T, svc *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("identity", "sess-1")
		c.Next()
	})
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestQuestionsEndpointWithoutSession(t *testing.T) {
	svc := NewService(NewMemoryStore(), &stubSynthesizer{})
	router := newInterviewRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interview/questions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "no_active_session") {
		t.Fatalf("expected no_active_session code in body: %s", resp.Body.String())
	}
}

func TestSubmitAnswerEndpointReturnsNextQuestion(t *testing.T) {
	svc := NewService(NewMemoryStore(), &stubSynthesizer{feedback: "ok"})

	gin.SetMode(gin.TestMode)
	var loggedIndex any
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("identity", "sess-1")
		c.Next()
		loggedIndex, _ = c.Get("answerIndex")
	})
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)

	questions := []string{"What does your character want?", "What stands in their way?"}
	if err := svc.BindQuestions(context.Background(), "sess-1", questions); err != nil {
		t.Fatalf("BindQuestions: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/answers", strings.NewReader(`{"answer":"Connection"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var step NextStep
	if err := json.Unmarshal(resp.Body.Bytes(), &step); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if step.Complete {
		t.Fatalf("expected in-progress session")
	}
	if step.NextQuestion != questions[1] {
		t.Fatalf("expected next question %q, got %q", questions[1], step.NextQuestion)
	}
	if loggedIndex != 1 {
		t.Fatalf("expected answer index 1 in context, got %v", loggedIndex)
	}
}

func TestSubmitAnswerEndpointCompletesWithFeedback(t *testing.T) {
	svc := NewService(NewMemoryStore(), &stubSynthesizer{feedback: "Trust the pause."})
	router := newInterviewRouter(t, svc)

	if err := svc.BindQuestions(context.Background(), "sess-1", []string{"Only question?"}); err != nil {
		t.Fatalf("BindQuestions: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/answers", strings.NewReader(`{"answer":"Only answer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var step NextStep
	if err := json.Unmarshal(resp.Body.Bytes(), &step); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !step.Complete {
		t.Fatalf("expected completion: %s", resp.Body.String())
	}
	if step.Feedback != "Trust the pause." {
		t.Fatalf("unexpected feedback %q", step.Feedback)
	}
	if len(step.Transcript) != 1 {
		t.Fatalf("expected one transcript pair, got %d", len(step.Transcript))
	}
}

func TestSubmitAnswerEndpointConflictsWhenComplete(t *testing.T) {
	svc := NewService(NewMemoryStore(), &stubSynthesizer{})
	router := newInterviewRouter(t, svc)

	if err := svc.BindQuestions(context.Background(), "sess-1", []string{"Only question?"}); err != nil {
		t.Fatalf("BindQuestions: %v", err)
	}
	if _, err := svc.SubmitAnswer(context.Background(), "sess-1", "done"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/answers", strings.NewReader(`{"answer":"again"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "session_complete") {
		t.Fatalf("expected session_complete code: %s", resp.Body.String())
	}
}

func TestSubmitAnswerEndpointRejectsInvalidBody(t *testing.T) {
	svc := NewService(NewMemoryStore(), &stubSynthesizer{})
	router := newInterviewRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/answers", strings.NewReader(`not-json`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
