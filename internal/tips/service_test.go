package tips

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"scenecoach-backend/internal/llm"
)

type stubGenerator struct {
	response string
	err      error
	last     llm.Request
	calls    int
}

func (g *stubGenerator) Generate(ctx context.Context, req llm.Request) (string, error) {
	g.calls++
	g.last = req
	return g.response, g.err
}

type stubContentSource struct {
	fragments []string
	err       error
}

func (s *stubContentSource) TipFragments(ctx context.Context) ([]string, error) {
	return s.fragments, s.err
}

func TestAskGroundsAnswerOnTipFragments(t *testing.T) {
	gen := &stubGenerator{response: "Breathe before the line."}
	svc := &Service{
		Source:    &stubContentSource{fragments: []string{"Tip one.", "File URL: https://example.com/tips.pdf"}},
		Generator: gen,
	}

	answer, err := svc.Ask(context.Background(), "How do I handle nerves?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "Breathe before the line." {
		t.Fatalf("unexpected answer %q", answer)
	}
	if !strings.Contains(gen.last.System, "Tip one. File URL: https://example.com/tips.pdf") {
		t.Fatalf("system prompt missing condensed tips: %s", gen.last.System)
	}
	if gen.last.User != "How do I handle nerves?" {
		t.Fatalf("unexpected user prompt %q", gen.last.User)
	}
	if gen.last.MaxTokens != defaultAnswerMaxTokens {
		t.Fatalf("expected default max tokens %d, got %d", defaultAnswerMaxTokens, gen.last.MaxTokens)
	}
}

func TestAskEmptyTipsSkipsGeneration(t *testing.T) {
	gen := &stubGenerator{}
	svc := &Service{Source: EmptySource{}, Generator: gen}

	answer, err := svc.Ask(context.Background(), "How do I handle nerves?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != NoInfoMessage {
		t.Fatalf("expected no-information answer, got %q", answer)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no generation call, got %d", gen.calls)
	}
}

func TestAskRejectsBlankQuestion(t *testing.T) {
	svc := &Service{Source: EmptySource{}, Generator: &stubGenerator{}}
	_, err := svc.Ask(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAskSourceFailure(t *testing.T) {
	svc := &Service{
		Source:    &stubContentSource{err: errors.New("notion down")},
		Generator: &stubGenerator{},
	}
	_, err := svc.Ask(context.Background(), "question")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAskGeneratorFailure(t *testing.T) {
	svc := &Service{
		Source:    &stubContentSource{fragments: []string{"tip"}},
		Generator: &stubGenerator{err: errors.New("timeout")},
	}
	_, err := svc.Ask(context.Background(), "question")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAskEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &Service{
		Source:    &stubContentSource{fragments: []string{"tip"}},
		Generator: &stubGenerator{response: "Try stillness."},
	}
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tips/ask", strings.NewReader(`{"question":"How do I hold a pause?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Try stillness.") {
		t.Fatalf("expected answer in body: %s", resp.Body.String())
	}
}
