package llm

import (
	"context"
	"errors"
	"fmt"
)

// Generator abstracts text-generation providers. Both question derivation and
// feedback synthesis go through the same single-shot call.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request captures one generation call: a system instruction fixing the
// assistant's role, the user content, and an output length cap.
type Request struct {
	System    string
	User      string
	MaxTokens int
}

// ErrUnavailable wraps any provider transport, timeout, or API failure.
var ErrUnavailable = errors.New("generation service unavailable")

// Placeholder is a stub generator used when no provider is configured.
type Placeholder struct{}

// Generate always reports the service as unavailable.
func (Placeholder) Generate(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", fmt.Errorf("%w: no LLM provider configured", ErrUnavailable)
}
