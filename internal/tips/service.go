package tips

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scenecoach-backend/internal/llm"
	"scenecoach-backend/internal/scenes"
)

const (
	mentorSystemPromptFormat = "You are an acting mentor AI. Use the following information to help answer questions from the user: %s"

	// NoInfoMessage is returned when the tips database holds nothing usable.
	NoInfoMessage = "I couldn't find any relevant information in the acting tips database."

	defaultAnswerMaxTokens = 150
)

var (
	// ErrInvalidInput means the question was empty.
	ErrInvalidInput = errors.New("question is required")
	// ErrUnavailable means the tips store or the generation service failed.
	ErrUnavailable = errors.New("mentor unavailable")
)

// ContentSource gathers raw tip fragments from the external content store.
type ContentSource interface {
	TipFragments(ctx context.Context) ([]string, error)
}

// Service answers free-form acting questions grounded on the tips database.
type Service struct {
	Source    ContentSource
	Generator llm.Generator
	MaxTokens int
}

// Ask condenses the tip fragments and answers the question against them. An
// empty condensation yields NoInfoMessage without a generation request.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrInvalidInput
	}

	fragments, err := s.Source.TipFragments(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	condensed := scenes.Condense(fragments)
	if condensed == "" {
		return NoInfoMessage, nil
	}

	maxTokens := s.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnswerMaxTokens
	}

	answer, err := s.Generator.Generate(ctx, llm.Request{
		System:    fmt.Sprintf(mentorSystemPromptFormat, condensed),
		User:      question,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return answer, nil
}
