package scenes

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"scenecoach-backend/internal/llm"
)

const (
	questionSystemPrompt = "You are an AI that provides leading questions for actors based on scene content."

	questionUserPromptFormat = "Here is a scene: %s Provide a series of leading questions for an actor to help them understand key moments, key events for the characters, relationships, status, and stakes in this scene. Write one question per line."

	defaultQuestionMaxTokens = 200
)

// Deriver turns condensed scene text into an ordered question list via one
// generation call.
type Deriver struct {
	Generator llm.Generator
	MaxTokens int
}

// Derive requests question generation for the given source text and parses
// the free-text response. The parse rule is ParseQuestions; order follows the
// response. Errors are ErrUpstreamUnavailable and ErrEmptyDerivation; neither
// is retried here.
func (d *Deriver) Derive(ctx context.Context, sourceText string) ([]string, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, ErrNoContent
	}

	maxTokens := d.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultQuestionMaxTokens
	}

	raw, err := d.Generator.Generate(ctx, llm.Request{
		System:    questionSystemPrompt,
		User:      fmt.Sprintf(questionUserPromptFormat, sourceText),
		MaxTokens: maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	questions := ParseQuestions(raw)
	if len(questions) == 0 {
		return nil, ErrEmptyDerivation
	}
	return questions, nil
}

// enumMarker matches leading enumeration: "1.", "2)", "3:", bullet characters,
// and "Q:"/"Q1:"/"Question 2:" prefixes.
var enumMarker = regexp.MustCompile(`(?i)^(?:(?:question\s+)?\d+\s*[.):]|[-*•]|q\d*\s*:)\s*`)

// ParseQuestions splits a generation response into an ordered question list.
// The rule is deterministic: split on newlines, trim whitespace, strip leading
// enumeration markers, and drop blank lines. Order is preserved.
func ParseQuestions(raw string) []string {
	lines := strings.Split(raw, "\n")
	questions := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimSpace(enumMarker.ReplaceAllString(trimmed, ""))
		if trimmed == "" {
			continue
		}
		questions = append(questions, trimmed)
	}
	return questions
}
