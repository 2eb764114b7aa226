package interview

import (
	"context"
	"fmt"
	"strings"

	"scenecoach-backend/internal/llm"
	"scenecoach-backend/internal/shared/telemetry"
)

const (
	feedbackSystemPrompt = "You are an acting mentor AI who gives actionable feedback to an actor based on their answers to a set of acting questions."

	feedbackUserPromptFormat = "Here are the questions and answers:\n%s\nPlease provide final feedback for the actor."

	defaultFeedbackMaxTokens = 150
)

// Synthesizer produces terminal feedback from a completed transcript.
type Synthesizer interface {
	Synthesize(ctx context.Context, transcript []QA) string
}

// FeedbackSynthesizer renders the transcript into one generation request.
// An upstream failure is converted into a textual message instead of an
// error: the user has already answered every question and always gets a
// terminal response.
type FeedbackSynthesizer struct {
	Generator llm.Generator
	MaxTokens int
}

// Synthesize returns coaching feedback for the transcript.
func (f *FeedbackSynthesizer) Synthesize(ctx context.Context, transcript []QA) string {
	maxTokens := f.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultFeedbackMaxTokens
	}

	feedback, err := f.Generator.Generate(ctx, llm.Request{
		System:    feedbackSystemPrompt,
		User:      fmt.Sprintf(feedbackUserPromptFormat, RenderTranscript(transcript)),
		MaxTokens: maxTokens,
	})
	if err != nil {
		telemetry.Error("feedback synthesis failed", map[string]any{
			"error":           err.Error(),
			"transcript_size": len(transcript),
		})
		return fmt.Sprintf("An error occurred while generating feedback: %v", err)
	}
	return strings.TrimSpace(feedback)
}

// RenderTranscript writes question/answer pairs in order, one pair per line group.
func RenderTranscript(transcript []QA) string {
	var b strings.Builder
	for _, qa := range transcript {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", qa.Question, qa.Answer)
	}
	return b.String()
}

var _ Synthesizer = (*FeedbackSynthesizer)(nil)
