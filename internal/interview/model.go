package interview

import "time"

// Session is one identity's interview state: the bound question list and the
// answers collected so far. len(Answers) <= len(Questions) always holds;
// answer position i corresponds to question position i.
type Session struct {
	Identity  string
	Questions []string
	Answers   []string
	UpdatedAt time.Time
}

// Complete reports whether every question has been answered.
func (s Session) Complete() bool {
	return len(s.Answers) >= len(s.Questions)
}

// Transcript pairs each question with its answer in submission order.
func (s Session) Transcript() []QA {
	n := len(s.Answers)
	if len(s.Questions) < n {
		n = len(s.Questions)
	}
	transcript := make([]QA, 0, n)
	for i := 0; i < n; i++ {
		transcript = append(transcript, QA{Question: s.Questions[i], Answer: s.Answers[i]})
	}
	return transcript
}

// QA is one question/answer pair of a transcript.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NextStep is the outcome of one answer submission: either the next question,
// or completion with the transcript and synthesized feedback.
type NextStep struct {
	NextQuestion string `json:"nextQuestion,omitempty"`
	Complete     bool   `json:"complete"`
	Transcript   []QA   `json:"transcript,omitempty"`
	Feedback     string `json:"feedback,omitempty"`

	// answered is the count of recorded answers after this submission.
	// Carried for request logging only.
	answered int
}

// Answered reports how many answers the session holds after this step.
func (s NextStep) Answered() int {
	return s.answered
}
