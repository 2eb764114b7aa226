package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Service owns the interview state machine. All session reads and writes go
// through it; SubmitAnswer's read-modify-append is serialized per identity so
// two concurrent submissions can never observe the same answer position.
// Distinct identities proceed in parallel.
type Service struct {
	Store    Store
	Feedback Synthesizer

	locks sync.Map // identity -> *sync.Mutex
}

// NewService constructs a Service.
func NewService(store Store, feedback Synthesizer) *Service {
	return &Service{Store: store, Feedback: feedback}
}

func (s *Service) lockFor(identity string) *sync.Mutex {
	actual, _ := s.locks.LoadOrStore(identity, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// BindQuestions replaces any existing session for the identity, discarding
// prior answers. Binding an empty set removes the session: no interview is
// possible without questions.
func (s *Service) BindQuestions(ctx context.Context, identity string, questions []string) error {
	if identity == "" {
		return fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}

	mu := s.lockFor(identity)
	mu.Lock()
	defer mu.Unlock()

	if len(questions) == 0 {
		return s.Store.Delete(ctx, identity)
	}

	return s.Store.Put(ctx, Session{
		Identity:  identity,
		Questions: questions,
		Answers:   []string{},
		UpdatedAt: time.Now().UTC(),
	})
}

// SubmitAnswer appends one answer to the identity's session and reports what
// comes next: the following question, or completion with the transcript and
// synthesized feedback. This is the single state-changing operation of the
// interview and the only place answers are appended.
func (s *Service) SubmitAnswer(ctx context.Context, identity, answer string) (NextStep, error) {
	if strings.TrimSpace(answer) == "" {
		return NextStep{}, fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}

	mu := s.lockFor(identity)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.Store.Get(ctx, identity)
	if err != nil {
		return NextStep{}, err
	}
	if sess.Complete() {
		return NextStep{}, ErrSessionComplete
	}

	sess.Answers = append(sess.Answers, answer)
	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Put(ctx, sess); err != nil {
		return NextStep{}, err
	}

	if len(sess.Answers) < len(sess.Questions) {
		return NextStep{NextQuestion: sess.Questions[len(sess.Answers)], answered: len(sess.Answers)}, nil
	}

	transcript := sess.Transcript()
	step := NextStep{Complete: true, Transcript: transcript, answered: len(sess.Answers)}
	if s.Feedback != nil {
		step.Feedback = s.Feedback.Synthesize(ctx, transcript)
	}
	return step, nil
}

// CurrentQuestions returns the question set bound for an identity.
func (s *Service) CurrentQuestions(ctx context.Context, identity string) ([]string, error) {
	sess, err := s.Store.Get(ctx, identity)
	if err != nil {
		return nil, err
	}
	return sess.Questions, nil
}
