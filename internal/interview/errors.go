package interview

import "errors"

var (
	// ErrNoActiveSession means no question set is bound for the identity.
	ErrNoActiveSession = errors.New("no active session")
	// ErrSessionComplete means every question has already been answered.
	ErrSessionComplete = errors.New("session already complete")
	// ErrInvalidInput means the submitted answer was empty.
	ErrInvalidInput = errors.New("invalid input")
)
