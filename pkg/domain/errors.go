package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownField is returned by Answers.Set for a field outside the fixed set.
var ErrUnknownField = errors.New("unknown answer field")

// ErrStepIncomplete is returned when forward navigation or submission is
// attempted while the current step's validation gate fails.
var ErrStepIncomplete = errors.New("current step is incomplete")

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission for the same flow is still pending.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// ErrFlowCompleted is returned when a mutation is attempted after a
// successful submission.
var ErrFlowCompleted = errors.New("flow already completed")

// SubmissionError wraps a persistence-service failure. The flow keeps its
// answers so the user can resubmit without re-entering anything; the engine
// never retries on its own.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile submission failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("profile submission failed: %s", e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
