// ABOUTME: Error taxonomy for the assessment engine and session wrapper
// ABOUTME: Recoverable conditions are sentinels; fatal ones wrap a cause
package models

import (
	"errors"
	"fmt"
)

// ErrQuestionNotFound signals a catalog miss. During rule execution it is
// recoverable (logged, the question is never asked); on answer submission it
// is surfaced to the caller with the session unchanged.
var ErrQuestionNotFound = errors.New("question not found in catalog")

// ErrInvalidAnswer signals a value outside the option range or the wrong
// arity for the question type. No fact is asserted.
var ErrInvalidAnswer = errors.New("invalid answer")

// ErrReplayInconsistency signals that replaying a stored answer log produced a
// different pending question than last recorded. Fatal to the session.
var ErrReplayInconsistency = errors.New("replay produced inconsistent state")

// EngineError wraps a failure inside a rule action. Any EngineError is fatal
// to the session; the caller must restart or surface an error report.
type EngineError struct {
	Rule string
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine rule %q: %v", e.Rule, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
