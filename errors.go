package dicecore

import (
	"fmt"

	"github.com/pkg/errors"
)

// FormatError is raised at parse time for unknown tokens and at eval time
// for missing mandatory right-hand sides, invalid counting-operator
// suffixes, and out-of-interval dice counts/sizes. Position is a byte
// offset into Expression pointing at the first offending token; per spec
// §1 the engine never attempts recovery past that position.
type FormatError struct {
	Message    string
	Expression string
	Position   int
	cause      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s (at %d in %q)", e.Message, e.Position, e.Expression)
}

// Unwrap allows errors.Is/errors.As to see through to a wrapped cause.
func (e *FormatError) Unwrap() error { return e.cause }

// NewFormatError builds a FormatError anchored at position in expression.
func NewFormatError(message, expression string, position int) *FormatError {
	return &FormatError{Message: message, Expression: expression, Position: position}
}

// wrapFormatError attaches cause as the FormatError's underlying error,
// following the teacher's errors.Wrap idiom for layered error context.
func wrapFormatError(cause error, message, expression string, position int) *FormatError {
	return &FormatError{
		Message:    errors.Wrapf(cause, message).Error(),
		Expression: expression,
		Position:   position,
		cause:      cause,
	}
}

// RollerErrorKind classifies a RollerError.
type RollerErrorKind string

// Roller error kinds.
const (
	RollerErrorExhausted RollerErrorKind = "Exhausted"
	RollerErrorOutOfRange RollerErrorKind = "OutOfRange"
)

// RollerError is returned by a Roller when it cannot satisfy a request: the
// PreRolled queue ran dry (Exhausted), or a supplied/consumed value fell
// outside the requested interval or value set (OutOfRange).
type RollerError struct {
	Kind RollerErrorKind
	Msg  string
}

func (e *RollerError) Error() string {
	return fmt.Sprintf("roller: %s: %s", e.Kind, e.Msg)
}

// NewExhaustedError builds a RollerError for a PreRolledRoller that ran out
// of queued values.
func NewExhaustedError(msg string) *RollerError {
	return &RollerError{Kind: RollerErrorExhausted, Msg: msg}
}

// NewOutOfRangeError builds a RollerError for a value outside its requested
// interval or set.
func NewOutOfRangeError(msg string) *RollerError {
	return &RollerError{Kind: RollerErrorOutOfRange, Msg: msg}
}

// Sentinel errors for conditions that are not FormatErrors or RollerErrors.
var (
	ErrNilDie    = errors.New("dicecore: nil die")
	ErrUnrolled  = errors.New("dicecore: die has not been rolled")
	ErrMaxRolls  = errors.New("dicecore: evaluation exceeded the maximum roll count")
)
