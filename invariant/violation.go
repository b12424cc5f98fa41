package invariant

import (
	"errors"

	"github.com/kbukum/guard/check"
)

// ErrViolation is matched by every Violation with errors.Is.
var ErrViolation = errors.New("invariant violated")

// Violation is a broken internal invariant.
type Violation struct {
	// Kind is the failure classification of the check that failed.
	Kind check.Kind
	// Message is the realized failure message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
	// Stack is the goroutine stack at the failing check, when captured.
	Stack []byte
}

// Error returns the formatted violation message.
func (v *Violation) Error() string {
	if v.Cause != nil {
		return "invariant violated: " + v.Message + ": " + v.Cause.Error()
	}
	return "invariant violated: " + v.Message
}

// Unwrap exposes ErrViolation and the cause.
func (v *Violation) Unwrap() []error {
	if v.Cause != nil {
		return []error{ErrViolation, v.Cause}
	}
	return []error{ErrViolation}
}

// Unreachable always returns a state violation. Use it for code paths that
// should never execute.
//
//	default:
//	    return invariant.Unreachable(invariant.Msgf("unhandled status %q", status))
func Unreachable(msg ...Message) error {
	return check.ValidState(factory, false, unreachableMessage(msg)...)
}

func unreachableMessage(msg []Message) []Message {
	if len(msg) > 0 {
		return msg
	}
	return []Message{check.Msg("Unreachable code was reached")}
}
