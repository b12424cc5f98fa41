package validation

import (
	"github.com/kbukum/guard/check"
	"github.com/kbukum/guard/errors"
)

//go:generate go run ../internal/facadegen --package=validation --out=checks.go

var factory = check.Taxonomy[*errors.AppError](newAppError)

// Factory returns the factory behind this package's checks, for use with
// check directly or with check.Observed.
func Factory() check.Factory { return factory }

func newAppError(kind check.Kind, msg string, cause error) *errors.AppError {
	var appErr *errors.AppError
	switch kind {
	case check.KindNull:
		appErr = errors.NullValue(msg)
	case check.KindIndex:
		appErr = errors.IndexOutOfRange(msg)
	case check.KindState:
		appErr = errors.IllegalState(msg)
	default:
		appErr = errors.Validation(msg)
	}
	if cause != nil {
		appErr.WithCause(cause)
	}
	return appErr
}

// FromFailure converts a check failure of any taxonomy into the standard
// AppError shape, keeping its kind and message. err becomes the cause.
func FromFailure(err error) (*errors.AppError, bool) {
	kind, ok := check.KindOf(err)
	if !ok {
		return nil, false
	}
	msg, _ := check.MessageOf(err)
	return newAppError(kind, msg, err), true
}
