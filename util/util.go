package util

import (
	"iter"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/guard/check"
	"github.com/kbukum/guard/validation"
)

// Try calls fn and panics if it returns an error.
func Try[T any](fn func() (T, error)) T {
	return check.Must(fn())
}

// Seq returns an iterator over s, or a validation error if s is nil or empty.
func Seq[S ~[]E, E any](s S, msg ...validation.Message) (iter.Seq[E], error) {
	s, err := validation.NotEmpty(s, msg...)
	if err != nil {
		return nil, err
	}
	return func(yield func(E) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// ParseUUID trims value, checks it is a UUID and parses it.
func ParseUUID(value string, msg ...validation.Message) (uuid.UUID, error) {
	s, err := validation.UUID(strings.TrimSpace(value), msg...)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.MustParse(s), nil
}
