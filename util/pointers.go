package util

import (
	"github.com/kbukum/guard/check"
	"github.com/kbukum/guard/invariant"
	"github.com/kbukum/guard/validation"
)

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// OrElse returns *p, or def if p is nil.
func OrElse[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}

// Required returns *p, or a null-value validation error if p is nil.
func Required[T any](p *T, msg ...validation.Message) (T, error) {
	p, err := validation.NotNil(p, msg...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Present returns *p and panics with an invariant violation if p is nil.
// Use it for values the program itself guarantees.
func Present[T any](p *T, msg ...invariant.Message) T {
	return *check.Must(invariant.NotNil(p, msg...))
}
