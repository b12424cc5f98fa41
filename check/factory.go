package check

import (
	stderrors "errors"
)

// ArgumentFactory builds KindArgument failures.
type ArgumentFactory interface {
	ArgumentError(msg string, cause error) error
}

// NullFactory builds KindNull failures.
type NullFactory interface {
	NullError(msg string, cause error) error
}

// IndexFactory builds KindIndex failures.
type IndexFactory interface {
	IndexError(msg string, cause error) error
}

// StateFactory builds KindState failures.
type StateFactory interface {
	StateError(msg string, cause error) error
}

// Factory builds failures of every kind. Implementations must be immutable
// and safe for concurrent use.
type Factory interface {
	ArgumentFactory
	NullFactory
	IndexFactory
	StateFactory
}

// Taxonomy maps a failure onto the concrete error type E of one failure
// taxonomy. A Taxonomy is a Factory: every error it builds is wrapped in a
// *Failure[E].
type Taxonomy[E error] func(kind Kind, msg string, cause error) E

// ArgumentError builds a KindArgument failure.
func (t Taxonomy[E]) ArgumentError(msg string, cause error) error {
	return t.build(KindArgument, msg, cause)
}

// NullError builds a KindNull failure.
func (t Taxonomy[E]) NullError(msg string, cause error) error {
	return t.build(KindNull, msg, cause)
}

// IndexError builds a KindIndex failure.
func (t Taxonomy[E]) IndexError(msg string, cause error) error {
	return t.build(KindIndex, msg, cause)
}

// StateError builds a KindState failure.
func (t Taxonomy[E]) StateError(msg string, cause error) error {
	return t.build(KindState, msg, cause)
}

func (t Taxonomy[E]) build(kind Kind, msg string, cause error) error {
	return &Failure[E]{Kind: kind, Message: msg, Err: t(kind, msg, cause)}
}

// Failure is the error returned by a failing check bound to a Taxonomy.
type Failure[E error] struct {
	// Kind is the failure classification.
	Kind Kind
	// Message is the realized failure message.
	Message string
	// Err is the taxonomy-specific error.
	Err E
}

// Error returns the taxonomy error's message.
func (f *Failure[E]) Error() string { return f.Err.Error() }

// Unwrap returns the taxonomy error.
func (f *Failure[E]) Unwrap() error { return f.Err }

// FailureKind returns the failure classification.
func (f *Failure[E]) FailureKind() Kind { return f.Kind }

// FailureMessage returns the realized message.
func (f *Failure[E]) FailureMessage() string { return f.Message }

type kinded interface {
	FailureKind() Kind
}

type messaged interface {
	FailureMessage() string
}

// KindOf returns the failure kind carried by err or any error it wraps.
func KindOf(err error) (Kind, bool) {
	var k kinded
	if stderrors.As(err, &k) {
		return k.FailureKind(), true
	}
	return 0, false
}

// MessageOf returns the realized message of a check failure in err's chain.
func MessageOf(err error) (string, bool) {
	var m messaged
	if stderrors.As(err, &m) {
		return m.FailureMessage(), true
	}
	return "", false
}

// Is reports whether err is a check failure of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// NullArgumentFactory builds the failures of checks that reject nil and
// otherwise invalid containers.
type NullArgumentFactory interface {
	NullFactory
	ArgumentFactory
}

// NullIndexFactory builds the failures of index checks on nilable containers.
type NullIndexFactory interface {
	NullFactory
	IndexFactory
}
