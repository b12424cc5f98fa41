package check

import "reflect"

const (
	defaultIsTrue     = "The validated expression is false"
	defaultIsFalse    = "The validated expression is true"
	defaultValidState = "The validated state is false"
	defaultNotNil     = "The validated object is nil"
	defaultIsNil      = "The validated object is not nil"
)

// IsTrue fails with a KindArgument failure when expr is false.
func IsTrue(f ArgumentFactory, expr bool, msg ...Message) error {
	if !expr {
		return f.ArgumentError(describe(msg, defaultIsTrue), nil)
	}
	return nil
}

// IsFalse fails with a KindArgument failure when expr is true.
func IsFalse(f ArgumentFactory, expr bool, msg ...Message) error {
	if expr {
		return f.ArgumentError(describe(msg, defaultIsFalse), nil)
	}
	return nil
}

// ValidState fails with a KindState failure when expr is false.
func ValidState(f StateFactory, expr bool, msg ...Message) error {
	if !expr {
		return f.StateError(describe(msg, defaultValidState), nil)
	}
	return nil
}

// NotNil returns v, or a KindNull failure when v is nil. Typed nils
// (a nil pointer stored in an interface) count as nil.
func NotNil[T any](f NullFactory, v T, msg ...Message) (T, error) {
	if isNilValue(v) {
		var zero T
		return zero, f.NullError(describe(msg, defaultNotNil), nil)
	}
	return v, nil
}

// IsNil fails with a KindArgument failure when v is not nil.
func IsNil(f ArgumentFactory, v any, msg ...Message) error {
	if !isNil(v) {
		return f.ArgumentError(describe(msg, defaultIsNil), nil)
	}
	return nil
}

// isNilValue reports whether v is nil without boxing values whose type
// can never be nil.
func isNilValue[T any](v T) bool {
	if !nilable(reflect.TypeFor[T]()) {
		return false
	}
	return isNil(any(v))
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNil checks if a value is nil, handling both untyped nil and typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	if nilable(rv.Type()) {
		return rv.IsNil()
	}
	return false
}
