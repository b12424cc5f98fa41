package check

import (
	"reflect"
	"strings"
)

const (
	defaultNilSlice        = "The validated slice is nil"
	defaultEmptySlice      = "The validated slice is empty"
	defaultNilMap          = "The validated map is nil"
	defaultEmptyMap        = "The validated map is empty"
	defaultNilString       = "The validated string is nil"
	defaultEmptyString     = "The validated string is empty"
	defaultBlankString     = "The validated string is blank"
	defaultNilElement      = "The validated slice contains nil element at index: %d"
	defaultInvalidIndex    = "The validated slice index is invalid: %d"
	defaultInvalidStrIndex = "The validated string index is invalid: %d"
)

// NotEmpty returns s, a KindNull failure when s is nil, or a KindArgument
// failure when s has no elements.
func NotEmpty[S ~[]E, E any](f NullArgumentFactory, s S, msg ...Message) (S, error) {
	if s == nil {
		return nil, f.NullError(describe(msg, defaultNilSlice), nil)
	}
	if len(s) == 0 {
		return nil, f.ArgumentError(describe(msg, defaultEmptySlice), nil)
	}
	return s, nil
}

// NotEmptyMap returns m, a KindNull failure when m is nil, or a KindArgument
// failure when m has no entries.
func NotEmptyMap[M ~map[K]V, K comparable, V any](f NullArgumentFactory, m M, msg ...Message) (M, error) {
	if m == nil {
		return nil, f.NullError(describe(msg, defaultNilMap), nil)
	}
	if len(m) == 0 {
		return nil, f.ArgumentError(describe(msg, defaultEmptyMap), nil)
	}
	return m, nil
}

// NotEmptyString returns s, or a KindArgument failure when s is "".
func NotEmptyString(f ArgumentFactory, s string, msg ...Message) (string, error) {
	if s == "" {
		return "", f.ArgumentError(describe(msg, defaultEmptyString), nil)
	}
	return s, nil
}

// NotEmptyStringPtr is NotEmptyString for optional strings; a nil pointer is
// a KindNull failure.
func NotEmptyStringPtr(f NullArgumentFactory, s *string, msg ...Message) (*string, error) {
	if s == nil {
		return nil, f.NullError(describe(msg, defaultNilString), nil)
	}
	if *s == "" {
		return nil, f.ArgumentError(describe(msg, defaultEmptyString), nil)
	}
	return s, nil
}

// NotBlank returns s, or a KindArgument failure when s is empty or contains
// only Unicode white space.
func NotBlank(f ArgumentFactory, s string, msg ...Message) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", f.ArgumentError(describe(msg, defaultBlankString), nil)
	}
	return s, nil
}

// NotBlankPtr is NotBlank for optional strings; a nil pointer is a KindNull
// failure.
func NotBlankPtr(f NullArgumentFactory, s *string, msg ...Message) (*string, error) {
	if s == nil {
		return nil, f.NullError(describe(msg, defaultNilString), nil)
	}
	if strings.TrimSpace(*s) == "" {
		return nil, f.ArgumentError(describe(msg, defaultBlankString), nil)
	}
	return s, nil
}

// NoNilElements returns s, a KindNull failure when s is nil, or a
// KindArgument failure naming the index of the first nil element.
//
// A caller message may reference the offending index with a %d verb placed
// after its own arguments.
func NoNilElements[S ~[]E, E any](f NullArgumentFactory, s S, msg ...Message) (S, error) {
	if s == nil {
		return nil, f.NullError(describe(msg, defaultNilSlice), nil)
	}
	if !nilable(reflect.TypeFor[E]()) {
		return s, nil
	}
	for i, e := range s {
		if isNil(any(e)) {
			return nil, f.ArgumentError(describeIndexed(msg, defaultNilElement, i), nil)
		}
	}
	return s, nil
}

// ValidIndex returns s, a KindNull failure when s is nil, or a KindIndex
// failure when index is negative or not less than len(s).
func ValidIndex[S ~[]E, E any](f NullIndexFactory, s S, index int, msg ...Message) (S, error) {
	if s == nil {
		return nil, f.NullError(describe(msg, defaultNilSlice), nil)
	}
	if index < 0 || index >= len(s) {
		return nil, f.IndexError(describeIndexed(msg, defaultInvalidIndex, index), nil)
	}
	return s, nil
}

// ValidIndexString returns s, or a KindIndex failure when index is not a
// valid byte offset into s.
func ValidIndexString(f IndexFactory, s string, index int, msg ...Message) (string, error) {
	if index < 0 || index >= len(s) {
		return "", f.IndexError(describeIndexed(msg, defaultInvalidStrIndex, index), nil)
	}
	return s, nil
}

// describeIndexed realizes a message that also receives the offending index.
func describeIndexed(msg []Message, fallback string, index int) string {
	if len(msg) == 0 {
		return Format1(fallback, index)
	}
	m := msg[0]
	args := m.values()
	if len(args) == 0 {
		return m.template
	}
	return Formatf(m.template, append(args, index)...)
}
