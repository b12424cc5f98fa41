package check

import "cmp"

const (
	defaultInclusiveBetween = "The value %v is not in the specified inclusive range of %v to %v"
	defaultExclusiveBetween = "The value %v is not in the specified exclusive range of %v to %v"
)

// InclusiveBetween returns value, or a KindArgument failure when value lies
// outside [start, end]. NaN is never in range.
//
// The success path compares and returns; value is not converted to an
// interface unless the check fails.
func InclusiveBetween[N cmp.Ordered](f ArgumentFactory, start, end, value N, msg ...Message) (N, error) {
	if cmp.Less(value, start) || cmp.Less(end, value) {
		var zero N
		return zero, f.ArgumentError(describeFunc(msg, func() string {
			return Formatf(defaultInclusiveBetween, value, start, end)
		}), nil)
	}
	return value, nil
}

// ExclusiveBetween returns value, or a KindArgument failure when value lies
// outside (start, end). NaN is never in range.
func ExclusiveBetween[N cmp.Ordered](f ArgumentFactory, start, end, value N, msg ...Message) (N, error) {
	if !cmp.Less(start, value) || !cmp.Less(value, end) {
		var zero N
		return zero, f.ArgumentError(describeFunc(msg, func() string {
			return Formatf(defaultExclusiveBetween, value, start, end)
		}), nil)
	}
	return value, nil
}

// InclusiveBetweenFunc is InclusiveBetween for types ordered by compare,
// which returns a negative number, zero or a positive number as a is less
// than, equal to or greater than b (for example time.Time.Compare).
func InclusiveBetweenFunc[T any](f ArgumentFactory, start, end, value T, compare func(a, b T) int, msg ...Message) (T, error) {
	if compare(value, start) < 0 || compare(value, end) > 0 {
		var zero T
		return zero, f.ArgumentError(describeFunc(msg, func() string {
			return Formatf(defaultInclusiveBetween, value, start, end)
		}), nil)
	}
	return value, nil
}

// ExclusiveBetweenFunc is ExclusiveBetween for types ordered by compare.
func ExclusiveBetweenFunc[T any](f ArgumentFactory, start, end, value T, compare func(a, b T) int, msg ...Message) (T, error) {
	if compare(value, start) <= 0 || compare(value, end) >= 0 {
		var zero T
		return zero, f.ArgumentError(describeFunc(msg, func() string {
			return Formatf(defaultExclusiveBetween, value, start, end)
		}), nil)
	}
	return value, nil
}
