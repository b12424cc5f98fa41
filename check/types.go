package check

import "reflect"

const (
	defaultIsInstanceOf     = "Expected type: %s, actual: %s"
	defaultIsAssignableFrom = "Cannot assign a %s to a %s"
)

// IsInstanceOf returns obj, or a KindArgument failure when obj is nil or its
// dynamic type is not assignable to typ.
func IsInstanceOf(f ArgumentFactory, typ reflect.Type, obj any, msg ...Message) (any, error) {
	if typ == nil || isNil(obj) || !reflect.TypeOf(obj).AssignableTo(typ) {
		return nil, f.ArgumentError(describeFunc(msg, func() string {
			return Format2(defaultIsInstanceOf, typeName(typ), typeName(reflect.TypeOf(obj)))
		}), nil)
	}
	return obj, nil
}

// InstanceOf returns obj as a T, or a KindArgument failure when obj is nil or
// does not hold a T.
func InstanceOf[T any](f ArgumentFactory, obj any, msg ...Message) (T, error) {
	v, ok := obj.(T)
	if !ok || isNil(obj) {
		var zero T
		return zero, f.ArgumentError(describeFunc(msg, func() string {
			return Format2(defaultIsInstanceOf, typeName(reflect.TypeFor[T]()), typeName(reflect.TypeOf(obj)))
		}), nil)
	}
	return v, nil
}

// IsAssignableFrom returns candidate, or a KindArgument failure when
// candidate is nil or values of candidate are not assignable to superType.
func IsAssignableFrom(f ArgumentFactory, superType, candidate reflect.Type, msg ...Message) (reflect.Type, error) {
	if superType == nil || candidate == nil || !candidate.AssignableTo(superType) {
		return nil, f.ArgumentError(describeFunc(msg, func() string {
			return Format2(defaultIsAssignableFrom, typeName(candidate), typeName(superType))
		}), nil)
	}
	return candidate, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
