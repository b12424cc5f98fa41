package check

// Kind classifies a precondition failure.
type Kind int

const (
	// KindArgument reports an argument that does not satisfy a check.
	KindArgument Kind = iota + 1
	// KindNull reports a nil argument.
	KindNull
	// KindIndex reports an index outside the bounds of a container.
	KindIndex
	// KindState reports an object in the wrong state for the operation.
	KindState
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindNull:
		return "null"
	case KindIndex:
		return "index"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindArgument && k <= KindState
}
