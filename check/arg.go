package check

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of floating-point types.
type Floating interface {
	~float32 | ~float64
}

type argKind uint8

const (
	argNone argKind = iota
	argInt
	argUint
	argFloat
	argString
	argBool
)

// Arg is a message argument held by value. It is converted to an interface
// only when its message is realized.
type Arg struct {
	kind argKind
	i    int64
	u    uint64
	f    float64
	s    string
}

// Int returns an Arg holding a signed integer.
func Int[N Signed](v N) Arg {
	return Arg{kind: argInt, i: int64(v)}
}

// Uint returns an Arg holding an unsigned integer.
func Uint[N Unsigned](v N) Arg {
	return Arg{kind: argUint, u: uint64(v)}
}

// Float returns an Arg holding a floating-point number.
func Float[N Floating](v N) Arg {
	return Arg{kind: argFloat, f: float64(v)}
}

// Str returns an Arg holding a string.
func Str[S ~string](v S) Arg {
	return Arg{kind: argString, s: string(v)}
}

// Bool returns an Arg holding a boolean.
func Bool(v bool) Arg {
	a := Arg{kind: argBool}
	if v {
		a.i = 1
	}
	return a
}

func (a Arg) value() any {
	switch a.kind {
	case argInt:
		return a.i
	case argUint:
		return a.u
	case argFloat:
		return a.f
	case argString:
		return a.s
	case argBool:
		return a.i == 1
	default:
		return nil
	}
}
