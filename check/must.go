package check

// Must returns v, or panics with err when err is not nil. It lets a check
// failure escape from code paths that cannot return an error.
//
//	cfg := check.Must(validation.NotNil(cfg))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
