package errorsx

// Must unwraps a value/error pair, panicking on failure. reserved for
// operations whose failure is a programming error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
