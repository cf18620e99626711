package internal

import "github.com/pkg/errors"

// Degenerate input is rare and deep in the call chain, so rather than thread
// errors through every metric, we panic with a geometryError and the public
// API recovers to convert it back into an error.

var (
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	ErrEmptyPolygon      = errors.New("empty polygon")
	ErrInvalidArgument   = errors.New("invalid argument")
)

type geometryError struct {
	err error
}

// Panic with a geometryError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(geometryError{errors.Wrapf(cause, format, args...)})
}

// Convert a recovered geometry panic into an error. Any other panic is
// re-raised untouched.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geomErr, ok := r.(geometryError); ok {
			return geomErr.err
		}
		panic(r)
	}
	return nil
}
