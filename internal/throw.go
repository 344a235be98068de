package internal

import "github.com/pkg/errors"

// Threading errors through every tangent walk and wrapping loop would add a
// lot of noise to the algorithms. Instead, we use panics, and the public API
// recovers to convert to an error.

var (
	// Fewer points than the algorithm needs.
	ErrInvalidInput = errors.New("invalid input")
	// A configuration the algorithm could not resolve, such as a wrapping loop
	// that ran past its bound on collinear or duplicated points.
	ErrDegenerate = errors.New("degenerate input")
)

// The panic payload. Wrapping the error in a distinct type keeps runtime
// panics (which are also errors) from being mistaken for ours.
type HullError struct {
	error
}

func (e HullError) Unwrap() error {
	return e.error
}

// Panic with err. For callers outside this package that build on the
// algorithms and want their failures recovered the same way.
func Throw(err error) {
	panic(HullError{err})
}

// Panic with an ErrDegenerate.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Wrapf(ErrDegenerate, format, args...)})
}

// Panic with an ErrInvalidInput.
func invalidf(format string, args ...interface{}) {
	panic(HullError{errors.Wrapf(ErrInvalidInput, format, args...)})
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
