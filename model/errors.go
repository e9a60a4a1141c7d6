package model

import "github.com/pkg/errors"

// ErrorKind classifies errors surfaced at the outer entry points. Numeric
// kernels never construct these for well-formed input — only astrocore's
// entry points validate and wrap.
type ErrorKind int

const (
	// InvalidInput: out-of-range calendar tuples, latitudes/longitudes out
	// of range, negative radii, empty city list for a scout call.
	InvalidInput ErrorKind = iota
	// SerializationFailure: surfaced to the host, never raised during
	// computation itself.
	SerializationFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case SerializationFailure:
		return "SerializationFailure"
	default:
		return "Unknown"
	}
}

// AstroError wraps an ErrorKind with the operation name and underlying
// cause. A numeric-degenerate result or a timezone lookup miss are
// deliberately not error kinds here — both are recovered locally (a
// sentinel None / a fallback offset) and never become an AstroError.
type AstroError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *AstroError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *AstroError) Unwrap() error { return e.Err }

// NewInvalidInput builds an AstroError of kind InvalidInput, wrapping msg
// with a stack trace via pkg/errors.
func NewInvalidInput(op, msg string) *AstroError {
	return &AstroError{Kind: InvalidInput, Op: op, Err: errors.New(msg)}
}

// WrapInvalidInput wraps an existing error as InvalidInput, preserving its
// pkg/errors stack if it has one.
func WrapInvalidInput(op string, err error) *AstroError {
	return &AstroError{Kind: InvalidInput, Op: op, Err: errors.WithStack(err)}
}
