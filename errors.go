package evmtypes

import (
	"errors"
	"fmt"
)

// Sentinel errors for the closed failure taxonomy. Anything this package
// returns unwraps to one of these or to an error from the underlying abi
// layer (wrapped in SerializationError). Ordinary "token not recognized"
// outcomes during signature parsing are not errors; they are silently
// dropped per the best-effort contract of ParseSignature.
var (
	// ErrBounds indicates a recursion or size limit was exceeded while
	// walking an externally supplied string or tree.
	ErrBounds = errors.New("evmtypes: bounds exceeded")

	// ErrDecode indicates a byte sequence could not be interpreted as a
	// value of the expected type.
	ErrDecode = errors.New("evmtypes: malformed byte sequence")
)

// DepthError reports that a recursive walk passed the configured depth
// ceiling. It unwraps to ErrBounds.
type DepthError struct {
	Depth int
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("evmtypes: recursion depth %d exceeds limit %d", e.Depth, e.Limit)
}

func (e *DepthError) Unwrap() error {
	return ErrBounds
}

// SerializationError wraps a failure from the underlying ABI encode/decode
// layer.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("evmtypes: serialization: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// RadixError indicates a numeric string could not be parsed in the expected
// base. It is reserved for genuine faults in decode-layer input; numeric
// suffixes in signature tokens fall back to defaults instead.
type RadixError struct {
	Input string
	Base  int
	Err   error
}

func (e *RadixError) Error() string {
	return fmt.Sprintf("evmtypes: cannot parse %q as base-%d integer: %v", e.Input, e.Base, e.Err)
}

func (e *RadixError) Unwrap() error {
	return e.Err
}

// boundsAt builds a DepthError for the given depth against a config.
func boundsAt(depth int, cfg *config) *DepthError {
	return &DepthError{Depth: depth, Limit: cfg.maxDepth}
}
