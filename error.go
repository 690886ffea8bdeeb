package regexgen

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a malformed input word. It is the generator's
// only failure kind: synthesis itself is total over well-formed input.
var ErrInvalidInput = errors.New("invalid input word")

// InputError wraps ErrInvalidInput with the position of the offending word.
type InputError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("regexgen: word %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}
