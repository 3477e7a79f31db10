package lookup

import (
	"errors"
	"fmt"
)

// ErrLookup means the external service could not answer for an identifier.
var ErrLookup = errors.New("lookup failed")

// Error is a failed lookup of one identifier.
type Error struct {
	// URI of the identifier.
	URI string

	// Err is the cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lookup of %s failed: %v", e.URI, e.Err)
}

// Unwrap exposes both ErrLookup and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{ErrLookup, e.Err}
}

// NewError wraps err as a failed lookup of uri.
func NewError(uri string, err error) error {
	return &Error{URI: uri, Err: err}
}
