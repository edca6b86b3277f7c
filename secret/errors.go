package secret

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a secret does not exist in the backend.
	ErrNotFound = errors.New("secret: not found")

	// ErrMalformedReference indicates a reference whose capture does not
	// split into a non-empty service and a non-empty account.
	ErrMalformedReference = errors.New("secret: malformed reference")
)

// ResolutionError reports a reference that could not be resolved. It names
// the environment key being processed and wraps the underlying cause.
type ResolutionError struct {
	Key string // environment key whose value was being resolved
	Ref string // full reference text, when a single reference is at fault
	Err error
}

func (e *ResolutionError) Error() string {
	switch {
	case e.Key != "" && e.Ref != "":
		return fmt.Sprintf("secret: resolve %s: %s: %v", e.Key, e.Ref, e.Err)
	case e.Key != "":
		return fmt.Sprintf("secret: resolve %s: %v", e.Key, e.Err)
	case e.Ref != "":
		return fmt.Sprintf("secret: resolve %s: %v", e.Ref, e.Err)
	default:
		return fmt.Sprintf("secret: resolve: %v", e.Err)
	}
}

func (e *ResolutionError) Unwrap() error { return e.Err }
