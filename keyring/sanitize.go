package keyring

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidInput indicates a service or account name that is unsafe to
// hand to a secure-storage backend.
var ErrInvalidInput = errors.New("keyring: invalid input")

// maxNameLen caps service and account names. Both security(1) and the
// Secret Service D-Bus API degrade on very long attribute values.
const maxNameLen = 255

// validateNames rejects unsafe service/account names before any backend
// call. Names must be non-empty, at most maxNameLen bytes, free of control
// characters, and must not start with "-": the macOS backend passes them to
// security(1), where a leading dash would be parsed as an option. Secret
// values themselves are not restricted.
func validateNames(service, account string) error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"service", service},
		{"account", account},
	} {
		switch {
		case field.value == "":
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, field.name)
		case len(field.value) > maxNameLen:
			return fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidInput, field.name, maxNameLen)
		case strings.HasPrefix(field.value, "-"):
			return fmt.Errorf("%w: %s must not start with %q", ErrInvalidInput, field.name, "-")
		case strings.IndexFunc(field.value, unicode.IsControl) >= 0:
			return fmt.Errorf("%w: %s contains a control character", ErrInvalidInput, field.name)
		}
	}
	return nil
}
