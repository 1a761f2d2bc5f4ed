package facade

import (
	"errors"
	"fmt"

	"homestay/internal/domain"
)

// Every facade operation resolves to one of three caller-visible outcomes:
// success, ErrNotFound (a referenced id does not resolve), or
// ErrInvalid/ErrConflict. ErrInvalid means the input fails its own
// constraints; ErrConflict means the input clashes with the current state of
// other entities (duplicate email, duplicate title, overlapping dates, a
// second review). Anything else is an internal fault and propagates as-is.
var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = domain.ErrValidation
	ErrConflict = errors.New("conflict")
)

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
