package domain

import (
	"errors"
	"fmt"
)

// ErrValidation wraps every field-level constraint failure. Callers match it
// with errors.Is; the wrapped message names the field and the violated rule.
var ErrValidation = errors.New("validation error")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
