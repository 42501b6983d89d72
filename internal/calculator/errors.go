package calculator

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match them with errors.Is; the typed errors
// below carry the offending token or field.
var (
	ErrMalformedEntry = errors.New("malformed roster entry")
	ErrInvalidConfig  = errors.New("invalid allocation config")
)

// MalformedEntryError reports a roster token that could not be read as
// a name/points pair.
type MalformedEntryError struct {
	Token  string
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed roster entry %q: %s", e.Token, e.Reason)
}

func (e *MalformedEntryError) Unwrap() error { return ErrMalformedEntry }

// InvalidConfigError reports a configuration or input precondition that
// failed before any pool math ran.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
