package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by registry operations.
var (
	// ErrUnknownVariable is returned by Get, Set and IsPresent for a name
	// that was never declared. A typo never silently resolves to nil.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrReadOnly is returned by Set when neither the variable nor the
	// registry has a writer.
	ErrReadOnly = errors.New("variable is read-only")

	// ErrUnknownRule is returned by Declare when a rule name is not
	// recognized by the built-in engine or a configured external engine.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidName is returned by Declare for an empty variable name.
	ErrInvalidName = errors.New("variable name must not be empty")

	// ErrInvalidType is returned by ParseType for an unrecognized type name.
	ErrInvalidType = errors.New("invalid variable type")
)

// ValidationError carries the ordered violation messages produced by Set
// (one variable's rules) or ValidateAll (every declared variable with
// rules).
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, ", ")
}

// readOnlyError wraps ErrReadOnly with the variable name and a remediation
// hint.
func readOnlyError(name string) error {
	return fmt.Errorf("%w: %q has no writer; set one on the variable or install a registry default writer", ErrReadOnly, name)
}
