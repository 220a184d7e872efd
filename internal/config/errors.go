// Package config loads ntlwiz wizard profiles. A profile is a YAML file
// holding the feature selection, configuration names, NTL paths and
// logging settings of one project.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the profile is invalid.
	ErrInvalidConfig = errors.New("config: invalid profile")

	// ErrInvalidYAML indicates invalid YAML syntax in a profile file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrConflictingAppType indicates mutually exclusive application types.
	ErrConflictingAppType = errors.New("config: conflicting application types")

	// ErrInvalidRuntime indicates a runtime module selection that cannot
	// be built.
	ErrInvalidRuntime = errors.New("config: invalid runtime module selection")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is matches ErrInvalidConfig and any sentinel wrapped by a contained error.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
