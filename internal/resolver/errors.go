// Package resolver derives complete compiler, linker and property-sheet
// settings for each build configuration from a set of feature symbols.
// Resolution is a pure function of the symbol source and the catalog the
// Resolver was built with.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ontl/ntlwiz/pkg/models"
)

// Sentinel errors for resolution.
var (
	// ErrInvalidConfigurationName indicates a configuration name outside the
	// catalog's recognized set.
	ErrInvalidConfigurationName = errors.New("resolver: invalid configuration name")

	// ErrInvalidCatalog indicates a catalog that cannot drive a resolution.
	ErrInvalidCatalog = errors.New("resolver: invalid catalog")

	// ErrSheetAssignment indicates the host refused a property-sheet
	// assignment. It is recoverable: the sheet list is cleared and
	// resolution continues.
	ErrSheetAssignment = errors.New("resolver: property sheet assignment failed")
)

// ConfigError records the failure of a single configuration.
type ConfigError struct {
	Name models.ConfigurationName
	Err  error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ResolveErrors collects the per-configuration failures of one Resolve
// call. Configurations not listed here resolved normally.
type ResolveErrors struct {
	Errors []ConfigError
}

// Error implements the error interface.
func (e *ResolveErrors) Error() string {
	if len(e.Errors) == 0 {
		return "resolver: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i := range e.Errors {
		msgs[i] = e.Errors[i].Error()
	}
	return fmt.Sprintf("resolver: %d configuration(s) failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes each configuration error to errors.Is and errors.As.
func (e *ResolveErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i := range e.Errors {
		errs[i] = &e.Errors[i]
	}
	return errs
}

// Failed returns the names of the configurations that did not resolve.
func (e *ResolveErrors) Failed() []models.ConfigurationName {
	names := make([]models.ConfigurationName, len(e.Errors))
	for i, ce := range e.Errors {
		names[i] = ce.Name
	}
	return names
}
