package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ontl/ntlwiz/internal/symbols"
)

// Validate checks the profile for correctness.
func Validate(p *Profile) error {
	var errs []ValidationError

	errs = append(errs, validateSystem(&p.System)...)
	errs = append(errs, validateConfigurations(p.Configurations)...)
	errs = append(errs, validateFeatures(p)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateSystem checks log level and format values.
func validateSystem(s *SystemConfig) []ValidationError {
	var errs []ValidationError

	if s.LogLevel != "" && !slices.Contains(validLogLevels, s.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   s.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}
	if s.LogFormat != "" && !slices.Contains(validLogFormats, s.LogFormat) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
			Value:   s.LogFormat,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

// validateConfigurations rejects empty and duplicate configuration names.
func validateConfigurations(names []string) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		field := fmt.Sprintf("configurations[%d]", i)
		if strings.TrimSpace(n) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "configuration name must not be empty",
				Wrapped: ErrInvalidConfig,
			})
			continue
		}
		if seen[n] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "duplicate configuration name",
				Value:   n,
				Wrapped: ErrInvalidConfig,
			})
		}
		seen[n] = true
	}
	return errs
}

// validateFeatures checks the application type and runtime modules.
// Raw symbols are folded in first.
func validateFeatures(p *Profile) []ValidationError {
	opts := symbols.Decode(p.SymbolMap())
	var errs []ValidationError
	errs = append(errs, validateAppType(opts.AppType)...)
	errs = append(errs, validateRuntime(opts)...)
	return errs
}

// validateAppType rejects driver projects that also request a user-mode
// subsystem.
func validateAppType(app symbols.AppType) []ValidationError {
	if !app.Driver {
		return nil
	}

	var others []string
	if app.Console {
		others = append(others, "console")
	}
	if app.Win32 {
		others = append(others, "win32")
	}
	if app.DLL {
		others = append(others, "dll")
	}
	if len(others) == 0 {
		return nil
	}
	return []ValidationError{{
		Field:   "features.app_type",
		Message: "driver cannot be combined with " + strings.Join(others, ", "),
		Wrapped: ErrConflictingAppType,
	}}
}

// validateRuntime enforces the module dependencies: exc, ios and flt build
// on crt, and ios and flt have no kernel-mode implementation.
func validateRuntime(opts symbols.Options) []ValidationError {
	rt := opts.Runtime
	var needCRT, userOnly []string
	if rt.EXC {
		needCRT = append(needCRT, "exc")
	}
	if rt.IOS {
		needCRT = append(needCRT, "ios")
		userOnly = append(userOnly, "ios")
	}
	if rt.FLT {
		needCRT = append(needCRT, "flt")
		userOnly = append(userOnly, "flt")
	}

	var errs []ValidationError
	if !rt.CRT && len(needCRT) > 0 {
		errs = append(errs, ValidationError{
			Field:   "features.runtime",
			Message: strings.Join(needCRT, ", ") + " requires crt",
			Wrapped: ErrInvalidRuntime,
		})
	}
	if opts.AppType.Driver && len(userOnly) > 0 {
		errs = append(errs, ValidationError{
			Field:   "features.runtime",
			Message: strings.Join(userOnly, ", ") + " not available in kernel mode",
			Wrapped: ErrInvalidRuntime,
		})
	}
	return errs
}
