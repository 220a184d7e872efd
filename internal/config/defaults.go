package config

import (
	"github.com/ontl/ntlwiz/internal/resolver"
	"github.com/ontl/ntlwiz/internal/symbols"
)

// Default value constants.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultWizardVersion = "9.0"
	DefaultProjectName   = "ntlapp"
)

// validLogLevels and validLogFormats list the accepted system settings.
var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// NewDefaultProfile returns a Profile with compiled defaults: a console
// application with the CRT runtime, debug and release configurations.
func NewDefaultProfile() *Profile {
	return &Profile{
		Project: ProjectConfig{Name: DefaultProjectName},
		Features: symbols.Options{
			AppType:       symbols.AppType{Console: true},
			Runtime:       symbols.Runtime{CRT: true},
			WizardVersion: DefaultWizardVersion,
		},
		Configurations: []string{"debug", "release"},
		Paths:          PathsConfig{NTLBase: resolver.DefaultBasePath},
		System:         NewDefaultSystemConfig(),
	}
}

// NewDefaultSystemConfig returns a SystemConfig with default values.
func NewDefaultSystemConfig() SystemConfig {
	return SystemConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// applyDefaults fills empty fields that have a non-zero default.
func applyDefaults(p *Profile) {
	if p.System.LogLevel == "" {
		p.System.LogLevel = DefaultLogLevel
	}
	if p.System.LogFormat == "" {
		p.System.LogFormat = DefaultLogFormat
	}
	if p.Paths.NTLBase == "" {
		p.Paths.NTLBase = resolver.DefaultBasePath
	}
}
