package resolver

import (
	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

// PlatformDefiner supplies the platform-specific preprocessor prefix of a
// configuration. The returned string must end with ';' when non-empty.
type PlatformDefiner interface {
	PlatformDefine(opts symbols.Options, name models.ConfigurationName) string
}

// PlatformDefinerFunc adapts a function to PlatformDefiner.
type PlatformDefinerFunc func(opts symbols.Options, name models.ConfigurationName) string

// PlatformDefine implements PlatformDefiner.
func (f PlatformDefinerFunc) PlatformDefine(opts symbols.Options, name models.ConfigurationName) string {
	return f(opts, name)
}

// DefaultPlatformDefiner mirrors the host's stock platform defines.
var DefaultPlatformDefiner PlatformDefiner = PlatformDefinerFunc(func(opts symbols.Options, _ models.ConfigurationName) string {
	if opts.X64 {
		return "WIN32;_WIN64;"
	}
	return "WIN32;"
})

// targetMachine returns the linker target for opts.
func targetMachine(opts symbols.Options) models.TargetMachine {
	if opts.X64 {
		return models.MachineX64
	}
	return models.MachineX86
}
