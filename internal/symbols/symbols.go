// Package symbols defines the symbol vocabulary a project-creation front-end
// hands to the build-configuration resolver, and decodes it into a typed
// options record.
package symbols

import (
	"maps"
	"slices"
	"strings"
)

// Recognized symbol names.
const (
	UseUnicode     = "NTL_USE_UNICODE"
	AppTypeDLL     = "NTL_APPTYPE_DLL"
	AppTypeDriver  = "NTL_APPTYPE_DRIVER"
	AppTypeConsole = "NTL_APPTYPE_CONSOLE"
	AppTypeWin32   = "NTL_APPTYPE_WIN32"

	RuntimeCRT  = "NTL_RUNTIME_CRT"
	RuntimeEXC  = "NTL_RUNTIME_EXC"
	RuntimeRTTI = "NTL_RUNTIME_RTT"
	RuntimeIOS  = "NTL_RUNTIME_IOS"
	RuntimeFLT  = "NTL_RUNTIME_FLT"

	PlatformX64   = "NTL_PLATFORM_X64"
	WizardVersion = "WIZARD_VERSION"

	ProjectName   = "PROJECT_NAME"
	ProjectGUID   = "PROJECT_GUID"
	SourceFilter  = "SOURCE_FILTER"
	IncludeFilter = "INCLUDE_FILTER"

	SafeProjectName          = "SAFE_PROJECT_NAME"
	NiceSafeProjectName      = "NICE_SAFE_PROJECT_NAME"
	UppercaseSafeProjectName = "UPPERCASE_SAFE_PROJECT_NAME"
)

// Vocabulary returns every symbol name the resolver and project layer read.
func Vocabulary() []string {
	return []string{
		UseUnicode, AppTypeDLL, AppTypeDriver, AppTypeConsole, AppTypeWin32,
		RuntimeCRT, RuntimeEXC, RuntimeRTTI, RuntimeIOS, RuntimeFLT,
		PlatformX64, WizardVersion,
		ProjectName, ProjectGUID, SourceFilter, IncludeFilter,
	}
}

// IsKnown reports whether name is part of the recognized vocabulary.
func IsKnown(name string) bool {
	return slices.Contains(Vocabulary(), name)
}

// Source answers presence and value queries for named symbols. Unknown
// names are absent. Implementations must not change answers during a
// resolution pass.
type Source interface {
	// Has reports whether the named flag is set.
	Has(name string) bool
	// Get returns the symbol value and whether it is present.
	Get(name string) (string, bool)
}

// Map is a Source backed by a plain map of symbol values.
// A key whose value is "", "0", "false", "no" or "off" (any case) is
// treated as an unset flag by Has but is still returned by Get.
type Map map[string]string

// Has implements Source.
func (m Map) Has(name string) bool {
	v, ok := m[name]
	if !ok {
		return false
	}
	return truthy(v)
}

// Get implements Source.
func (m Map) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	maps.Copy(out, m)
	return out
}

// Names returns the keys of m in sorted order.
func (m Map) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Set stores a flag using the conventional "true"/"false" spelling.
func (m Map) Set(name string, on bool) {
	if on {
		m[name] = "true"
		return
	}
	m[name] = "false"
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// ParseAssignment splits a KEY=VALUE pair. A bare KEY sets the flag to
// "true".
func ParseAssignment(s string) (key, value string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false
	}
	key, value, found := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	if !found {
		return key, "true", true
	}
	return key, strings.TrimSpace(value), true
}
