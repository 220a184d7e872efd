package models

// ConfigurationName names a build variant such as "debug" or "release".
type ConfigurationName string

const (
	ConfigDebug   ConfigurationName = "debug"
	ConfigRelease ConfigurationName = "release"
)

// DefaultConfigurationNames returns the stock configuration names in
// iteration order.
func DefaultConfigurationNames() []ConfigurationName {
	return []ConfigurationName{ConfigDebug, ConfigRelease}
}

// CharacterSet is the compiler character-set mode. Resolved
// configurations carry CharSetUnicode or CharSetNotSet, never a multi-byte
// set.
type CharacterSet string

const (
	CharSetNotSet  CharacterSet = "not-set"
	CharSetUnicode CharacterSet = "unicode"
)

// ConfigurationType is the kind of binary a configuration produces.
// ConfigTypeInherited leaves the choice to the host project template.
type ConfigurationType string

const (
	ConfigTypeInherited      ConfigurationType = ""
	ConfigTypeDynamicLibrary ConfigurationType = "dynamic-library"
)

// RuntimeLibrary is the C runtime linkage mode. Every configuration links
// the static release runtime, debug builds included.
type RuntimeLibrary string

const RuntimeMultiThreaded RuntimeLibrary = "multithreaded"

// Optimization is the compiler optimization profile.
type Optimization string

const (
	OptimizeDisabled Optimization = "disabled"
	// OptimizeFull is full optimization combined with whole-program
	// (link-time) code generation.
	OptimizeFull Optimization = "full+whole-program"
)

// InlineExpansion is the compiler inline function expansion mode.
type InlineExpansion string

const (
	InlineDefault     InlineExpansion = "default"
	InlineAnySuitable InlineExpansion = "any-suitable"
)

// InstructionSet is the enhanced instruction set the compiler may emit.
type InstructionSet string

const (
	InstructionSetDefault InstructionSet = "default"
	InstructionSetSIMD    InstructionSet = "simd"
)

// PrecompiledHeader is the precompiled header mode. Generated projects
// always use PCHNone.
type PrecompiledHeader string

const PCHNone PrecompiledHeader = "none"

// DebugInfoFormat is the compiler debug information format.
type DebugInfoFormat string

const DebugInfoEnabled DebugInfoFormat = "enabled"

// BasicRuntimeChecks is the compiler runtime check mode.
type BasicRuntimeChecks string

const RuntimeChecksNone BasicRuntimeChecks = "none"

// TargetMachine is the linker target architecture.
type TargetMachine string

const (
	MachineX86 TargetMachine = "x86"
	MachineX64 TargetMachine = "x64"
)

// Subsystem is the linker subsystem kind.
type Subsystem string

const (
	SubsystemConsole Subsystem = "console"
	SubsystemWindows Subsystem = "windows"
	// SubsystemNative is used for drivers and native applications.
	SubsystemNative Subsystem = "native"
)

// LinkIncremental is the incremental link mode.
type LinkIncremental string

const (
	LinkIncrementalYes LinkIncremental = "yes"
	LinkIncrementalNo  LinkIncremental = "no"
)
