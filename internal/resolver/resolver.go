package resolver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

// baseWarningLevel is the compiler warning level of debug builds. Release
// builds use one level higher.
const baseWarningLevel = 3

// OutputDirectory is the output directory assigned to every configuration.
const OutputDirectory = `$(PlatformName)\$(ConfigurationName)`

// Resolver turns symbol sources into resolved configurations. It holds no
// state between calls and is safe for concurrent use when its
// collaborators are.
type Resolver struct {
	catalog  Catalog
	platform PlatformDefiner
	sheets   SheetAssigner
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPlatformDefiner sets the platform define collaborator.
func WithPlatformDefiner(p PlatformDefiner) Option {
	return func(r *Resolver) {
		if p != nil {
			r.platform = p
		}
	}
}

// WithSheetAssigner sets the host that receives property-sheet lists.
func WithSheetAssigner(s SheetAssigner) Option {
	return func(r *Resolver) {
		if s != nil {
			r.sheets = s
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Resolver over a copy of catalog.
func New(catalog Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:  catalog.clone(),
		platform: DefaultPlatformDefiner,
		sheets:   acceptAll{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns a copy of the resolver's catalog.
func (r *Resolver) Catalog() Catalog {
	return r.catalog.clone()
}

// IsDebug reports whether a configuration name denotes a debug build.
// Any name containing "debug" (case-sensitive) is a debug build.
func IsDebug(name models.ConfigurationName) bool {
	return strings.Contains(string(name), "debug")
}

// Resolve derives a ResolvedConfiguration for each name, in order. A nil
// or empty names slice resolves every catalog configuration.
//
// Configurations fail independently: the returned slice holds every
// configuration that resolved, and a non-nil error is a *ResolveErrors
// describing the rest.
func (r *Resolver) Resolve(src symbols.Source, names []models.ConfigurationName) ([]models.ResolvedConfiguration, error) {
	if len(names) == 0 {
		names = r.catalog.Configurations
	}

	opts := symbols.Decode(src)
	files := r.runtimeFiles(src)

	out := make([]models.ResolvedConfiguration, 0, len(names))
	var errs []ConfigError
	for _, name := range names {
		rc, err := r.resolveOne(opts, name, files)
		if err != nil {
			r.logger.Warn("configuration not resolved", "name", name, "error", err)
			errs = append(errs, ConfigError{Name: name, Err: err})
			continue
		}
		out = append(out, rc)
	}

	if len(errs) > 0 {
		return out, &ResolveErrors{Errors: errs}
	}
	return out, nil
}

// ResolveRuntimeFiles returns the runtime sources selected by src. Modules
// are visited in catalog order and contribute all their files in order.
// Each path appears at most once. The result does not depend on the
// configuration.
func (r *Resolver) ResolveRuntimeFiles(src symbols.Source) []string {
	return r.runtimeFiles(src)
}

func (r *Resolver) runtimeFiles(src symbols.Source) []string {
	files := []string{}
	if src == nil {
		return files
	}
	seen := make(map[string]bool)
	for _, m := range r.catalog.Modules {
		if !src.Has(m.Symbol) {
			continue
		}
		for _, f := range m.Files {
			if seen[f] {
				continue
			}
			seen[f] = true
			files = append(files, f)
		}
	}
	return files
}

func (r *Resolver) resolveOne(opts symbols.Options, name models.ConfigurationName, files []string) (models.ResolvedConfiguration, error) {
	if !r.catalog.Recognizes(name) {
		return models.ResolvedConfiguration{}, fmt.Errorf("%w: %q (recognized: %s)",
			ErrInvalidConfigurationName, name, joinNames(r.catalog.Configurations))
	}

	debug := IsDebug(name)
	rc := models.ResolvedConfiguration{
		Name:            name,
		Debug:           debug,
		OutputDirectory: OutputDirectory,
		Compiler:        r.compiler(opts, name, debug),
		Linker:          linker(opts, debug),
		PropertySheets:  r.assignSheets(opts, name),
		RuntimeFiles:    slices.Clone(files),
	}
	if opts.AppType.DLL {
		rc.ConfigurationType = models.ConfigTypeDynamicLibrary
	}

	r.logger.Debug("resolved configuration",
		"name", name,
		"debug", debug,
		"subsystem", rc.Linker.Subsystem,
		"sheets", len(rc.PropertySheets.Sheets),
	)
	return rc, nil
}

func (r *Resolver) compiler(opts symbols.Options, name models.ConfigurationName, debug bool) models.CompilerSettings {
	cl := models.CompilerSettings{
		CharacterSet: models.CharSetNotSet,
		// The release runtime is selected for debug builds as well.
		RuntimeLibrary:      models.RuntimeMultiThreaded,
		WarningLevel:        baseWarningLevel,
		InstructionSet:      models.InstructionSetDefault,
		InlineExpansion:     models.InlineDefault,
		BufferSecurityCheck: false,
		Detect64BitIssues:   false,
		BasicRuntimeChecks:  models.RuntimeChecksNone,
		PrecompiledHeader:   models.PCHNone,
		DebugInfoFormat:     models.DebugInfoEnabled,
	}
	if opts.Unicode {
		cl.CharacterSet = models.CharSetUnicode
	}

	if debug {
		cl.MinimalRebuild = true
		cl.Optimization = models.OptimizeDisabled
	} else {
		cl.WarningLevel++
		cl.StringPooling = true
		cl.InlineExpansion = models.InlineAnySuitable
		cl.Optimization = models.OptimizeFull
		cl.WholeProgram = true
	}

	cl.ExceptionHandling = opts.Runtime.EXC
	if opts.Runtime.FLT {
		// SIMD, not SSE2: the runtime has no SSE2 library support.
		cl.InstructionSet = models.InstructionSetSIMD
	}

	defines := r.platform.PlatformDefine(opts, name)
	if opts.AppType.Driver {
		defines += "NTL_SUBSYSTEM_KM;"
	}
	if debug {
		defines += "_DEBUG"
	} else {
		defines += "NDEBUG"
	}
	cl.PreprocessorDefines = defines

	return cl
}

func linker(opts symbols.Options, debug bool) models.LinkerSettings {
	ln := models.LinkerSettings{
		TargetMachine:     targetMachine(opts),
		GenerateDebugInfo: true,
		GenerateManifest:  false,
		Driver:            opts.AppType.Driver,
	}

	if debug {
		ln.LinkIncremental = models.LinkIncrementalYes
	} else {
		ln.SetChecksum = true
		ln.LinkIncremental = models.LinkIncrementalNo
	}

	// Subsystem priority: console, then windows (win32 or dll), then native.
	// Native overrides the debug/release link defaults above.
	switch {
	case opts.AppType.Console:
		ln.Subsystem = models.SubsystemConsole
	case opts.AppType.Win32 || opts.AppType.DLL:
		ln.Subsystem = models.SubsystemWindows
	default:
		ln.Subsystem = models.SubsystemNative
		ln.SetChecksum = true
		ln.LinkIncremental = models.LinkIncrementalNo
	}

	return ln
}

// assignSheets hands the sheet list to the host. A refused assignment
// yields an empty list and a warning; it never fails the configuration.
func (r *Resolver) assignSheets(opts symbols.Options, name models.ConfigurationName) models.PropertySheetResult {
	sheets := propertySheets(r.catalog.SheetDir, opts)
	if err := r.sheets.AssignPropertySheets(name, slices.Clone(sheets)); err != nil {
		r.logger.Warn("property sheets cleared", "name", name, "error", err)
		if !errors.Is(err, ErrSheetAssignment) {
			err = fmt.Errorf("%w: %v", ErrSheetAssignment, err)
		}
		return models.PropertySheetResult{
			Sheets:  []string{},
			Warning: err.Error(),
		}
	}
	return models.PropertySheetResult{Sheets: sheets}
}

func joinNames(names []models.ConfigurationName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
