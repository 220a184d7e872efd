package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ontl/ntlwiz/internal/resolver"
	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

// ApplyOptions configures one Apply call.
type ApplyOptions struct {
	Symbols         symbols.Source             // Feature symbols. Nil means all flags off.
	Configurations  []models.ConfigurationName // Names to resolve. Empty means every catalog configuration.
	PlatformDefiner resolver.PlatformDefiner   // Platform define collaborator. Nil uses the default.
}

// ApplyResult summarizes what Apply pushed into the sink.
type ApplyResult struct {
	ProjectGUID    string                         // GUID stored in the sink.
	Configurations []models.ResolvedConfiguration // Configurations added to the sink.
	RuntimeFiles   []string                       // Runtime source paths added to the RTL group.
	Warnings       []string                       // Non-fatal degradations.
}

// Applier resolves configurations and writes them into a Sink.
type Applier interface {
	// Apply resolves opts and writes the result into sink. When some
	// configurations fail to resolve, the others are still applied and the
	// returned error wraps *resolver.ResolveErrors alongside a non-nil
	// result.
	Apply(ctx context.Context, sink Sink, opts ApplyOptions) (*ApplyResult, error)
}

type applier struct {
	catalog resolver.Catalog
	logger  *slog.Logger
}

// NewApplier creates an Applier over catalog.
func NewApplier(catalog resolver.Catalog, logger *slog.Logger) Applier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &applier{catalog: catalog, logger: logger}
}

// Apply implements Applier.
func (a *applier) Apply(ctx context.Context, sink Sink, opts ApplyOptions) (*ApplyResult, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: nil sink", ErrApplyFailed)
	}
	if err := a.catalog.Validate(); err != nil {
		return nil, err
	}

	src := opts.Symbols
	if src == nil {
		src = symbols.Map{}
	}

	a.logger.Info("applying build configurations",
		"configurations", len(opts.Configurations),
		"runtime_dir", a.catalog.RuntimeDir,
	)

	result := &ApplyResult{}

	// Step 1: Identify the project and create the filter tree
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guid, err := ProjectGUID(src)
	if err != nil {
		return nil, err
	}
	if err := sink.SetProjectGUID(guid); err != nil {
		return nil, fmt.Errorf("%w: set project GUID: %w", ErrApplyFailed, err)
	}
	result.ProjectGUID = guid
	if err := createFilters(sink, src); err != nil {
		return nil, fmt.Errorf("%w: create filters: %w", ErrApplyFailed, err)
	}

	// Step 2: Resolve configurations, with the sink receiving sheet lists
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := resolver.New(a.catalog,
		resolver.WithSheetAssigner(sink),
		resolver.WithPlatformDefiner(opts.PlatformDefiner),
		resolver.WithLogger(a.logger),
	)
	resolved, resolveErr := r.Resolve(src, opts.Configurations)

	// Step 3: Add resolved configurations
	for _, rc := range resolved {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := sink.AddConfiguration(rc); err != nil {
			return nil, fmt.Errorf("%w: add configuration %q: %w", ErrApplyFailed, rc.Name, err)
		}
		if rc.PropertySheets.Degraded() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("configuration %s: property sheets cleared: %s", rc.Name, rc.PropertySheets.Warning))
		}
		result.Configurations = append(result.Configurations, rc)
	}

	// Step 4: Attach runtime sources
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files := runtimePaths(a.catalog.RuntimeDir, r.ResolveRuntimeFiles(src))
	if len(files) > 0 {
		switch err := sink.AddFiles(RuntimeGroup, files); {
		case errors.Is(err, ErrFilterNotFound):
			// Without an RTL group the runtime sources are left out.
			result.Warnings = append(result.Warnings, fmt.Sprintf("runtime sources skipped: %s", err))
			a.logger.Warn("runtime filter missing, runtime sources skipped", "error", err)
		case err != nil:
			return nil, fmt.Errorf("%w: add runtime sources: %w", ErrApplyFailed, err)
		default:
			result.RuntimeFiles = files
		}
	}

	a.logger.Info("build configurations applied",
		"configurations", len(result.Configurations),
		"runtime_files", len(result.RuntimeFiles),
		"warnings", len(result.Warnings),
	)

	if resolveErr != nil {
		return result, fmt.Errorf("resolve configurations: %w", resolveErr)
	}
	return result, nil
}

// createFilters builds Source Files, Source Files/RTL and Header Files.
// The RTL group shares the source mask.
func createFilters(sink Sink, src symbols.Source) error {
	srcMask := symbolOr(src, symbols.SourceFilter, DefaultSourceMask)
	incMask := symbolOr(src, symbols.IncludeFilter, DefaultIncludeMask)

	steps := []struct {
		path []string
		mask string
	}{
		{[]string{SourceFilesFilter}, srcMask},
		{RuntimeGroup, srcMask},
		{[]string{HeaderFilesFilter}, incMask},
	}
	for _, s := range steps {
		if err := sink.AddFilter(s.path, s.mask); err != nil {
			return err
		}
	}
	return nil
}

func symbolOr(src symbols.Source, name, fallback string) string {
	if v, ok := src.Get(name); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func runtimePaths(dir string, files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = dir + "/" + f
	}
	return out
}
