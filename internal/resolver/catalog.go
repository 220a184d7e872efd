package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

// DefaultBasePath is the NTL checkout location used when none is
// configured. It is a build macro so generated projects stay portable.
const DefaultBasePath = "$(NTLPATH)"

// RuntimeModule is an optional block of runtime-library sources included
// as a unit when its symbol is set.
type RuntimeModule struct {
	Symbol string   `yaml:"symbol" json:"symbol"`
	Files  []string `yaml:"files" json:"files"`
}

// Catalog is the fixed input a Resolver is built from. Construct it once
// and pass it to New; the Resolver keeps its own copy.
type Catalog struct {
	// Configurations is the ordered recognized configuration set.
	Configurations []models.ConfigurationName `yaml:"configurations" json:"configurations"`
	// Modules is the runtime module catalog in inclusion order.
	Modules []RuntimeModule `yaml:"modules" json:"modules"`
	// RuntimeDir is the directory runtime sources are referenced from.
	RuntimeDir string `yaml:"runtime_dir" json:"runtime_dir"`
	// SheetDir is the directory holding the NTL property sheets.
	SheetDir string `yaml:"sheet_dir" json:"sheet_dir"`
}

// DefaultModules returns the stock runtime module catalog:
// CRT, exception handling, RTTI, iostream, floating point.
func DefaultModules() []RuntimeModule {
	return []RuntimeModule{
		{Symbol: symbols.RuntimeCRT, Files: []string{"crt.cpp"}},
		{Symbol: symbols.RuntimeEXC, Files: []string{"eh.cpp", "ehsup.asm"}},
		{Symbol: symbols.RuntimeRTTI, Files: []string{"rtti.cpp"}},
		{Symbol: symbols.RuntimeIOS, Files: []string{"iostream.cpp"}},
		{Symbol: symbols.RuntimeFLT, Files: []string{"math.cpp", "msvcrt.cpp"}},
	}
}

// NewCatalog returns the stock catalog rooted at the given NTL base path.
// An empty base uses DefaultBasePath.
func NewCatalog(base string) Catalog {
	base = strings.TrimRight(strings.TrimSpace(base), `/\`)
	if base == "" {
		base = DefaultBasePath
	}
	return Catalog{
		Configurations: models.DefaultConfigurationNames(),
		Modules:        DefaultModules(),
		RuntimeDir:     base + "/rtl",
		SheetDir:       base + "/../samples/vstudio",
	}
}

// DefaultCatalog returns NewCatalog(DefaultBasePath).
func DefaultCatalog() Catalog {
	return NewCatalog(DefaultBasePath)
}

// Recognizes reports whether name is one of the catalog configurations.
func (c Catalog) Recognizes(name models.ConfigurationName) bool {
	return slices.Contains(c.Configurations, name)
}

// Validate checks that the catalog is usable.
func (c Catalog) Validate() error {
	if len(c.Configurations) == 0 {
		return fmt.Errorf("%w: no configurations", ErrInvalidCatalog)
	}
	seen := make(map[models.ConfigurationName]bool, len(c.Configurations))
	for _, name := range c.Configurations {
		if strings.TrimSpace(string(name)) == "" {
			return fmt.Errorf("%w: empty configuration name", ErrInvalidCatalog)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate configuration %q", ErrInvalidCatalog, name)
		}
		seen[name] = true
	}
	for i, m := range c.Modules {
		if m.Symbol == "" {
			return fmt.Errorf("%w: module %d has no symbol", ErrInvalidCatalog, i)
		}
		if len(m.Files) == 0 {
			return fmt.Errorf("%w: module %s has no files", ErrInvalidCatalog, m.Symbol)
		}
	}
	return nil
}

// clone deep-copies c so later changes by the caller do not leak into a
// Resolver.
func (c Catalog) clone() Catalog {
	out := c
	out.Configurations = slices.Clone(c.Configurations)
	out.Modules = make([]RuntimeModule, len(c.Modules))
	for i, m := range c.Modules {
		out.Modules[i] = RuntimeModule{Symbol: m.Symbol, Files: slices.Clone(m.Files)}
	}
	return out
}
