package config

import (
	"maps"
	"slices"

	"github.com/ontl/ntlwiz/internal/resolver"
	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

// Profile is the root of a wizard profile file.
type Profile struct {
	Project        ProjectConfig     `yaml:"project"`
	Features       symbols.Options   `yaml:"features"`
	Symbols        map[string]string `yaml:"symbols,omitempty"`
	Configurations []string          `yaml:"configurations"`
	Paths          PathsConfig       `yaml:"paths"`
	System         SystemConfig      `yaml:"system"`
}

// ProjectConfig describes the generated project.
type ProjectConfig struct {
	Name          string `yaml:"name"`
	SourceFilter  string `yaml:"source_filter,omitempty"`
	IncludeFilter string `yaml:"include_filter,omitempty"`
}

// PathsConfig locates the NTL checkout.
type PathsConfig struct {
	NTLBase string `yaml:"ntl_base"`
}

// SystemConfig holds logging and terminal settings.
type SystemConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	NoColor   bool   `yaml:"no_color"`
}

// SymbolMap flattens the profile into a symbol map. Typed features are
// written first, project fields next and raw symbols last, so raw symbols
// win. Derived project-name symbols are added at the end.
func (p *Profile) SymbolMap() symbols.Map {
	m := p.Features.Map()
	if p.Project.Name != "" {
		m[symbols.ProjectName] = p.Project.Name
	}
	if p.Project.SourceFilter != "" {
		m[symbols.SourceFilter] = p.Project.SourceFilter
	}
	if p.Project.IncludeFilter != "" {
		m[symbols.IncludeFilter] = p.Project.IncludeFilter
	}
	maps.Copy(m, p.Symbols)
	symbols.DeriveProjectSymbols(m)
	return m
}

// ConfigurationNames returns the configured names, or the defaults when
// none are set.
func (p *Profile) ConfigurationNames() []models.ConfigurationName {
	if len(p.Configurations) == 0 {
		return models.DefaultConfigurationNames()
	}
	names := make([]models.ConfigurationName, len(p.Configurations))
	for i, n := range p.Configurations {
		names[i] = models.ConfigurationName(n)
	}
	return names
}

// Catalog builds the resolver catalog described by the profile.
func (p *Profile) Catalog() resolver.Catalog {
	c := resolver.NewCatalog(p.Paths.NTLBase)
	c.Configurations = p.ConfigurationNames()
	return c
}

// UnknownSymbols returns raw symbol names outside the recognized
// vocabulary, sorted. They are ignored by the resolver.
func (p *Profile) UnknownSymbols() []string {
	var unknown []string
	for _, name := range slices.Sorted(maps.Keys(p.Symbols)) {
		if !symbols.IsKnown(name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
