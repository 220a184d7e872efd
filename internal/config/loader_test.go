package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

func TestLoaderLoadMissingUsesDefaults(t *testing.T) {
	t.Parallel()

	l := NewLoader(nil)
	p, err := l.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.Loaded() {
		t.Error("Loaded() should be false for a missing file")
	}
	if p.Project.Name != DefaultProjectName {
		t.Errorf("Project.Name: got %q, want %q", p.Project.Name, DefaultProjectName)
	}
	if !p.Features.AppType.Console || !p.Features.Runtime.CRT {
		t.Errorf("Features: got %+v, want console app with CRT", p.Features)
	}
	if err := Validate(p); err != nil {
		t.Errorf("default profile should validate, got %v", err)
	}
}

func TestLoaderLoadDriverProfile(t *testing.T) {
	t.Parallel()

	l := NewLoader(nil)
	p, err := l.Load(filepath.Join("testdata", "driver.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !l.Loaded() {
		t.Error("Loaded() should be true")
	}
	if !p.Features.AppType.Driver {
		t.Error("Features.AppType.Driver should be true")
	}
	if p.Features.WizardVersion != "10.0" {
		t.Errorf("WizardVersion: got %q, want %q", p.Features.WizardVersion, "10.0")
	}
	if p.System.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", p.System.LogLevel, "debug")
	}
	if p.System.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want default %q", p.System.LogFormat, DefaultLogFormat)
	}

	cat := p.Catalog()
	if cat.RuntimeDir != "d:/usr/lib/common/ontl/ntl/rtl" {
		t.Errorf("RuntimeDir: got %q", cat.RuntimeDir)
	}

	m := p.SymbolMap()
	if m[symbols.SafeProjectName] != "zena_driver" {
		t.Errorf("SAFE_PROJECT_NAME: got %q, want %q", m[symbols.SafeProjectName], "zena_driver")
	}
	if !m.Has(symbols.RuntimeEXC) {
		t.Error("NTL_RUNTIME_EXC should be set")
	}
}

func TestLoaderLoadRawSymbols(t *testing.T) {
	t.Parallel()

	p, err := NewLoader(nil).Load(filepath.Join("testdata", "symbols.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	m := p.SymbolMap()
	for _, name := range []string{symbols.AppTypeConsole, symbols.UseUnicode, symbols.RuntimeIOS} {
		if !m.Has(name) {
			t.Errorf("%s should be set", name)
		}
	}
	if v, _ := m.Get(symbols.SourceFilter); v != "cpp;asm" {
		t.Errorf("SOURCE_FILTER: got %q, want %q", v, "cpp;asm")
	}

	names := p.ConfigurationNames()
	if len(names) != 2 || names[0] != models.ConfigDebug {
		t.Errorf("ConfigurationNames: got %v, want defaults", names)
	}

	unknown := p.UnknownSymbols()
	if len(unknown) != 1 || unknown[0] != "VENDOR_FLAG" {
		t.Errorf("UnknownSymbols: got %v, want [VENDOR_FLAG]", unknown)
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(nil).Load(filepath.Join("testdata", "invalid.yaml"))
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("Load() error: got %v, want ErrInvalidYAML", err)
	}
}

func TestRawSymbolsOverrideFeatures(t *testing.T) {
	t.Parallel()

	p := NewDefaultProfile()
	p.Symbols = map[string]string{symbols.AppTypeConsole: "false"}

	if symbols.Decode(p.SymbolMap()).AppType.Console {
		t.Error("raw symbol should override the typed console feature")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", DefaultProfileName)
	want := NewDefaultProfile()
	want.Features.Unicode = true
	want.Symbols = map[string]string{symbols.PlatformX64: "true"}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("profile not written: %v", err)
	}

	got, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Features != want.Features {
		t.Errorf("Features: got %+v, want %+v", got.Features, want.Features)
	}
	if got.Symbols[symbols.PlatformX64] != "true" {
		t.Errorf("Symbols: got %v", got.Symbols)
	}
}
