package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ontl/ntlwiz/pkg/models"
)

func sampleReport() *Report {
	return &Report{
		Configurations: []models.ResolvedConfiguration{
			{
				Name:  models.ConfigDebug,
				Debug: true,
				Compiler: models.CompilerSettings{
					CharacterSet:        models.CharSetUnicode,
					RuntimeLibrary:      models.RuntimeMultiThreaded,
					WarningLevel:        3,
					Optimization:        models.OptimizeDisabled,
					PreprocessorDefines: "WIN32;NTL_SUBSYSTEM_KM;_DEBUG",
				},
				Linker: models.LinkerSettings{
					TargetMachine:   models.MachineX86,
					Subsystem:       models.SubsystemNative,
					LinkIncremental: models.LinkIncrementalNo,
					SetChecksum:     true,
					Driver:          true,
				},
				PropertySheets: models.PropertySheetResult{Sheets: []string{"ntl-props.vsprops", "ntl-km.vsprops"}},
			},
			{
				Name: models.ConfigRelease,
				Compiler: models.CompilerSettings{
					WarningLevel: 4,
					Optimization: models.OptimizeFull,
				},
				PropertySheets: models.PropertySheetResult{Sheets: []string{}, Warning: "host refused"},
			},
		},
		RuntimeFiles: []string{"rtl/crt.cpp"},
		Warnings:     []string{"configuration release: property sheets cleared"},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{" JSON ", FormatJSON, false},
		{"text", FormatText, false},
		{"markdown", FormatMarkdown, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("error should wrap ErrUnknownFormat, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, sampleReport(), Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(got.Configurations) != 2 {
		t.Fatalf("decoded %d configurations, want 2", len(got.Configurations))
	}
	if got.Configurations[0].Linker.Subsystem != models.SubsystemNative {
		t.Errorf("subsystem = %q, want native", got.Configurations[0].Linker.Subsystem)
	}
	if !strings.Contains(buf.String(), "preprocessor_defines: WIN32;NTL_SUBSYSTEM_KM;_DEBUG") {
		t.Errorf("YAML output missing defines:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, sampleReport(), Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := got["runtime_files"]; !ok {
		t.Error("JSON output missing runtime_files")
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, FormatText, sampleReport(), Options{NoColor: true}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"[debug] (debug build)",
		"[release] (release build)",
		"configuration type inherited",
		"subsystem          native",
		"(cleared) host refused",
		"rtl/crt.cpp",
		"warning: configuration release",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestTextRendererNil(t *testing.T) {
	t.Parallel()

	if got := NewTextRenderer(true).Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md := Markdown(sampleReport())
	for _, want := range []string{
		"# Build configurations",
		"## debug",
		"| subsystem | `native` |",
		"> Property sheets cleared: host refused",
		"- `ntl-km.vsprops`",
		"## Runtime sources",
		"## Problems",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestWriteMarkdownRendered(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, FormatMarkdown, sampleReport(), Options{NoColor: true, WordWrap: 120}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Build configurations") || !strings.Contains(out, "crt.cpp") {
		t.Errorf("rendered markdown missing content:\n%s", out)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, Format("xml"), sampleReport(), Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write() = %v, want ErrUnknownFormat", err)
	}
}
