// Package report renders resolution results for humans and tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ontl/ntlwiz/pkg/models"
)

// Format selects an output encoding.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatText, FormatMarkdown}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Report is the renderable outcome of one resolution.
type Report struct {
	Configurations []models.ResolvedConfiguration `yaml:"configurations" json:"configurations"`
	RuntimeFiles   []string                       `yaml:"runtime_files" json:"runtime_files"`
	Warnings       []string                       `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Errors         []string                       `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// Options controls styled output.
type Options struct {
	NoColor  bool
	WordWrap int
}

// Write renders rep to w in the given format.
func Write(w io.Writer, format Format, rep *Report, opts Options) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatText:
		_, err := io.WriteString(w, NewTextRenderer(opts.NoColor).Render(rep))
		return err
	case FormatMarkdown:
		out, err := RenderMarkdown(rep, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
