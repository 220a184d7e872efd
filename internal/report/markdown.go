package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// defaultWordWrap is the markdown wrap width when none is set.
const defaultWordWrap = 100

// Markdown returns rep as a markdown document.
func Markdown(rep *Report) string {
	var b strings.Builder
	b.WriteString("# Build configurations\n\n")

	for _, rc := range rep.Configurations {
		fmt.Fprintf(&b, "## %s\n\n", rc.Name)
		b.WriteString("| Setting | Value |\n|---|---|\n")
		row := func(k, v string) {
			fmt.Fprintf(&b, "| %s | `%s` |\n", k, v)
		}
		row("debug build", yesNo(rc.Debug))
		row("character set", string(rc.Compiler.CharacterSet))
		row("runtime library", string(rc.Compiler.RuntimeLibrary))
		row("warning level", fmt.Sprintf("%d", rc.Compiler.WarningLevel))
		row("optimization", string(rc.Compiler.Optimization))
		row("defines", rc.Compiler.PreprocessorDefines)
		row("subsystem", string(rc.Linker.Subsystem))
		row("incremental link", string(rc.Linker.LinkIncremental))
		row("checksum", yesNo(rc.Linker.SetChecksum))
		b.WriteByte('\n')

		if rc.PropertySheets.Degraded() {
			fmt.Fprintf(&b, "> Property sheets cleared: %s\n\n", rc.PropertySheets.Warning)
		} else if len(rc.PropertySheets.Sheets) > 0 {
			b.WriteString("Property sheets:\n\n")
			for _, s := range rc.PropertySheets.Sheets {
				fmt.Fprintf(&b, "- `%s`\n", s)
			}
			b.WriteByte('\n')
		}
	}

	if len(rep.RuntimeFiles) > 0 {
		b.WriteString("## Runtime sources\n\n")
		for _, f := range rep.RuntimeFiles {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
		b.WriteByte('\n')
	}
	if len(rep.Warnings)+len(rep.Errors) > 0 {
		b.WriteString("## Problems\n\n")
		for _, w := range rep.Warnings {
			fmt.Fprintf(&b, "- warning: %s\n", w)
		}
		for _, e := range rep.Errors {
			fmt.Fprintf(&b, "- error: %s\n", e)
		}
	}
	return b.String()
}

// RenderMarkdown renders rep through glamour for terminal display.
func RenderMarkdown(rep *Report, opts Options) (string, error) {
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = defaultWordWrap
	}
	style := glamour.WithAutoStyle()
	if opts.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(rep))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
