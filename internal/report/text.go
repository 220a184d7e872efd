package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ontl/ntlwiz/pkg/models"
)

// TextRenderer formats a Report as an aligned, optionally colored listing.
type TextRenderer struct {
	noColor    bool
	titleStyle lipgloss.Style
	keyStyle   lipgloss.Style
	warnStyle  lipgloss.Style
}

// NewTextRenderer creates a TextRenderer. With noColor every style is
// plain.
func NewTextRenderer(noColor bool) *TextRenderer {
	r := &TextRenderer{noColor: noColor}
	if noColor {
		r.titleStyle = lipgloss.NewStyle()
		r.keyStyle = lipgloss.NewStyle()
		r.warnStyle = lipgloss.NewStyle()
		return r
	}
	r.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C45A3C"))
	r.keyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	r.warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706"))
	return r
}

// Render formats rep.
func (r *TextRenderer) Render(rep *Report) string {
	if rep == nil {
		return ""
	}
	var b strings.Builder
	for i, rc := range rep.Configurations {
		if i > 0 {
			b.WriteByte('\n')
		}
		r.renderConfig(&b, rc)
	}

	if len(rep.RuntimeFiles) > 0 {
		b.WriteByte('\n')
		b.WriteString(r.titleStyle.Render("runtime sources"))
		b.WriteByte('\n')
		for _, f := range rep.RuntimeFiles {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	for _, w := range rep.Warnings {
		b.WriteString(r.warnStyle.Render("warning: " + w))
		b.WriteByte('\n')
	}
	for _, e := range rep.Errors {
		b.WriteString(r.warnStyle.Render("error: " + e))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *TextRenderer) renderConfig(b *strings.Builder, rc models.ResolvedConfiguration) {
	kind := "release"
	if rc.Debug {
		kind = "debug"
	}
	b.WriteString(r.titleStyle.Render(fmt.Sprintf("[%s] (%s build)", rc.Name, kind)))
	b.WriteByte('\n')

	configType := string(rc.ConfigurationType)
	if configType == "" {
		configType = "inherited"
	}
	sheets := strings.Join(rc.PropertySheets.Sheets, ";")
	if rc.PropertySheets.Degraded() {
		sheets = "(cleared) " + rc.PropertySheets.Warning
	}

	rows := [][2]string{
		{"configuration type", configType},
		{"output directory", rc.OutputDirectory},
		{"character set", string(rc.Compiler.CharacterSet)},
		{"runtime library", string(rc.Compiler.RuntimeLibrary)},
		{"warning level", fmt.Sprintf("%d", rc.Compiler.WarningLevel)},
		{"optimization", string(rc.Compiler.Optimization)},
		{"exceptions", yesNo(rc.Compiler.ExceptionHandling)},
		{"instruction set", string(rc.Compiler.InstructionSet)},
		{"defines", rc.Compiler.PreprocessorDefines},
		{"target machine", string(rc.Linker.TargetMachine)},
		{"subsystem", string(rc.Linker.Subsystem)},
		{"incremental link", string(rc.Linker.LinkIncremental)},
		{"checksum", yesNo(rc.Linker.SetChecksum)},
		{"driver", yesNo(rc.Linker.Driver)},
		{"property sheets", sheets},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "  %s %s\n", r.keyStyle.Render(fmt.Sprintf("%-18s", row[0])), row[1])
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
