package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ontl/ntlwiz/internal/core/project"
)

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Show the project filter tree with runtime sources",
		Long: `Apply the feature selection to an in-memory project and print its
filter tree: Source Files, Source Files/RTL with the runtime sources, and
Header Files.`,
		Args: cobra.NoArgs,
		RunE: runFiles,
	}
	addProfileFlags(cmd)
	cmd.Flags().Bool("reject-sheets", false, "Simulate a host that cannot load property sheets")
	cmd.Flags().Bool("yaml", false, "Print the filter tree as YAML")
	return cmd
}

func runFiles(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(cmd)
	if err != nil {
		return err
	}
	d := ensureDeps()

	rec := project.NewRecorder()
	rec.RejectSheets(getBoolFlag(cmd, "reject-sheets"))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, applyErr := project.NewApplier(p.Catalog(), d.Logger).Apply(ctx, rec, project.ApplyOptions{
		Symbols:        p.SymbolMap(),
		Configurations: selectedConfigurations(cmd, p),
	})
	if res == nil {
		return applyErr
	}

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "yaml") {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rec.Filters()); err != nil {
			return fmt.Errorf("encode filters: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "project %s %s\n", p.Project.Name, rec.ProjectGUID())
		for _, f := range rec.Filters() {
			writeFilter(out, f, 0)
		}
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return applyErr
}

func writeFilter(w io.Writer, f *project.Filter, depth int) {
	indent := strings.Repeat("  ", depth)
	if f.Mask != "" {
		fmt.Fprintf(w, "%s%s/ [%s]\n", indent, f.Name, f.Mask)
	} else {
		fmt.Fprintf(w, "%s%s/\n", indent, f.Name)
	}
	for _, c := range f.Children {
		writeFilter(w, c, depth+1)
	}
	for _, file := range f.Files {
		fmt.Fprintf(w, "%s  %s\n", indent, file)
	}
}
