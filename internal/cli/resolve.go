package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ontl/ntlwiz/internal/config"
	"github.com/ontl/ntlwiz/internal/report"
	"github.com/ontl/ntlwiz/internal/resolver"
	"github.com/ontl/ntlwiz/pkg/models"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve build configurations from a feature selection",
		Long: `Resolve the compiler, linker and property sheet settings of every
requested configuration and print them.

Examples:
  ntlwiz resolve                                 Use ./ntlwiz.yaml
  ntlwiz resolve --set NTL_APPTYPE_DRIVER        Resolve a kernel-mode driver
  ntlwiz resolve --config debug --format yaml    Only the debug configuration`,
		Args: cobra.NoArgs,
		RunE: runResolve,
	}
	addProfileFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func runResolve(cmd *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(getStringFlag(cmd, "format"))
	if err != nil {
		return err
	}
	p, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	rep, resolveErr := resolveProfile(p, selectedConfigurations(cmd, p))
	if err := report.Write(cmd.OutOrStdout(), format, rep, report.Options{NoColor: noColor(cmd, p)}); err != nil {
		return err
	}
	return resolveErr
}

// resolveProfile resolves the named configurations of p into a report. Configurations that fail are
// listed in the report and returned as the error.
func resolveProfile(p *config.Profile, names []models.ConfigurationName) (*report.Report, error) {
	d := ensureDeps()
	r := resolver.New(p.Catalog(), resolver.WithLogger(d.Logger))
	src := p.SymbolMap()

	configs, err := r.Resolve(src, names)
	rep := &report.Report{
		Configurations: configs,
		RuntimeFiles:   r.ResolveRuntimeFiles(src),
	}
	for _, rc := range configs {
		if rc.PropertySheets.Degraded() {
			rep.Warnings = append(rep.Warnings, string(rc.Name)+": "+rc.PropertySheets.Warning)
		}
	}

	var re *resolver.ResolveErrors
	if errors.As(err, &re) {
		for _, ce := range re.Errors {
			rep.Errors = append(rep.Errors, ce.Error())
		}
	}
	return rep, err
}
