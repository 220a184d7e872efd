package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontl/ntlwiz/pkg/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ntlwiz",
		Short: "Build configuration wizard for NTL projects",
		Long: `ntlwiz resolves the compiler, linker and property sheet settings of
NTL-based projects from a feature selection.

The feature selection comes from a wizard profile (ntlwiz.yaml), the
interactive wizard, or --set KEY=VALUE flags.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("ntlwiz %s\n", version.GetVersion()))

	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: profile or info)")
	cmd.PersistentFlags().String("log-format", "", "Log format: text or json (default: profile or text)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(
		newResolveCmd(),
		newFilesCmd(),
		newWizardCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}
