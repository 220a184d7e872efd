package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ontl/ntlwiz/internal/cli/wizard"
	"github.com/ontl/ntlwiz/internal/config"
	"github.com/ontl/ntlwiz/internal/report"
)

// ErrHeadless is returned when the wizard needs a terminal and none is
// attached.
var ErrHeadless = errors.New("no terminal attached; rerun with --non-interactive")

func newWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Create a wizard profile interactively",
		Long: `Ask for the project name, application type, character set, platform,
runtime modules and wizard version, then write the answers to a profile.

With --non-interactive no questions are asked: the seed profile,
--name and --set values are written as they are.

Examples:
  ntlwiz wizard                                   Ask and write ./ntlwiz.yaml
  ntlwiz wizard --out km/ntlwiz.yaml
  ntlwiz wizard --non-interactive --name km --set NTL_APPTYPE_DRIVER`,
		Args: cobra.NoArgs,
		RunE: runWizard,
	}
	cmd.Flags().String("profile", config.DefaultProfileName, "Seed profile; defaults are used when it does not exist")
	cmd.Flags().String("out", config.DefaultProfileName, "Profile file to write")
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().StringArray("set", nil, "Set a symbol as KEY=VALUE, or KEY for a flag (repeatable)")
	cmd.Flags().Bool("non-interactive", false, "Skip the questions; use the seed profile and flags")
	return cmd
}

func runWizard(cmd *cobra.Command, _ []string) error {
	d := ensureDeps()
	out := cmd.OutOrStdout()

	// Step 1: Seed the profile.
	p, err := d.Loader.Load(getStringFlag(cmd, "profile"))
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if err := d.configureLogging(cmd, p.System); err != nil {
		return err
	}
	if err := applySetFlags(p, getStringArrayFlag(cmd, "set")); err != nil {
		return err
	}
	if name := getStringFlag(cmd, "name"); name != "" {
		p.Project.Name = name
	}

	// Step 2: Ask.
	if !getBoolFlag(cmd, "non-interactive") {
		if d.Terminal.IsHeadless() {
			return ErrHeadless
		}
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		result, err := wizard.Run(wizard.DefaultQuestions(cwd, p), wizard.ResultFromProfile(p))
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				fmt.Fprintln(out, "Wizard cancelled.")
				return nil
			}
			return err
		}
		result.ApplyTo(p)
	}

	// Step 3: Validate and save.
	if err := config.Validate(p); err != nil {
		return err
	}
	path := getStringFlag(cmd, "out")
	if err := config.Save(path, p); err != nil {
		return err
	}
	d.Logger.Info("profile written", "path", path, "project", p.Project.Name)
	fmt.Fprintf(out, "Profile written to %s\n\n", path)

	// Step 4: Show what the profile resolves to.
	rep, resolveErr := resolveProfile(p, p.ConfigurationNames())
	if err := report.Write(out, report.FormatText, rep, report.Options{NoColor: noColor(cmd, p)}); err != nil {
		return err
	}
	return resolveErr
}
