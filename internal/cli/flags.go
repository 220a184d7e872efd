package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ontl/ntlwiz/internal/config"
	"github.com/ontl/ntlwiz/internal/report"
	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

// ErrInvalidAssignment indicates a malformed --set value.
var ErrInvalidAssignment = errors.New("invalid symbol assignment")

// appTypeSymbols are the symbols that select an application type.
var appTypeSymbols = []string{
	symbols.AppTypeConsole,
	symbols.AppTypeWin32,
	symbols.AppTypeDLL,
	symbols.AppTypeDriver,
}

// addProfileFlags registers the flags shared by commands that load a
// profile.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", config.DefaultProfileName, "Wizard profile file")
	cmd.Flags().StringArray("set", nil, "Set a symbol as KEY=VALUE, or KEY for a flag (repeatable)")
	cmd.Flags().StringSlice("config", nil, "Configuration names to resolve (default: profile configurations)")
}

// addFormatFlag registers --format.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", string(report.FormatText), "Output format: yaml, json, text, markdown")
}

// loadProfile loads the --profile file and applies --set.
// Logging is reconfigured from the profile before it is returned.
func loadProfile(cmd *cobra.Command) (*config.Profile, error) {
	d := ensureDeps()

	p, err := d.Loader.Load(getStringFlag(cmd, "profile"))
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if err := applySetFlags(p, getStringArrayFlag(cmd, "set")); err != nil {
		return nil, err
	}
	if err := config.Validate(p); err != nil {
		return nil, err
	}
	if err := d.configureLogging(cmd, p.System); err != nil {
		return nil, err
	}

	for _, name := range p.UnknownSymbols() {
		d.Logger.Debug("symbol outside the wizard vocabulary", "name", name)
	}
	return p, nil
}

// applySetFlags folds KEY=VALUE assignments into the profile's raw
// symbols. An application type set on the command line replaces the one
// selected by the profile's features.
func applySetFlags(p *config.Profile, assignments []string) error {
	for _, a := range assignments {
		key, value, ok := symbols.ParseAssignment(a)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidAssignment, a)
		}
		if p.Symbols == nil {
			p.Symbols = make(map[string]string)
		}
		p.Symbols[key] = value
		if slices.Contains(appTypeSymbols, key) && symbols.Map(p.Symbols).Has(key) {
			p.Features.AppType = symbols.AppType{}
		}
	}
	return nil
}

// selectedConfigurations returns the --config names, or every profile
// configuration when none are given. Names outside the profile fail
// resolution individually.
func selectedConfigurations(cmd *cobra.Command, p *config.Profile) []models.ConfigurationName {
	names := getStringSliceFlag(cmd, "config")
	if len(names) == 0 {
		return p.ConfigurationNames()
	}
	out := make([]models.ConfigurationName, len(names))
	for i, n := range names {
		out[i] = models.ConfigurationName(n)
	}
	return out
}

// noColor reports whether styled output should be plain.
func noColor(cmd *cobra.Command, p *config.Profile) bool {
	if getBoolFlag(cmd, "no-color") || (p != nil && p.System.NoColor) {
		return true
	}
	return ensureDeps().Terminal.NoColor()
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

func getStringArrayFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		return nil
	}
	return val
}

func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return val
}
