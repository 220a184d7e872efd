// Package cli provides the cobra command tree and dependency wiring for
// ntlwiz. This file defines the Dependencies struct, the composition root
// where concrete types are created.
package cli

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ontl/ntlwiz/internal/config"
	"github.com/ontl/ntlwiz/internal/ui"
)

// Dependencies holds the services used by CLI commands.
type Dependencies struct {
	Loader   *config.Loader
	Terminal *ui.Terminal
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. The logger starts
// at warn level on stderr and is reconfigured once a profile is loaded.
func InitDependencies() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	deps = &Dependencies{
		Loader:   config.NewLoader(logger),
		Terminal: ui.NewTerminal(),
		Logger:   logger,
	}
}

// ensureDeps returns deps, initializing them on first use.
func ensureDeps() *Dependencies {
	if deps == nil {
		InitDependencies()
	}
	return deps
}

// configureLogging rebuilds the logger from the --log-level and
// --log-format flags, falling back to the profile's system settings.
func (d *Dependencies) configureLogging(cmd *cobra.Command, sys config.SystemConfig) error {
	level := getStringFlag(cmd, "log-level")
	if level == "" {
		level = sys.LogLevel
	}
	format := getStringFlag(cmd, "log-format")
	if format == "" {
		format = sys.LogFormat
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}
	d.Logger = logger
	return nil
}

// newLogger builds a slog.Logger writing to w. Empty level and format
// select the defaults.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cmp.Or(level, config.DefaultLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(cmp.Or(format, config.DefaultLogFormat)) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q (valid: text, json)", format)
}
