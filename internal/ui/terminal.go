// Package ui detects how ntlwiz is attached to the user's terminal.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal reports whether prompts and colored output are usable.
type Terminal struct {
	in      *os.File
	out     *os.File
	forced  *bool
	getenv  func(string) string
	noColor bool
}

// NewTerminal creates a Terminal bound to os.Stdin and os.Stdout.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout, getenv: os.Getenv}
}

// IsHeadless returns true when prompts cannot be shown. ForceHeadless
// overrides TTY detection.
func (t *Terminal) IsHeadless() bool {
	if t.forced != nil {
		return *t.forced
	}
	return !isTTY(t.in)
}

// ForceHeadless overrides TTY detection.
func (t *Terminal) ForceHeadless(force bool) {
	t.forced = &force
}

// ClearForce reverts to automatic TTY detection.
func (t *Terminal) ClearForce() {
	t.forced = nil
}

// DisableColor turns colored output off regardless of the environment.
func (t *Terminal) DisableColor() {
	t.noColor = true
}

// NoColor returns true when output should be plain: color was disabled,
// NO_COLOR is set, TERM is "dumb", or stdout is not a terminal.
func (t *Terminal) NoColor() bool {
	if t.noColor {
		return true
	}
	if t.getenv("NO_COLOR") != "" || t.getenv("TERM") == "dumb" {
		return true
	}
	return !isTTY(t.out)
}

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
