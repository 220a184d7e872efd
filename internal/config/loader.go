package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultProfileName is the profile file looked up when no path is given.
const DefaultProfileName = "ntlwiz.yaml"

// Loader reads wizard profiles from YAML files.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu     sync.RWMutex
	loaded bool
	logger *slog.Logger
}

// NewLoader creates a new Loader instance. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load reads the profile at path. A missing file yields the default
// profile. A file that exists is decoded on top of empty values, then
// defaults are applied to unset system and path fields.
func (l *Loader) Load(path string) (*Profile, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = false
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("profile not found, using defaults", "path", path)
			return NewDefaultProfile(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", filepath.Base(path), ErrInvalidYAML, err)
	}
	applyDefaults(p)

	l.loaded = true
	l.logger.Debug("profile loaded", "path", path, "configurations", len(p.Configurations))
	return p, nil
}

// Loaded reports whether the last Load read an existing file.
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Save writes p to path as YAML, creating parent directories as needed.
func Save(path string, p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
