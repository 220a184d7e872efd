package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if got := GetVersion(); got != Version {
		t.Errorf("GetVersion() = %q, want %q", got, Version)
	}
}

func TestGetFullVersion(t *testing.T) {
	full := GetFullVersion()
	for _, part := range []string{Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(full, part) {
			t.Errorf("GetFullVersion() = %q, missing %q", full, part)
		}
	}
}
