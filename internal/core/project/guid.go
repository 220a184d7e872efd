package project

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ontl/ntlwiz/internal/symbols"
)

// FormatGUID renders id the way project files store it: upper case in
// braces.
func FormatGUID(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}

// ProjectGUID returns the PROJECT_GUID symbol normalized by FormatGUID,
// or a new random GUID when the symbol is absent.
func ProjectGUID(src symbols.Source) (string, error) {
	if src != nil {
		if v, ok := src.Get(symbols.ProjectGUID); ok && strings.TrimSpace(v) != "" {
			id, err := uuid.Parse(strings.Trim(strings.TrimSpace(v), "{}"))
			if err != nil {
				return "", fmt.Errorf("%w: %q: %v", ErrInvalidGUID, v, err)
			}
			return FormatGUID(id), nil
		}
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate project GUID: %w", err)
	}
	return FormatGUID(id), nil
}
