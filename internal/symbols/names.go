package symbols

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SafeName turns a project name into a C identifier. Accents are folded
// to their base letters, every other character outside [A-Za-z0-9_]
// becomes '_', and a leading digit is prefixed with '_'.
func SafeName(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r == '_', r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	safe := b.String()
	if safe != "" && safe[0] >= '0' && safe[0] <= '9' {
		safe = "_" + safe
	}
	return safe
}

// DeriveProjectSymbols adds the safe-name symbols derived from
// PROJECT_NAME to m. It does nothing when PROJECT_NAME is absent.
func DeriveProjectSymbols(m Map) {
	name, ok := m.Get(ProjectName)
	if !ok || strings.TrimSpace(name) == "" {
		return
	}
	safe := SafeName(name)
	if safe == "" {
		return
	}
	m[SafeProjectName] = safe
	m[NiceSafeProjectName] = strings.ToUpper(safe[:1]) + safe[1:]
	m[UppercaseSafeProjectName] = cases.Upper(language.Und).String(safe)
}
