package resolver

import (
	"github.com/ontl/ntlwiz/internal/symbols"
	"github.com/ontl/ntlwiz/pkg/models"
)

// legacyWizardVersion selects the legacy x86 sheet.
const legacyWizardVersion = "8.0"

// SheetAssigner applies a property-sheet list to a configuration on the
// host. Any returned error is treated as recoverable.
type SheetAssigner interface {
	AssignPropertySheets(name models.ConfigurationName, sheets []string) error
}

// acceptAll is the SheetAssigner used when none is configured.
type acceptAll struct{}

func (acceptAll) AssignPropertySheets(models.ConfigurationName, []string) error { return nil }

// sheetExtension returns the property sheet file extension for the
// wizard version. Hosts from version 10 on use MSBuild .props files.
func sheetExtension(opts symbols.Options) string {
	if opts.WizardVersionNumber() >= 10 {
		return "props"
	}
	return "vsprops"
}

// propertySheets builds the ordered sheet list: base, architecture and
// optionally kernel mode.
func propertySheets(dir string, opts symbols.Options) []string {
	ext := sheetExtension(opts)
	sheet := func(name string) string {
		return dir + "/" + name + "." + ext
	}

	sheets := []string{sheet("ntl-props")}
	if opts.WizardVersion == legacyWizardVersion {
		sheets = append(sheets, sheet("ntl-x86-8"))
	} else {
		sheets = append(sheets, sheet("ntl-x86"))
	}
	if opts.AppType.Driver {
		sheets = append(sheets, sheet("ntl-km"))
	}
	return sheets
}
