package project

import (
	"github.com/ontl/ntlwiz/internal/resolver"
	"github.com/ontl/ntlwiz/pkg/models"
)

// Default filter names and masks of a generated project.
const (
	SourceFilesFilter  = "Source Files"
	RuntimeFilter      = "RTL"
	HeaderFilesFilter  = "Header Files"
	DefaultSourceMask  = "cpp;c;cc;cxx;asm"
	DefaultIncludeMask = "h;hpp;hxx;inl"
)

// RuntimeGroup is the filter path runtime sources are added under.
var RuntimeGroup = []string{SourceFilesFilter, RuntimeFilter}

// Sink is the host project that receives resolution output.
//
// AssignPropertySheets may fail; the failure is recoverable and only
// clears the sheet list of that configuration. Errors from the other
// methods abort Apply.
type Sink interface {
	resolver.SheetAssigner

	// SetProjectGUID stores the project GUID, formatted by FormatGUID.
	SetProjectGUID(guid string) error

	// AddFilter creates the filter at path, or updates its mask when it
	// already exists. The parent of path must exist.
	AddFilter(path []string, mask string) error

	// AddConfiguration stores a resolved configuration.
	AddConfiguration(rc models.ResolvedConfiguration) error

	// AddFiles attaches files to the filter at group. It returns
	// ErrFilterNotFound when the group does not exist.
	AddFiles(group []string, files []string) error
}
