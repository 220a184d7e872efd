// Package wizard provides the interactive huh-based wizard that collects
// NTL project options.
package wizard

import "errors"

// App type values offered by the wizard.
const (
	AppConsole = "console"
	AppWin32   = "win32"
	AppDLL     = "dll"
	AppDriver  = "driver"
)

// Runtime module values offered by the wizard.
const (
	RuntimeCRT  = "crt"
	RuntimeEXC  = "exc"
	RuntimeRTTI = "rtti"
	RuntimeIOS  = "ios"
	RuntimeFLT  = "flt"
)

// WizardResult holds the user's selections.
type WizardResult struct {
	ProjectName   string   // Project name (required)
	AppType       string   // console, win32, dll, driver
	Unicode       bool     // Use the Unicode character set
	X64           bool     // Target x64 instead of x86
	Runtime       []string // Selected runtime modules
	WizardVersion string   // IDE wizard version: 8.0, 9.0, 10.0
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect allows choosing any number of options.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string                   // Unique identifier
	Type        QuestionType             // Field kind
	Title       string                   // Question title
	Description string                   // Additional description
	Options     []Option                 // Options for select questions
	Default     string                   // Default value; comma-separated for multi-select
	Required    bool                     // Whether the field is required
	Condition   func(*WizardResult) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrRequired is reported by input validation for empty required fields.
	ErrRequired = errors.New("this field is required")
)
