package wizard

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/ontl/ntlwiz/internal/config"
)

// DefaultQuestions returns the standard questions, seeded from the
// profile's current values. The order is:
// 1. Project name
// 2. Application type
// 3. Character set
// 4. Target platform
// 5. Runtime modules (drivers are offered the kernel-mode subset)
// 6. Wizard version
func DefaultQuestions(projectRoot string, p *config.Profile) []Question {
	if p == nil {
		p = config.NewDefaultProfile()
	}
	name := p.Project.Name
	if name == "" || name == config.DefaultProjectName {
		if base := filepath.Base(projectRoot); base != "." && base != "/" && base != "" {
			name = base
		} else {
			name = config.DefaultProjectName
		}
	}
	defaults := ResultFromProfile(p)

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Enter project name",
			Description: "Used for the project file and the SAFE_PROJECT_NAME symbols.",
			Default:     name,
			Required:    true,
		},
		{
			ID:    "app_type",
			Type:  QuestionTypeSelect,
			Title: "Select application type",
			Options: orderedOptions([]Option{
				{Label: "Console application", Value: AppConsole, Desc: "console subsystem"},
				{Label: "Windows application", Value: AppWin32, Desc: "windows subsystem"},
				{Label: "Dynamic library", Value: AppDLL, Desc: "DLL"},
				{Label: "Kernel-mode driver", Value: AppDriver, Desc: "native subsystem"},
			}, defaults.AppType),
			Default:  defaults.AppType,
			Required: true,
		},
		{
			ID:          "unicode",
			Type:        QuestionTypeConfirm,
			Title:       "Use the Unicode character set?",
			Description: "Otherwise the character set is left unset.",
			Default:     boolString(defaults.Unicode),
		},
		{
			ID:      "x64",
			Type:    QuestionTypeConfirm,
			Title:   "Target x64?",
			Default: boolString(defaults.X64),
		},
		{
			ID:          "runtime",
			Type:        QuestionTypeMultiSelect,
			Title:       "Select runtime modules",
			Description: "Sources are added to the Source Files/RTL filter. exc, iostreams and floating point pull in the C runtime.",
			Options:     runtimeOptions(false),
			Default:     strings.Join(defaults.Runtime, ","),
			Condition: func(r *WizardResult) bool {
				return r.AppType != AppDriver
			},
		},
		{
			ID:          "runtime_km",
			Type:        QuestionTypeMultiSelect,
			Title:       "Select kernel-mode runtime modules",
			Description: "iostreams and floating point are not available in kernel mode.",
			Options:     runtimeOptions(true),
			Default:     strings.Join(kernelRuntime(defaults.Runtime), ","),
			Condition: func(r *WizardResult) bool {
				return r.AppType == AppDriver
			},
		},
		{
			ID:    "wizard_version",
			Type:  QuestionTypeSelect,
			Title: "Select IDE wizard version",
			Options: orderedOptions([]Option{
				{Label: "8.0", Value: "8.0", Desc: "Visual Studio 2005"},
				{Label: "9.0", Value: "9.0", Desc: "Visual Studio 2008"},
				{Label: "10.0", Value: "10.0", Desc: "Visual Studio 2010 and later"},
			}, defaults.WizardVersion),
			Default:  defaults.WizardVersion,
			Required: true,
		},
	}
}

// runtimeOptions lists the runtime modules, restricted to the kernel-mode
// ones when km is set.
func runtimeOptions(km bool) []Option {
	opts := []Option{
		{Label: "C runtime", Value: RuntimeCRT},
		{Label: "Exception handling", Value: RuntimeEXC},
		{Label: "RTTI", Value: RuntimeRTTI},
		{Label: "iostreams", Value: RuntimeIOS},
		{Label: "Floating point", Value: RuntimeFLT},
	}
	if km {
		return slices.DeleteFunc(opts, func(o Option) bool { return !isKernelRuntime(o.Value) })
	}
	return opts
}

// orderedOptions moves the default option first. huh v0.8 scrolls the
// viewport to the selected index, hiding options above it.
func orderedOptions(opts []Option, def string) []Option {
	i := slices.IndexFunc(opts, func(o Option) bool { return o.Value == def })
	if i <= 0 {
		return opts
	}
	out := make([]Option, 0, len(opts))
	out = append(out, opts[i])
	out = append(out, opts[:i]...)
	return append(out, opts[i+1:]...)
}

// FilteredQuestions returns questions whose condition holds for result.
func FilteredQuestions(questions []Question, result *WizardResult) []Question {
	var out []Question
	for _, q := range questions {
		if q.Condition == nil || q.Condition(result) {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID returns the question with the given ID, or nil.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
