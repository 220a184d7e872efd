package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Run executes the wizard and returns the result, starting from initial
// (which may be nil). Each question runs as its own huh.Form so that
// conditions see the answers given so far.
func Run(questions []Question, initial *WizardResult) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	if initial != nil {
		*result = *initial
	}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(huh.NewGroup(buildField(q, result))).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildField creates the huh field for q. Every field stores its answer
// through saveAnswer from its validator.
func buildField(q *Question, result *WizardResult) huh.Field {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q, result)
	case QuestionTypeMultiSelect:
		return buildMultiSelectField(q, result)
	case QuestionTypeConfirm:
		return buildConfirmField(q, result)
	default:
		return buildInputField(q, result)
	}
}

func huhOptions(opts []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, opt := range opts {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		out[i] = huh.NewOption(key, opt.Value)
	}
	return out
}

func buildSelectField(q *Question, result *WizardResult) *huh.Select[string] {
	selected := q.Default
	saveAnswer(q.ID, selected, result)
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(huhOptions(q.Options)...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(q.ID, val, result)
			return nil
		})
}

func buildMultiSelectField(q *Question, result *WizardResult) *huh.MultiSelect[string] {
	selected := splitList(q.Default)
	saveAnswer(q.ID, q.Default, result)
	return huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(huhOptions(q.Options)...).
		Value(&selected).
		Validate(func(vals []string) error {
			saveAnswer(q.ID, strings.Join(vals, ","), result)
			return nil
		})
}

func buildConfirmField(q *Question, result *WizardResult) *huh.Confirm {
	value := q.Default == "true"
	saveAnswer(q.ID, q.Default, result)
	return huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Validate(func(v bool) error {
			saveAnswer(q.ID, boolString(v), result)
			return nil
		})
}

func buildInputField(q *Question, result *WizardResult) *huh.Input {
	value := q.Default
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}
	return inp.Validate(func(val string) error {
		return validateInput(q, val, result)
	})
}

// validateInput applies the default to blank input, rejects blank
// required input and stores the answer.
func validateInput(q *Question, val string, result *WizardResult) error {
	v := strings.TrimSpace(val)
	if v == "" {
		v = q.Default
	}
	if q.Required && v == "" {
		return ErrRequired
	}
	saveAnswer(q.ID, v, result)
	return nil
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case "project_name":
		result.ProjectName = value
	case "app_type":
		result.AppType = value
	case "unicode":
		result.Unicode = value == "true"
	case "x64":
		result.X64 = value == "true"
	case "runtime", "runtime_km":
		result.Runtime = splitList(value)
	case "wizard_version":
		result.WizardVersion = value
	}
}

func splitList(s string) []string {
	var out []string
	for v := range strings.SplitSeq(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// newWizardTheme adjusts huh's Charm theme: titles use the accent color
// and multi-select prefixes are ASCII checkboxes.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeCharm()

	accent := lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent).SetString("> ")
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.SetString("[x] ")
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.SetString("[ ] ")

	t.Blurred.Title = t.Blurred.Title.Foreground(accent)
	t.Group.Title = t.Focused.Title
	return t
}
