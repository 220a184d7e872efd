package project

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/ontl/ntlwiz/internal/resolver"
	"github.com/ontl/ntlwiz/pkg/models"
)

// Filter is a named source group of a recorded project.
type Filter struct {
	Name     string    `yaml:"name" json:"name"`
	Mask     string    `yaml:"mask,omitempty" json:"mask,omitempty"`
	Files    []string  `yaml:"files,omitempty" json:"files,omitempty"`
	Children []*Filter `yaml:"children,omitempty" json:"children,omitempty"`
}

func (f *Filter) child(name string) *Filter {
	for _, c := range f.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (f *Filter) clone() *Filter {
	out := &Filter{Name: f.Name, Mask: f.Mask, Files: slices.Clone(f.Files)}
	for _, c := range f.Children {
		out.Children = append(out.Children, c.clone())
	}
	return out
}

// Recorder is an in-memory Sink. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	root    Filter
	configs []models.ResolvedConfiguration
	sheets  map[models.ConfigurationName][]string
	guid    string

	// rejectSheets makes every sheet assignment fail, modelling a host
	// that cannot load property sheets.
	rejectSheets bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{sheets: make(map[models.ConfigurationName][]string)}
}

// RejectSheets makes subsequent sheet assignments fail.
func (r *Recorder) RejectSheets(reject bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejectSheets = reject
}

// SetProjectGUID implements Sink.
func (r *Recorder) SetProjectGUID(guid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guid = guid
	return nil
}

// ProjectGUID returns the recorded project GUID.
func (r *Recorder) ProjectGUID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.guid
}

// AssignPropertySheets implements Sink.
func (r *Recorder) AssignPropertySheets(name models.ConfigurationName, sheets []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rejectSheets {
		return fmt.Errorf("%w: host rejected sheets for %q", resolver.ErrSheetAssignment, name)
	}
	r.sheets[name] = slices.Clone(sheets)
	return nil
}

// AddFilter implements Sink.
func (r *Recorder) AddFilter(path []string, mask string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	parent, err := r.lookup(path[:len(path)-1])
	if err != nil {
		return err
	}
	name := path[len(path)-1]
	if f := parent.child(name); f != nil {
		f.Mask = mask
		return nil
	}
	parent.Children = append(parent.Children, &Filter{Name: name, Mask: mask})
	return nil
}

// AddConfiguration implements Sink.
func (r *Recorder) AddConfiguration(rc models.ResolvedConfiguration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, rc)
	return nil
}

// AddFiles implements Sink. Files already in the group are skipped.
func (r *Recorder) AddFiles(group []string, files []string) error {
	if err := validatePath(group); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.lookup(group)
	if err != nil {
		return err
	}
	for _, file := range files {
		if !slices.Contains(f.Files, file) {
			f.Files = append(f.Files, file)
		}
	}
	return nil
}

// Configurations returns the recorded configurations in insertion order.
func (r *Recorder) Configurations() []models.ResolvedConfiguration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.configs)
}

// Sheets returns the sheets last assigned to name.
func (r *Recorder) Sheets(name models.ConfigurationName) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.sheets[name])
}

// Files returns the files of the filter at path, or nil when it does not
// exist.
func (r *Recorder) Files(path ...string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := r.lookup(path)
	if err != nil {
		return nil
	}
	return slices.Clone(f.Files)
}

// Filters returns a deep copy of the top-level filters.
func (r *Recorder) Filters() []*Filter {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Filter, 0, len(r.root.Children))
	for _, c := range r.root.Children {
		out = append(out, c.clone())
	}
	return out
}

// lookup walks path from the root. Callers hold r.mu.
func (r *Recorder) lookup(path []string) (*Filter, error) {
	f := &r.root
	for i, name := range path {
		next := f.child(name)
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrFilterNotFound, strings.Join(path[:i+1], "/"))
		}
		f = next
	}
	return f, nil
}

func validatePath(path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidFilter)
	}
	for _, p := range path {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidFilter, strings.Join(path, "/"))
		}
	}
	return nil
}
