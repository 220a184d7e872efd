package project

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/ontl/ntlwiz/internal/resolver"
	"github.com/ontl/ntlwiz/pkg/models"
)

func TestRecorder_AddFilterTree(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	if err := r.AddFilter([]string{"Source Files"}, "cpp"); err != nil {
		t.Fatalf("AddFilter(Source Files) error = %v", err)
	}
	if err := r.AddFilter([]string{"Source Files", "RTL"}, "cpp"); err != nil {
		t.Fatalf("AddFilter(Source Files/RTL) error = %v", err)
	}
	// Re-adding updates the mask instead of duplicating.
	if err := r.AddFilter([]string{"Source Files"}, "cpp;c"); err != nil {
		t.Fatalf("AddFilter(update) error = %v", err)
	}

	filters := r.Filters()
	if len(filters) != 1 {
		t.Fatalf("expected 1 top-level filter, got %d", len(filters))
	}
	if filters[0].Mask != "cpp;c" {
		t.Errorf("mask = %q, want %q", filters[0].Mask, "cpp;c")
	}
	if len(filters[0].Children) != 1 || filters[0].Children[0].Name != "RTL" {
		t.Errorf("children = %+v, want [RTL]", filters[0].Children)
	}
}

func TestRecorder_AddFilterMissingParent(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	err := r.AddFilter([]string{"Source Files", "RTL"}, "")
	if !errors.Is(err, ErrFilterNotFound) {
		t.Errorf("AddFilter() = %v, want ErrFilterNotFound", err)
	}
}

func TestRecorder_InvalidPaths(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	for _, path := range [][]string{nil, {}, {"Source Files", " "}} {
		if err := r.AddFilter(path, ""); !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("AddFilter(%q) = %v, want ErrInvalidFilter", path, err)
		}
		if err := r.AddFiles(path, []string{"a.cpp"}); !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("AddFiles(%q) = %v, want ErrInvalidFilter", path, err)
		}
	}
}

func TestRecorder_AddFilesDeduplicates(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	if err := r.AddFilter([]string{"Header Files"}, "h"); err != nil {
		t.Fatal(err)
	}
	if err := r.AddFiles([]string{"Header Files"}, []string{"a.h", "b.h", "a.h"}); err != nil {
		t.Fatalf("AddFiles() error = %v", err)
	}
	if err := r.AddFiles([]string{"Header Files"}, []string{"b.h", "c.h"}); err != nil {
		t.Fatalf("AddFiles() error = %v", err)
	}
	if got := r.Files("Header Files"); !slices.Equal(got, []string{"a.h", "b.h", "c.h"}) {
		t.Errorf("Files = %v, want [a.h b.h c.h]", got)
	}
	if got := r.Files("Missing"); got != nil {
		t.Errorf("Files(Missing) = %v, want nil", got)
	}
}

func TestRecorder_AddFilesMissingGroup(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	if err := r.AddFiles(RuntimeGroup, []string{"crt.cpp"}); !errors.Is(err, ErrFilterNotFound) {
		t.Errorf("AddFiles() = %v, want ErrFilterNotFound", err)
	}
}

func TestRecorder_RejectSheets(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	if err := r.AssignPropertySheets(models.ConfigDebug, []string{"a.props"}); err != nil {
		t.Fatalf("AssignPropertySheets() error = %v", err)
	}
	if got := r.Sheets(models.ConfigDebug); !slices.Equal(got, []string{"a.props"}) {
		t.Errorf("Sheets = %v, want [a.props]", got)
	}

	r.RejectSheets(true)
	err := r.AssignPropertySheets(models.ConfigRelease, []string{"a.props"})
	if !errors.Is(err, resolver.ErrSheetAssignment) {
		t.Errorf("AssignPropertySheets() = %v, want ErrSheetAssignment", err)
	}
	if got := r.Sheets(models.ConfigRelease); got != nil {
		t.Errorf("rejected sheets were stored: %v", got)
	}
}

func TestRecorder_FiltersReturnsCopy(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	_ = r.AddFilter([]string{"Source Files"}, "cpp")
	_ = r.AddFiles([]string{"Source Files"}, []string{"main.cpp"})

	f := r.Filters()
	f[0].Files[0] = "mutated.cpp"
	f[0].Name = "mutated"

	if got := r.Files("Source Files"); !slices.Equal(got, []string{"main.cpp"}) {
		t.Errorf("recorder state changed through snapshot: %v", got)
	}
}

func TestRecorder_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.AddConfiguration(models.ResolvedConfiguration{Name: models.ConfigDebug})
		}()
	}
	wg.Wait()

	if n := len(r.Configurations()); n != 20 {
		t.Errorf("recorded %d configurations, want 20", n)
	}
}
