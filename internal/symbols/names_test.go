package symbols

import "testing"

func TestSafeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"MyDriver", "MyDriver"},
		{"my-driver", "my_driver"},
		{"my driver.v2", "my_driver_v2"},
		{"2fast", "_2fast"},
		{"Café", "Cafe"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SafeName(tt.in); got != tt.want {
				t.Errorf("SafeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveProjectSymbols(t *testing.T) {
	t.Parallel()

	m := Map{ProjectName: "zena-driver"}
	DeriveProjectSymbols(m)

	want := map[string]string{
		SafeProjectName:          "zena_driver",
		NiceSafeProjectName:      "Zena_driver",
		UppercaseSafeProjectName: "ZENA_DRIVER",
	}
	for k, v := range want {
		if got := m[k]; got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestDeriveProjectSymbolsWithoutName(t *testing.T) {
	t.Parallel()

	m := Map{}
	DeriveProjectSymbols(m)
	if len(m) != 0 {
		t.Errorf("expected no derived symbols, got %v", m)
	}
}
