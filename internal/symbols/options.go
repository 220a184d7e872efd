package symbols

import (
	"strconv"
	"strings"
)

// AppType groups the application-type flags. More than one flag may be
// set; the resolver applies them by its own priority rules.
type AppType struct {
	DLL     bool `yaml:"dll" json:"dll"`
	Driver  bool `yaml:"driver" json:"driver"`
	Console bool `yaml:"console" json:"console"`
	Win32   bool `yaml:"win32" json:"win32"`
}

// Native reports whether no subsystem-selecting flag is set.
func (a AppType) Native() bool {
	return !a.Console && !a.Win32 && !a.DLL
}

// Runtime groups the optional runtime module flags.
type Runtime struct {
	CRT  bool `yaml:"crt" json:"crt"`
	EXC  bool `yaml:"exc" json:"exc"`
	RTTI bool `yaml:"rtti" json:"rtti"`
	IOS  bool `yaml:"ios" json:"ios"`
	FLT  bool `yaml:"flt" json:"flt"`
}

// Options is the typed view of a symbol source, decoded once per
// resolution pass. Absent symbols decode to the zero value.
type Options struct {
	Unicode       bool    `yaml:"unicode" json:"unicode"`
	AppType       AppType `yaml:"app_type" json:"app_type"`
	Runtime       Runtime `yaml:"runtime" json:"runtime"`
	X64           bool    `yaml:"x64" json:"x64"`
	WizardVersion string  `yaml:"wizard_version" json:"wizard_version"`
}

// Decode reads the recognized vocabulary from src. A nil source decodes
// to zero Options.
func Decode(src Source) Options {
	if src == nil {
		return Options{}
	}
	version, _ := src.Get(WizardVersion)
	return Options{
		Unicode: src.Has(UseUnicode),
		AppType: AppType{
			DLL:     src.Has(AppTypeDLL),
			Driver:  src.Has(AppTypeDriver),
			Console: src.Has(AppTypeConsole),
			Win32:   src.Has(AppTypeWin32),
		},
		Runtime: Runtime{
			CRT:  src.Has(RuntimeCRT),
			EXC:  src.Has(RuntimeEXC),
			RTTI: src.Has(RuntimeRTTI),
			IOS:  src.Has(RuntimeIOS),
			FLT:  src.Has(RuntimeFLT),
		},
		X64:           src.Has(PlatformX64),
		WizardVersion: strings.TrimSpace(version),
	}
}

// Map encodes o back into a symbol map. Only set flags are written.
func (o Options) Map() Map {
	m := Map{}
	flags := []struct {
		name string
		on   bool
	}{
		{UseUnicode, o.Unicode},
		{AppTypeDLL, o.AppType.DLL},
		{AppTypeDriver, o.AppType.Driver},
		{AppTypeConsole, o.AppType.Console},
		{AppTypeWin32, o.AppType.Win32},
		{RuntimeCRT, o.Runtime.CRT},
		{RuntimeEXC, o.Runtime.EXC},
		{RuntimeRTTI, o.Runtime.RTTI},
		{RuntimeIOS, o.Runtime.IOS},
		{RuntimeFLT, o.Runtime.FLT},
		{PlatformX64, o.X64},
	}
	for _, f := range flags {
		if f.on {
			m.Set(f.name, true)
		}
	}
	if o.WizardVersion != "" {
		m[WizardVersion] = o.WizardVersion
	}
	return m
}

// WizardVersionNumber parses the wizard version string. Unparseable or
// missing versions yield 0.
func (o Options) WizardVersionNumber() float64 {
	f, err := strconv.ParseFloat(o.WizardVersion, 64)
	if err != nil {
		return 0
	}
	return f
}
