package wizard

import (
	"slices"
	"strings"

	"github.com/ontl/ntlwiz/internal/config"
	"github.com/ontl/ntlwiz/internal/symbols"
)

// ResultFromProfile seeds a WizardResult from a profile's features.
func ResultFromProfile(p *config.Profile) *WizardResult {
	opts := p.Features
	r := &WizardResult{
		ProjectName:   p.Project.Name,
		Unicode:       opts.Unicode,
		X64:           opts.X64,
		WizardVersion: opts.WizardVersion,
	}
	switch {
	case opts.AppType.Driver:
		r.AppType = AppDriver
	case opts.AppType.DLL:
		r.AppType = AppDLL
	case opts.AppType.Win32:
		r.AppType = AppWin32
	default:
		r.AppType = AppConsole
	}
	if r.WizardVersion == "" {
		r.WizardVersion = config.DefaultWizardVersion
	}

	rt := opts.Runtime
	for _, m := range []struct {
		value string
		on    bool
	}{
		{RuntimeCRT, rt.CRT},
		{RuntimeEXC, rt.EXC},
		{RuntimeRTTI, rt.RTTI},
		{RuntimeIOS, rt.IOS},
		{RuntimeFLT, rt.FLT},
	} {
		if m.on {
			r.Runtime = append(r.Runtime, m.value)
		}
	}
	return r
}

// kernelModules are the runtime modules available to drivers.
var kernelModules = []string{RuntimeCRT, RuntimeEXC, RuntimeRTTI}

func isKernelRuntime(module string) bool {
	return slices.Contains(kernelModules, module)
}

// kernelRuntime returns the kernel-mode subset of modules.
func kernelRuntime(modules []string) []string {
	return slices.DeleteFunc(slices.Clone(modules), func(m string) bool { return !isKernelRuntime(m) })
}

// Options converts the selections into typed symbol options. Drivers keep
// only the kernel-mode modules, and exc, ios and flt pull in crt.
func (r *WizardResult) Options() symbols.Options {
	opts := symbols.Options{
		Unicode:       r.Unicode,
		X64:           r.X64,
		WizardVersion: r.WizardVersion,
	}
	modules := r.Runtime
	switch r.AppType {
	case AppDriver:
		opts.AppType.Driver = true
		modules = kernelRuntime(modules)
	case AppDLL:
		opts.AppType.DLL = true
	case AppWin32:
		opts.AppType.Win32 = true
	default:
		opts.AppType.Console = true
	}

	rt := symbols.Runtime{
		CRT:  slices.Contains(modules, RuntimeCRT),
		EXC:  slices.Contains(modules, RuntimeEXC),
		RTTI: slices.Contains(modules, RuntimeRTTI),
		IOS:  slices.Contains(modules, RuntimeIOS),
		FLT:  slices.Contains(modules, RuntimeFLT),
	}
	if rt.EXC || rt.IOS || rt.FLT {
		rt.CRT = true
	}
	opts.Runtime = rt
	return opts
}

// ApplyTo writes the selections into p, keeping its paths, raw symbols
// and configurations.
func (r *WizardResult) ApplyTo(p *config.Profile) {
	if name := strings.TrimSpace(r.ProjectName); name != "" {
		p.Project.Name = name
	}
	p.Features = r.Options()
}
