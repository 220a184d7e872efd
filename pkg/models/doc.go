// Package models provides the shared build vocabulary for ntlwiz.
//
// The types in this package describe what a resolved build configuration
// looks like. They carry no behavior beyond validation and are safe to
// share between the resolver, the project sink and the report renderers.
//
// # Configurations
//
// A build variant is named by a [ConfigurationName]. The default set is
// ordered debug, release:
//
//	names := models.DefaultConfigurationNames() // ["debug", "release"]
//
// # Settings
//
// Each resolved variant is a [ResolvedConfiguration] aggregating
// [CompilerSettings], [LinkerSettings] and a [PropertySheetResult]. The
// enumerated fields (character set, runtime library, subsystem and so on)
// are string types so they serialize readably to YAML and JSON.
package models
