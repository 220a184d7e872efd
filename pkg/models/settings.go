package models

// CompilerSettings holds the compiler tool settings of one configuration.
type CompilerSettings struct {
	CharacterSet        CharacterSet       `yaml:"character_set" json:"character_set"`
	RuntimeLibrary      RuntimeLibrary     `yaml:"runtime_library" json:"runtime_library"`
	WarningLevel        int                `yaml:"warning_level" json:"warning_level"`
	ExceptionHandling   bool               `yaml:"exception_handling" json:"exception_handling"`
	InstructionSet      InstructionSet     `yaml:"instruction_set" json:"instruction_set"`
	Optimization        Optimization       `yaml:"optimization" json:"optimization"`
	WholeProgram        bool               `yaml:"whole_program" json:"whole_program"`
	StringPooling       bool               `yaml:"string_pooling" json:"string_pooling"`
	InlineExpansion     InlineExpansion    `yaml:"inline_expansion" json:"inline_expansion"`
	MinimalRebuild      bool               `yaml:"minimal_rebuild" json:"minimal_rebuild"`
	BufferSecurityCheck bool               `yaml:"buffer_security_check" json:"buffer_security_check"`
	Detect64BitIssues   bool               `yaml:"detect_64bit_issues" json:"detect_64bit_issues"`
	BasicRuntimeChecks  BasicRuntimeChecks `yaml:"basic_runtime_checks" json:"basic_runtime_checks"`
	PrecompiledHeader   PrecompiledHeader  `yaml:"precompiled_header" json:"precompiled_header"`
	DebugInfoFormat     DebugInfoFormat    `yaml:"debug_info_format" json:"debug_info_format"`
	// PreprocessorDefines is semicolon-joined and kept in derivation order.
	// Duplicates are preserved.
	PreprocessorDefines string `yaml:"preprocessor_defines" json:"preprocessor_defines"`
}

// LinkerSettings holds the linker tool settings of one configuration.
type LinkerSettings struct {
	TargetMachine     TargetMachine   `yaml:"target_machine" json:"target_machine"`
	Subsystem         Subsystem       `yaml:"subsystem" json:"subsystem"`
	LinkIncremental   LinkIncremental `yaml:"link_incremental" json:"link_incremental"`
	SetChecksum       bool            `yaml:"set_checksum" json:"set_checksum"`
	Driver            bool            `yaml:"driver" json:"driver"`
	GenerateDebugInfo bool            `yaml:"generate_debug_info" json:"generate_debug_info"`
	GenerateManifest  bool            `yaml:"generate_manifest" json:"generate_manifest"`
}

// PropertySheetResult is the outcome of assigning property sheets to a
// configuration. When the host refused the assignment Sheets is empty and
// Warning describes the failure.
type PropertySheetResult struct {
	Sheets  []string `yaml:"sheets" json:"sheets"`
	Warning string   `yaml:"warning,omitempty" json:"warning,omitempty"`
}

// Degraded reports whether sheet assignment failed and was cleared.
func (p PropertySheetResult) Degraded() bool {
	return p.Warning != ""
}

// ResolvedConfiguration is the complete settings record of one build
// variant. It is constructed once per configuration during a resolution
// pass and not modified afterwards.
type ResolvedConfiguration struct {
	Name              ConfigurationName   `yaml:"name" json:"name"`
	Debug             bool                `yaml:"debug" json:"debug"`
	ConfigurationType ConfigurationType   `yaml:"configuration_type,omitempty" json:"configuration_type,omitempty"`
	OutputDirectory   string              `yaml:"output_directory" json:"output_directory"`
	Compiler          CompilerSettings    `yaml:"compiler" json:"compiler"`
	Linker            LinkerSettings      `yaml:"linker" json:"linker"`
	PropertySheets    PropertySheetResult `yaml:"property_sheets" json:"property_sheets"`
	RuntimeFiles      []string            `yaml:"runtime_files" json:"runtime_files"`
}
