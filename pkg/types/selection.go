package types

// Extensions names the two recognized file kinds and the marker appended to
// plain-module specifiers. Values are stored without a leading dot except
// ModuleSuffix, which is appended verbatim.
type Extensions struct {
	Module       string
	Component    string
	ModuleSuffix string
}

// DefaultExtensions matches a TypeScript + Svelte source tree.
func DefaultExtensions() Extensions {
	return Extensions{
		Module:       "ts",
		Component:    "svelte",
		ModuleSuffix: ".js",
	}
}

// SelectionConfig is the resolved, immutable configuration for one run.
// BaseDir and OutDir are absolute paths to existing directories.
type SelectionConfig struct {
	BaseDir         string
	OutDir          string
	IncludePatterns []string
	ExcludePatterns []string
	IncludeBin      bool
	TypesOnly       bool
	IsModule        bool
	SkipDirs        []string
	Extensions      Extensions
}

// IndexFileName is the name of the generated artifact, e.g. "index.ts".
func (c SelectionConfig) IndexFileName() string {
	return "index." + c.Extensions.Module
}

// TypesPattern is the include pattern used when TypesOnly is set.
func (c SelectionConfig) TypesPattern() string {
	return "**/types." + c.Extensions.Module
}
