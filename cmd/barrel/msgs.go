package barrel

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate aggregator (barrel) modules for a source tree"
	MsgGenerateShort   = "Write the index file re-exporting a directory"
	MsgTokensShort     = "Flatten a theme token file into CSS custom properties"
	MsgGenconfigShort  = "Print the default configuration file"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgConfigWritten = "Wrote %s"
	MsgVersionFormat = "barrel version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrWorkDir     = "failed to determine working directory: %w"
	MsgErrFormat      = "invalid --format"
	MsgErrConfigExist = "%s already exists"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Print the generated file instead of writing it"
	MsgFlagConfig      = "Config file (default is .barrel.toml in the current directory)"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagDir         = "Source directory to scan"
	MsgFlagOut         = "Directory receiving index.<ext>"
	MsgFlagIncludeGlob = "Include glob relative to --dir, repeatable (replaces the defaults)"
	MsgFlagIgnoreGlob  = "Ignore glob relative to --dir, repeatable (replaces the defaults)"
	MsgFlagIncludeBin  = "Also export files below bin/ directories"
	MsgFlagTypesOnly   = "Only export types.<ext> files"
	MsgFlagIsModule    = "Append the module suffix (.js) to plain-module specifiers"
	MsgFlagDirSkip     = "Directory name or glob to skip, repeatable"
	MsgFlagTokensIn    = "Token file (.json, .yaml, .yml or .toml)"
	MsgFlagTokensOut   = "Stylesheet to write"
	MsgFlagPrefix      = "Prefix for every property name"
	MsgFlagSelector    = "CSS selector the properties are declared under"
	MsgFlagWrite       = "Write .barrel.toml in the current directory instead of printing"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/tokens-long.txt
	msgTokensLongRaw string
	MsgTokensLong    = strings.TrimSpace(msgTokensLongRaw)

	//go:embed msgs/tokens-example.txt
	msgTokensExampleRaw string
	MsgTokensExample    = strings.TrimRight(msgTokensExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
