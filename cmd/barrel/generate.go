package barrel

import (
	"fmt"
	"os"

	"github.com/arthur-debert/barrel/pkg/config"
	"github.com/arthur-debert/barrel/pkg/core"
	"github.com/arthur-debert/barrel/pkg/filesystem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// generateFlags maps generate's flags to their configuration keys.
var generateFlags = []struct {
	flag string
	key  string
}{
	{"dir", "dir"},
	{"out", "out"},
	{"include-glob", "include_glob"},
	{"ignore-glob", "ignore_glob"},
	{"include-bin", "include_bin"},
	{"types-only", "types_only"},
	{"is-module", "is_module"},
	{"dir-skip", "dir_skip"},
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrWorkDir, err)
			}

			configFile, _ := cmd.Root().PersistentFlags().GetString("config")
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			overrides, err := changedFlagValues(cmd)
			if err != nil {
				return err
			}

			opts, err := config.Load(config.LoadOptions{
				WorkDir:    workDir,
				ConfigFile: configFile,
				Overrides:  overrides,
			})
			if err != nil {
				return err
			}

			selection, err := opts.Resolve(filesystem.NewOS(), workDir)
			if err != nil {
				return err
			}

			log.Info().
				Str("dir", selection.BaseDir).
				Str("out", selection.OutDir).
				Bool("dry_run", dryRun).
				Msg("Generating index")

			result, err := core.GenerateIndex(core.GenerateIndexOptions{
				Config: selection,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	flags := cmd.Flags()
	flags.String("dir", "", MsgFlagDir)
	flags.String("out", "", MsgFlagOut)
	flags.StringArray("include-glob", nil, MsgFlagIncludeGlob)
	flags.StringArray("ignore-glob", nil, MsgFlagIgnoreGlob)
	flags.Bool("include-bin", false, MsgFlagIncludeBin)
	flags.Bool("types-only", false, MsgFlagTypesOnly)
	flags.Bool("is-module", true, MsgFlagIsModule)
	flags.StringArray("dir-skip", nil, MsgFlagDirSkip)

	_ = cmd.MarkFlagDirname("dir")
	_ = cmd.MarkFlagDirname("out")

	return cmd
}

// changedFlagValues returns the flags set on the command line, keyed like
// the configuration file, so unset flags never shadow file or environment
// values.
func changedFlagValues(cmd *cobra.Command) (map[string]interface{}, error) {
	flags := cmd.Flags()
	overrides := make(map[string]interface{})

	for _, f := range generateFlags {
		if !flags.Changed(f.flag) {
			continue
		}

		var (
			value interface{}
			err   error
		)
		switch flags.Lookup(f.flag).Value.Type() {
		case "bool":
			value, err = flags.GetBool(f.flag)
		case "stringArray":
			value, err = flags.GetStringArray(f.flag)
		default:
			value, err = flags.GetString(f.flag)
		}
		if err != nil {
			return nil, err
		}
		overrides[f.key] = value
	}

	return overrides, nil
}
