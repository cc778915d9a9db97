package barrel

import (
	"fmt"
	"os"

	"github.com/arthur-debert/barrel/pkg/core"
	"github.com/arthur-debert/barrel/pkg/paths"
	"github.com/arthur-debert/barrel/pkg/tokens"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var opts core.FlattenTokensOptions

	cmd := &cobra.Command{
		Use:     "tokens",
		Short:   MsgTokensShort,
		Long:    MsgTokensLong,
		Example: MsgTokensExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			opts.DryRun, _ = cmd.Root().PersistentFlags().GetBool("dry-run")

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrWorkDir, err)
			}
			if opts.InPath, err = paths.Normalize(workDir, opts.InPath); err != nil {
				return err
			}
			if opts.OutPath, err = paths.Normalize(workDir, opts.OutPath); err != nil {
				return err
			}

			log.Info().
				Str("in", opts.InPath).
				Str("out", opts.OutPath).
				Bool("dry_run", opts.DryRun).
				Msg("Flattening tokens")

			result, err := core.FlattenTokens(opts)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVar(&opts.InPath, "in", "", MsgFlagTokensIn)
	cmd.Flags().StringVar(&opts.OutPath, "out", "", MsgFlagTokensOut)
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", MsgFlagPrefix)
	cmd.Flags().StringVar(&opts.Selector, "selector", tokens.DefaultSelector, MsgFlagSelector)
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
