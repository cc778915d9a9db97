package barrel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/barrel/pkg/config"
	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/filesystem"
	"github.com/arthur-debert/barrel/pkg/writer"
	"github.com/spf13/cobra"
)

func newGenconfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrWorkDir, err)
			}
			path := filepath.Join(workDir, config.ProjectFileName)

			fsys := filesystem.NewOS()
			if _, err := fsys.Stat(path); err == nil {
				return errors.Newf(errors.ErrConfig, MsgErrConfigExist, path).WithPath(path)
			}
			if err := writer.ReplaceFile(fsys, path, []byte(content)); err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)

	return cmd
}
