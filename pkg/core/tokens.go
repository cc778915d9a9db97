package core

import (
	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/filesystem"
	"github.com/arthur-debert/barrel/pkg/logging"
	"github.com/arthur-debert/barrel/pkg/tokens"
	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/arthur-debert/barrel/pkg/writer"
)

// FlattenTokensOptions defines the options for the FlattenTokens command.
type FlattenTokensOptions struct {
	// InPath is the JSON, YAML or TOML token file.
	InPath string
	// OutPath receives the stylesheet.
	OutPath string
	// Prefix is prepended to every property name.
	Prefix string
	// Selector defaults to :root.
	Selector   string
	DryRun     bool
	FileSystem types.FS
}

// FlattenTokens turns a nested token file into a stylesheet of CSS custom
// properties.
func FlattenTokens(opts FlattenTokensOptions) (*types.FlattenTokensResult, error) {
	log := logging.GetLogger("core.tokens")
	defer logging.LogOperationStart(log, "FlattenTokens")()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	tree, err := tokens.Load(fsys, opts.InPath)
	if err != nil {
		return nil, err
	}
	flat, err := tokens.Flatten(tree, opts.Prefix)
	if err != nil {
		return nil, errors.EnsurePath(err, opts.InPath)
	}
	content := tokens.RenderCSS(flat, opts.Selector)

	if !opts.DryRun {
		if err := writer.ReplaceFile(fsys, opts.OutPath, []byte(content)); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("command", "FlattenTokens").
		Str("in", opts.InPath).
		Str("out", opts.OutPath).
		Int("tokens", len(flat)).
		Bool("dryRun", opts.DryRun).
		Msg("Command finished")

	return &types.FlattenTokensResult{
		Tokens:  len(flat),
		OutPath: opts.OutPath,
		Content: content,
		DryRun:  opts.DryRun,
	}, nil
}
