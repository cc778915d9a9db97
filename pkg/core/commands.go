package core

import (
	"path/filepath"

	"github.com/arthur-debert/barrel/pkg/emitter"
	"github.com/arthur-debert/barrel/pkg/filesystem"
	"github.com/arthur-debert/barrel/pkg/logging"
	"github.com/arthur-debert/barrel/pkg/rewrite"
	"github.com/arthur-debert/barrel/pkg/selector"
	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/arthur-debert/barrel/pkg/writer"
)

// GenerateIndexOptions defines the options for the GenerateIndex command.
type GenerateIndexOptions struct {
	// Config is the resolved selection configuration.
	Config types.SelectionConfig
	// DryRun renders the artifact without writing it.
	DryRun bool
	// FileSystem defaults to the OS filesystem when nil.
	FileSystem types.FS
}

// GenerateIndex selects the candidate files, emits one export line per
// recognized file and writes the sorted result to <OutDir>/index.<ext>.
func GenerateIndex(opts GenerateIndexOptions) (*types.GenerateIndexResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "GenerateIndex").Msg("Executing command")
	defer logging.LogOperationStart(log, "GenerateIndex")()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config

	candidates, err := selector.Select(fsys, cfg)
	if err != nil {
		return nil, err
	}

	lines := make([]types.ExportLine, 0, len(candidates))
	skipped := 0
	for _, candidate := range candidates {
		specifier, err := rewrite.Specifier(candidate, cfg.BaseDir, cfg.OutDir)
		if err != nil {
			return nil, err
		}

		line, err := emitter.Emit(candidate, specifier, cfg)
		if err != nil {
			return nil, err
		}
		if line == nil {
			skipped++
			continue
		}
		lines = append(lines, *line)
	}

	outPath := filepath.Join(cfg.OutDir, cfg.IndexFileName())

	var artifact *types.Artifact
	if opts.DryRun {
		artifact = writer.Render(lines, outPath)
	} else {
		artifact, err = writer.Write(fsys, lines, outPath)
		if err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("command", "GenerateIndex").
		Int("candidates", len(candidates)).
		Int("exported", len(artifact.Lines)).
		Int("skipped", skipped).
		Str("out", outPath).
		Bool("dryRun", opts.DryRun).
		Msg("Command finished")

	return &types.GenerateIndexResult{
		Candidates: len(candidates),
		Exported:   len(artifact.Lines),
		Skipped:    skipped,
		Artifact:   artifact,
		DryRun:     opts.DryRun,
	}, nil
}
