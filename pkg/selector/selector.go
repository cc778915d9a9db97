// Package selector picks the candidate files for one aggregation run.
//
// Selection happens in two layers. The glob matcher applies the effective
// include and exclude patterns; a residual filter then drops any file whose
// name starts with an underscore, whatever the patterns said.
package selector

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/logging"
	"github.com/arthur-debert/barrel/pkg/matchers"
	"github.com/arthur-debert/barrel/pkg/types"
)

// BinExclude is appended to the excludes unless binaries are requested.
const BinExclude = "**/bin/**"

// EffectiveIncludes returns the include patterns the matcher runs with.
func EffectiveIncludes(cfg types.SelectionConfig) []string {
	if cfg.TypesOnly {
		return []string{cfg.TypesPattern()}
	}
	return append([]string(nil), cfg.IncludePatterns...)
}

// EffectiveExcludes returns the configured excludes, the bin exclusion, one
// pattern per skipped directory and the generated index file, in that order.
func EffectiveExcludes(cfg types.SelectionConfig) []string {
	excludes := append([]string(nil), cfg.ExcludePatterns...)
	if !cfg.IncludeBin {
		excludes = append(excludes, BinExclude)
	}
	for _, dir := range cfg.SkipDirs {
		excludes = append(excludes, SkipPattern(dir))
	}
	if index, ok := IndexExclude(cfg); ok {
		excludes = append(excludes, index)
	}
	return excludes
}

// IndexExclude returns a pattern matching the index file barrel writes, when
// it lies under BaseDir. The index must never be exported from itself,
// whatever the ignore globs and module extension are.
func IndexExclude(cfg types.SelectionConfig) (string, bool) {
	if cfg.BaseDir == "" || cfg.OutDir == "" {
		return "", false
	}
	rel, err := filepath.Rel(cfg.BaseDir, filepath.Join(cfg.OutDir, cfg.IndexFileName()))
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return matchers.EscapeLiteral(rel), true
}

// SkipPattern turns a dir_skip entry into an exclude pattern. Entries that
// already use glob syntax are kept verbatim.
func SkipPattern(entry string) string {
	if matchers.HasGlobSyntax(entry) {
		return entry
	}
	return "**/" + strings.Trim(entry, "/") + "/**"
}

// Select returns the candidate files under cfg.BaseDir, sorted by
// relative path.
func Select(fsys types.FS, cfg types.SelectionConfig) ([]types.CandidateFile, error) {
	logger := logging.GetLogger("selector")

	info, err := fsys.Stat(cfg.BaseDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfig, "base directory %s does not exist", cfg.BaseDir).
			WithPath(cfg.BaseDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrConfig, "base directory %s is not a directory", cfg.BaseDir).
			WithPath(cfg.BaseDir)
	}

	includes := EffectiveIncludes(cfg)
	excludes := EffectiveExcludes(cfg)

	logger.Debug().
		Str("baseDir", cfg.BaseDir).
		Strs("includes", includes).
		Strs("excludes", excludes).
		Msg("Selecting files")

	matches, err := matchers.Match(fsys.DirFS(cfg.BaseDir), includes, excludes, matchers.DefaultOptions())
	if err != nil {
		return nil, errors.EnsurePath(err, cfg.BaseDir)
	}

	candidates := make([]types.CandidateFile, 0, len(matches))
	for _, rel := range matches {
		if strings.HasPrefix(path.Base(rel), "_") {
			logger.Debug().Str("file", rel).Msg("Dropping underscore-prefixed file")
			continue
		}
		candidates = append(candidates, types.NewCandidateFile(rel))
	}

	logger.Info().
		Int("matched", len(matches)).
		Int("candidates", len(candidates)).
		Msg("Selection complete")

	return candidates, nil
}
