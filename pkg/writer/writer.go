// Package writer renders the aggregator artifact and writes it to disk.
package writer

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/logging"
	"github.com/arthur-debert/barrel/pkg/types"
)

const filePerm = 0644

// Render sorts the lines by byte order, drops exact duplicates and attaches
// the fixed header. It does not touch the filesystem.
func Render(lines []types.ExportLine, outPath string) *types.Artifact {
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		texts = append(texts, line.Text)
	}
	sort.Strings(texts)

	unique := texts[:0]
	for i, text := range texts {
		if i > 0 && text == texts[i-1] {
			continue
		}
		unique = append(unique, text)
	}

	return &types.Artifact{
		Path:   outPath,
		Header: types.Header,
		Lines:  unique,
	}
}

// Write renders lines and replaces outPath with the result.
func Write(fsys types.FS, lines []types.ExportLine, outPath string) (*types.Artifact, error) {
	logger := logging.GetLogger("writer")

	artifact := Render(lines, outPath)
	if err := ReplaceFile(fsys, outPath, artifact.Bytes()); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", outPath).
		Int("lines", len(artifact.Lines)).
		Msg("Wrote aggregator file")

	return artifact, nil
}

// ReplaceFile writes data to a temporary sibling of path and renames it into
// place, so path holds either the previous content or the new one, never a
// partial file.
func ReplaceFile(fsys types.FS, path string, data []byte) error {
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")

	if err := fsys.WriteFile(tmpPath, data, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", tmpPath).WithPath(tmpPath)
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrIO, "failed to replace %s", path).WithPath(path)
	}
	return nil
}
