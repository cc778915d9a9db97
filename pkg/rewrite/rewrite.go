// Package rewrite turns candidate locations into import specifiers relative
// to the output directory.
package rewrite

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/types"
)

// Specifier returns the import specifier for c as seen from outDir: the
// extension is stripped, separators are forward slashes, and the result
// always starts with "./" or "../" (or "/" when no relative path exists).
func Specifier(c types.CandidateFile, baseDir, outDir string) (string, error) {
	stripped := strings.TrimSuffix(c.RelativePath, c.Extension)
	abs := filepath.Join(baseDir, filepath.FromSlash(stripped))

	rel, err := filepath.Rel(outDir, abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfig,
			"cannot express %s relative to %s", abs, outDir).WithPath(abs)
	}

	return normalize(filepath.ToSlash(rel)), nil
}

// normalize prefixes bare specifiers with "./". A leading dot only counts
// when it starts a "./" or "../" segment, so "..foo" is still bare.
func normalize(spec string) string {
	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") || strings.HasPrefix(spec, "/") {
		return spec
	}
	return "./" + spec
}
