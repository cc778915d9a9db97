package matchers

import (
	"io/fs"
	"sort"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/logging"
	"github.com/bmatcuk/doublestar/v4"
)

// Match globs every include pattern over fsys and drops results matching an
// exclude pattern. Returned paths are slash-separated, relative to the root
// of fsys, and sorted. With Unique unset, a path matched by several includes
// appears once per include.
func Match(fsys fs.FS, includes, excludes []string, opts Options) ([]string, error) {
	logger := logging.GetLogger("matchers.scanner")

	if err := ValidatePatterns(includes); err != nil {
		return nil, err
	}
	if err := ValidatePatterns(excludes); err != nil {
		return nil, err
	}

	globOpts := []doublestar.GlobOption{doublestar.WithFailOnIOErrors()}
	if opts.FilesOnly {
		globOpts = append(globOpts, doublestar.WithFilesOnly())
	}
	if !opts.FollowSymlinks {
		globOpts = append(globOpts, doublestar.WithNoFollow())
	}

	seen := make(map[string]struct{})
	var results []string
	for _, include := range includes {
		matches, err := doublestar.Glob(fsys, include, globOpts...)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to scan for %q", include).
				WithDetail("pattern", include)
		}

		logger.Trace().
			Str("pattern", include).
			Int("matches", len(matches)).
			Msg("Include pattern expanded")

		for _, match := range matches {
			if opts.ExcludeHidden && IsHidden(match) {
				continue
			}
			if IsExcluded(match, excludes) {
				logger.Trace().Str("file", match).Msg("File excluded by pattern")
				continue
			}
			if opts.Unique {
				if _, dup := seen[match]; dup {
					continue
				}
				seen[match] = struct{}{}
			}
			results = append(results, match)
		}
	}

	sort.Strings(results)

	logger.Debug().
		Int("includes", len(includes)).
		Int("excludes", len(excludes)).
		Int("results", len(results)).
		Msg("Pattern match complete")

	return results, nil
}
