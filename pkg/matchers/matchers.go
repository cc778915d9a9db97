// Package matchers resolves include and exclude glob patterns against a
// directory tree. Patterns use doublestar syntax ("**" crosses directories,
// "{a,b}" alternates) and are always slash-separated.
package matchers

import (
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Options controls what the matcher returns.
type Options struct {
	FilesOnly      bool
	FollowSymlinks bool
	Unique         bool
	ExcludeHidden  bool
}

// DefaultOptions are the options the selector always asks for.
func DefaultOptions() Options {
	return Options{
		FilesOnly:      true,
		FollowSymlinks: true,
		Unique:         true,
		ExcludeHidden:  true,
	}
}

// ValidatePatterns returns a CONFIG error for the first invalid pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if p == "" || !doublestar.ValidatePattern(p) {
			return errors.Newf(errors.ErrConfig, "invalid glob pattern %q", p).
				WithDetail("pattern", p)
		}
	}
	return nil
}

// HasGlobSyntax reports whether s contains any glob metacharacter.
func HasGlobSyntax(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// EscapeLiteral escapes glob syntax in path so it matches only itself.
func EscapeLiteral(path string) string {
	var b strings.Builder
	for _, r := range path {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitPatterns splits a comma-separated pattern list. Commas inside a
// {a,b} alternation, or escaped with a backslash, stay in their pattern.
// Surrounding whitespace is trimmed and empty entries are dropped.
func SplitPatterns(s string) []string {
	var (
		patterns []string
		depth    int
		start    int
	)
	add := func(p string) {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				add(s[start:i])
				start = i + 1
			}
		}
	}
	add(s[start:])
	return patterns
}

// IsExcluded reports whether relPath matches any of the exclude patterns.
func IsExcluded(relPath string, excludes []string) bool {
	for _, pattern := range excludes {
		// patterns were validated up front, so the error is always nil
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// IsHidden reports whether any segment of relPath starts with a dot.
func IsHidden(relPath string) bool {
	for _, segment := range strings.Split(relPath, "/") {
		if strings.HasPrefix(segment, ".") && segment != "." && segment != ".." {
			return true
		}
	}
	return false
}
