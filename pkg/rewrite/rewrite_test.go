package rewrite

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecifier(t *testing.T) {
	base := filepath.FromSlash("/project/src")

	tests := []struct {
		name     string
		relPath  string
		outDir   string
		expected string
	}{
		{"same directory", "a.ts", "/project/src", "./a"},
		{"nested file", "lib/util.ts", "/project/src", "./lib/util"},
		{"deeply nested", "lib/deep/x/y.ts", "/project/src", "./lib/deep/x/y"},
		{"output below base", "a.ts", "/project/src/gen", "../a"},
		{"output deeper below base", "lib/util.ts", "/project/src/gen/out", "../../lib/util"},
		{"sibling directories", "card.svelte", "/project/dist", "../src/card"},
		{"output above base", "a.ts", "/project", "./src/a"},
		{"multi-dot file keeps inner dots", "a.test.ts", "/project/src", "./a.test"},
		{"name starting with dots is not relative", "..weird.ts", "/project/src", "./..weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.NewCandidateFile(tt.relPath)
			got, err := Specifier(c, base, filepath.FromSlash(tt.outDir))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSpecifierNeverBare(t *testing.T) {
	base := filepath.FromSlash("/r/a/b")
	outs := []string{"/r", "/r/a", "/r/a/b", "/r/a/b/c", "/r/x/y/z"}
	files := []string{"f.ts", "d/f.ts", "d/e/f.svelte", "noext"}

	for _, out := range outs {
		for _, file := range files {
			got, err := Specifier(types.NewCandidateFile(file), base, filepath.FromSlash(out))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, "./") || strings.HasPrefix(got, "../"),
				"specifier %q for %s from %s is bare", got, file, out)
			assert.NotContains(t, got, `\`)
		}
	}
}
