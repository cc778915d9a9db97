package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/stretchr/testify/require"
)

// DefaultIncludes mirrors include_glob in the embedded defaults.toml.
var DefaultIncludes = []string{"**/*.ts", "**/*.svelte"}

// DefaultIgnores mirrors ignore_glob in the embedded defaults.toml.
var DefaultIgnores = []string{
	"**/_*",
	"**/_*/**",
	"**/index.ts",
	"**/*.d.ts",
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/.*/**",
}

// SelectionConfig returns a config with the default patterns and flags.
func SelectionConfig(baseDir, outDir string) types.SelectionConfig {
	return types.SelectionConfig{
		BaseDir:         baseDir,
		OutDir:          outDir,
		IncludePatterns: append([]string(nil), DefaultIncludes...),
		ExcludePatterns: append([]string(nil), DefaultIgnores...),
		IsModule:        true,
		Extensions:      types.DefaultExtensions(),
	}
}

// WriteTree creates files (slash-separated relative path -> content) under
// root on the real filesystem.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// WriteTreeFS is WriteTree for any types.FS.
func WriteTreeFS(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
}
