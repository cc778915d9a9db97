package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/testutil"
	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readIndex(t *testing.T, dir string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, "index.ts"))
	require.NoError(t, err)
	return string(content)
}

func TestGenerateIndexScenarioDefaults(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src")
	testutil.WriteTree(t, src, map[string]string{
		"a.ts":        "export const a = 1",
		"_b.ts":       "export const b = 2",
		"card.svelte": "<div />",
	})

	result, err := GenerateIndex(GenerateIndexOptions{Config: testutil.SelectionConfig(src, src)})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Candidates)
	assert.Equal(t, 2, result.Exported)

	content := readIndex(t, src)
	assert.Equal(t, types.Header+"\n\n"+
		`export * from "./a.js"`+"\n"+
		`export { default as Card } from "./card.svelte"`+"\n", content)
	assert.NotContains(t, content, "_b")
}

func TestGenerateIndexScenarioTypesOnly(t *testing.T) {
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"types.ts": "",
		"other.ts": "",
	})

	cfg := testutil.SelectionConfig(src, src)
	cfg.TypesOnly = true

	_, err := GenerateIndex(GenerateIndexOptions{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, []string{`export * from "./types.js"`}, testutil.ExportLines(readIndex(t, src)))
}

func TestGenerateIndexScenarioNotModule(t *testing.T) {
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"a.ts":        "",
		"lib/util.ts": "",
		"card.svelte": "",
	})

	cfg := testutil.SelectionConfig(src, src)
	cfg.IsModule = false

	_, err := GenerateIndex(GenerateIndexOptions{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, []string{
		`export * from "./a"`,
		`export * from "./lib/util"`,
		`export { default as Card } from "./card.svelte"`,
	}, testutil.ExportLines(readIndex(t, src)))
}

func TestGenerateIndexScenarioSkipDir(t *testing.T) {
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"a.ts":        "",
		"legacy/x.ts": "",
	})

	cfg := testutil.SelectionConfig(src, src)
	cfg.SkipDirs = []string{"legacy"}

	_, err := GenerateIndex(GenerateIndexOptions{Config: cfg})
	require.NoError(t, err)

	content := readIndex(t, src)
	assert.Equal(t, []string{`export * from "./a.js"`}, testutil.ExportLines(content))
	assert.NotContains(t, content, "legacy")
}

func TestGenerateIndexScenarioEmpty(t *testing.T) {
	src := t.TempDir()

	result, err := GenerateIndex(GenerateIndexOptions{Config: testutil.SelectionConfig(src, src)})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Candidates)
	assert.Equal(t, types.Header+"\n\n", readIndex(t, src))
}

func TestGenerateIndexSeparateOutDir(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	out := filepath.Join(root, "gen", "exports")
	testutil.WriteTree(t, src, map[string]string{
		"a.ts":                        "",
		"components/user-card.svelte": "",
	})
	require.NoError(t, os.MkdirAll(out, 0755))

	_, err := GenerateIndex(GenerateIndexOptions{Config: testutil.SelectionConfig(src, out)})
	require.NoError(t, err)

	assert.Equal(t, []string{
		`export * from "../../src/a.js"`,
		`export { default as UserCard } from "../../src/components/user-card.svelte"`,
	}, testutil.ExportLines(readIndex(t, out)))
}

func TestGenerateIndexIdempotent(t *testing.T) {
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"z.ts":                 "",
		"a.ts":                 "",
		"m/date-picker.svelte": "",
		"m/readme.md":          "",
	})
	opts := GenerateIndexOptions{Config: testutil.SelectionConfig(src, src)}

	_, err := GenerateIndex(opts)
	require.NoError(t, err)
	first := readIndex(t, src)

	// the generated index.ts now sits in the tree and must not feed back
	_, err = GenerateIndex(opts)
	require.NoError(t, err)
	second := readIndex(t, src)

	assert.Equal(t, first, second)
	testutil.AssertSortedArtifact(t, second)
}

func TestGenerateIndexCountsUnrecognized(t *testing.T) {
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"a.ts":      "",
		"notes.md":  "",
		"style.css": "",
	})

	cfg := testutil.SelectionConfig(src, src)
	cfg.IncludePatterns = []string{"**/*"}

	result, err := GenerateIndex(GenerateIndexOptions{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Candidates)
	assert.Equal(t, 1, result.Exported)
	assert.Equal(t, 2, result.Skipped)
}

func TestGenerateIndexNamingErrorAbortsWithoutWriting(t *testing.T) {
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"a.ts":            "",
		"404-page.svelte": "",
	})
	previous := "// previous artifact\n"
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.ts"), []byte(previous), 0644))

	_, err := GenerateIndex(GenerateIndexOptions{Config: testutil.SelectionConfig(src, src)})
	require.Error(t, err)
	testutil.AssertErrorCode(t, err, errors.ErrNaming)
	assert.Equal(t, "404-page.svelte", errors.GetPath(err))

	assert.Equal(t, previous, readIndex(t, src))
}

func TestGenerateIndexMissingBaseDir(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "nope")

	_, err := GenerateIndex(GenerateIndexOptions{Config: testutil.SelectionConfig(missing, root)})
	testutil.AssertErrorCode(t, err, errors.ErrConfig)
}

func TestGenerateIndexDryRun(t *testing.T) {
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{"a.ts": ""})

	result, err := GenerateIndex(GenerateIndexOptions{
		Config: testutil.SelectionConfig(src, src),
		DryRun: true,
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, []string{`export * from "./a.js"`}, result.Artifact.Lines)

	_, err = os.Stat(filepath.Join(src, "index.ts"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateIndexInMemory(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTreeFS(t, fs, "/project/src", map[string]string{
		"a.ts":              "",
		"lib/button.svelte": "",
	})

	_, err := GenerateIndex(GenerateIndexOptions{
		Config:     testutil.SelectionConfig("/project/src", "/project/src"),
		FileSystem: fs,
	})
	require.NoError(t, err)

	content, err := fs.ReadFile("/project/src/index.ts")
	require.NoError(t, err)
	assert.Equal(t, []string{
		`export * from "./a.js"`,
		`export { default as Button } from "./lib/button.svelte"`,
	}, testutil.ExportLines(string(content)))
}
