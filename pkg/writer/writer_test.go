package writer

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/filesystem"
	"github.com/arthur-debert/barrel/pkg/testutil"
	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(texts ...string) []types.ExportLine {
	out := make([]types.ExportLine, len(texts))
	for i, text := range texts {
		out[i] = types.ExportLine{Text: text}
	}
	return out
}

func TestRender(t *testing.T) {
	artifact := Render(lines(
		`export { default as Card } from "./card.svelte"`,
		`export * from "./b.js"`,
		`export * from "./a.js"`,
		`export * from "./a.js"`,
	), "/out/index.ts")

	assert.Equal(t, "/out/index.ts", artifact.Path)
	assert.Equal(t, []string{
		`export * from "./a.js"`,
		`export * from "./b.js"`,
		`export { default as Card } from "./card.svelte"`,
	}, artifact.Lines)
	assert.True(t, sort.StringsAreSorted(artifact.Lines))

	expected := types.Header + "\n\n" +
		`export * from "./a.js"` + "\n" +
		`export * from "./b.js"` + "\n" +
		`export { default as Card } from "./card.svelte"` + "\n"
	assert.Equal(t, expected, string(artifact.Bytes()))
}

func TestRenderEmpty(t *testing.T) {
	artifact := Render(nil, "/out/index.ts")
	assert.Empty(t, artifact.Lines)
	assert.Equal(t, types.Header+"\n\n", string(artifact.Bytes()))
}

func TestRenderSortsByCodepoint(t *testing.T) {
	artifact := Render(lines("b", "B", "a", "_", "Ä"), "/out/index.ts")
	assert.Equal(t, []string{"B", "_", "a", "b", "Ä"}, artifact.Lines)
}

func TestWrite(t *testing.T) {
	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll("/out", 0755))

	artifact, err := Write(fs, lines(`export * from "./a.js"`), "/out/index.ts")
	require.NoError(t, err)

	content, err := fs.ReadFile("/out/index.ts")
	require.NoError(t, err)
	assert.Equal(t, artifact.Bytes(), content)

	// the temporary file is gone
	_, err = fs.Stat("/out/.index.ts.tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "index.ts")
	require.NoError(t, os.WriteFile(outPath, []byte("stale content that is much longer than the new file\n"), 0644))

	fs := filesystem.NewOS()
	_, err := Write(fs, nil, outPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, types.Header+"\n\n", string(content))
}

func TestWriteIdempotent(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "index.ts")
	fs := filesystem.NewOS()
	input := lines(`export * from "./z.js"`, `export * from "./a.js"`)

	_, err := Write(fs, input, outPath)
	require.NoError(t, err)
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	_, err = Write(fs, input, outPath)
	require.NoError(t, err)
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteMissingDirectory(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "missing", "index.ts")

	_, err := Write(filesystem.NewOS(), nil, outPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.NotEmpty(t, errors.GetPath(err))
}

func TestReplaceFileLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.css")

	require.NoError(t, ReplaceFile(filesystem.NewOS(), path, []byte("a")))
	require.NoError(t, ReplaceFile(filesystem.NewOS(), path, []byte("b")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tokens.css", entries[0].Name())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b", string(content))
}
