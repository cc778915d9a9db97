// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test candidate classification and artifact rendering

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCandidateFile(t *testing.T) {
	tests := []struct {
		rel      string
		ext      string
		basename string
	}{
		{"a.ts", ".ts", "a"},
		{"ui/card.svelte", ".svelte", "card"},
		{"deep/x/types.d.ts", ".ts", "types.d"},
		{"Makefile", "", "Makefile"},
		{"lib/UPPER.TS", ".TS", "UPPER"},
		{`win\path\a.ts`, ".ts", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			c := NewCandidateFile(tt.rel)
			assert.Equal(t, tt.ext, c.Extension)
			assert.Equal(t, tt.basename, c.BasenameWithoutExt)
		})
	}

	assert.Equal(t, "win/path/a.ts", NewCandidateFile(`win\path\a.ts`).RelativePath)
}

func TestKindOf(t *testing.T) {
	ext := DefaultExtensions()

	assert.Equal(t, KindPlain, ext.KindOf(NewCandidateFile("a.ts")))
	assert.Equal(t, KindComponent, ext.KindOf(NewCandidateFile("b.svelte")))
	assert.Equal(t, KindUnknown, ext.KindOf(NewCandidateFile("c.md")))
	assert.Equal(t, KindUnknown, ext.KindOf(NewCandidateFile("D.TS")))
	assert.Equal(t, KindUnknown, ext.KindOf(NewCandidateFile("noext")))

	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "component", KindComponent.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestSelectionConfigNames(t *testing.T) {
	cfg := SelectionConfig{Extensions: Extensions{Module: "js", Component: "vue"}}
	assert.Equal(t, "index.js", cfg.IndexFileName())
	assert.Equal(t, "**/types.js", cfg.TypesPattern())
}

func TestArtifactBytes(t *testing.T) {
	a := &Artifact{Header: Header, Lines: []string{"x", "y"}}
	assert.Equal(t, Header+"\n\nx\ny\n", string(a.Bytes()))

	empty := &Artifact{Header: Header}
	assert.Equal(t, Header+"\n\n", string(empty.Bytes()))
}
