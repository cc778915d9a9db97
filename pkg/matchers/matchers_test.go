package matchers

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
)

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git/config"))
	assert.True(t, IsHidden("src/.cache/x.ts"))
	assert.True(t, IsHidden("src/.eslintrc.ts"))
	assert.False(t, IsHidden("src/a.ts"))
	assert.False(t, IsHidden("src/a.b.ts"))
}

func TestHasGlobSyntax(t *testing.T) {
	assert.False(t, HasGlobSyntax("legacy"))
	assert.False(t, HasGlobSyntax("legacy-v1"))
	assert.True(t, HasGlobSyntax("**/legacy/**"))
	assert.True(t, HasGlobSyntax("legacy?"))
	assert.True(t, HasGlobSyntax("{a,b}"))
	assert.True(t, HasGlobSyntax("[ab]"))
}

func TestIsExcluded(t *testing.T) {
	excludes := []string{"**/_*", "**/_*/**", "**/*.d.ts"}

	assert.True(t, IsExcluded("_private.ts", excludes))
	assert.True(t, IsExcluded("lib/_internal/x.ts", excludes))
	assert.True(t, IsExcluded("types/global.d.ts", excludes))
	assert.False(t, IsExcluded("lib/public.ts", excludes))
	assert.False(t, IsExcluded("lib/public.ts", nil))
}

func TestSplitPatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "**/*.ts", []string{"**/*.ts"}},
		{"plain list", "**/*.ts,lib/**/*.svelte", []string{"**/*.ts", "lib/**/*.svelte"}},
		{"alternation kept whole", "**/*.{ts,svelte}", []string{"**/*.{ts,svelte}"}},
		{"alternation then list", "**/*.{ts,svelte},!x,{a,{b,c}}/**", []string{"**/*.{ts,svelte}", "!x", "{a,{b,c}}/**"}},
		{"escaped comma", `a\,b,c`, []string{`a\,b`, "c"}},
		{"whitespace and empties", " a , ,b,", []string{"a", "b"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPatterns(tt.input))
		})
	}
}

func TestEscapeLiteral(t *testing.T) {
	assert.Equal(t, "src/index.ts", EscapeLiteral("src/index.ts"))
	assert.Equal(t, `\[gen\]/\{a,b\}/x\*.ts`, EscapeLiteral("[gen]/{a,b}/x*.ts"))

	ok, err := doublestar.Match(EscapeLiteral("[gen]/index.ts"), "[gen]/index.ts")
	assert.NoError(t, err)
	assert.True(t, ok)
}
