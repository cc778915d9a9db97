package config

import (
	"strings"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "# include_glob = [")
	assert.Contains(t, content, "[extensions]")
	assert.Contains(t, content, `# module = "ts"`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "[extensions]" {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line not commented: %q", line)
	}

	// the generated file parses and sets nothing
	k := koanf.New(".")
	require.NoError(t, k.Load(&rawBytesProvider{bytes: []byte(content)}, toml.Parser()))
	assert.False(t, k.Exists("include_glob"))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "include_glob", envKey("BARREL_INCLUDE_GLOB"))
	assert.Equal(t, "extensions.module", envKey("BARREL_EXTENSIONS__MODULE"))
	assert.Equal(t, "extensions.module_suffix", envKey("BARREL_EXTENSIONS__MODULE_SUFFIX"))
}

func TestEnvValuesToKeys(t *testing.T) {
	got := envValuesToKeys(map[string]string{
		"BARREL_DIR": "src",
		"HOME":       "/home/me",
	})
	assert.Equal(t, map[string]interface{}{"dir": "src"}, got)
}
