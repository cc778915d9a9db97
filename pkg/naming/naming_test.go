package naming

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"card", "Card"},
		{"user-card", "UserCard"},
		{"date_picker", "DatePicker"},
		{"mixed-case_name", "MixedCaseName"},
		{"iconButton", "IconButton"},
		{"Already", "Already"},
		{"double--dash", "DoubleDash"},
		{"trailing-", "Trailing"},
		{"-leading", "Leading"},
		{"v2-card", "V2Card"},
		{"card-2", "Card2"},
		{"étiquette", "Étiquette"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExportName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExportNameErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"leading digit", "1card"},
		{"only separators", "-_-"},
		{"separator then digit", "-1card"},
		{"dot inside name", "user.card"},
		{"space inside name", "user card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExportName(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrNaming))
		})
	}
}

// Every basename matching [a-zA-Z][a-zA-Z0-9_-]* yields an identifier
// without separators that starts with an upper-case letter.
func TestExportNameShape(t *testing.T) {
	const first = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	const rest = first + "0123456789_-"
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		var sb strings.Builder
		sb.WriteByte(first[rng.Intn(len(first))])
		for j := rng.Intn(12); j > 0; j-- {
			sb.WriteByte(rest[rng.Intn(len(rest))])
		}
		input := sb.String()

		got, err := ExportName(input)
		require.NoError(t, err, input)
		assert.NotContains(t, got, "-", input)
		assert.NotContains(t, got, "_", input)
		assert.True(t, unicode.IsUpper(rune(got[0])), "%q -> %q", input, got)
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("Card"))
	assert.True(t, IsIdentifier("$store"))
	assert.True(t, IsIdentifier("_x1"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("1x"))
	assert.False(t, IsIdentifier("a-b"))
}
