package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/barrel/pkg/errors"
)

// AssertErrorCode checks that err carries the given barrel error code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()

	if err == nil {
		t.Errorf("Expected error with code %s, got nil", code)
		return
	}
	if got := errors.GetErrorCode(err); got != code {
		t.Errorf("Expected error code %s, got %s (%v)", code, got, err)
	}
}

// ExportLines returns the non-empty lines after the header of a rendered
// artifact.
func ExportLines(content string) []string {
	var lines []string
	for i, line := range strings.Split(content, "\n") {
		if i == 0 || line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// AssertSortedArtifact checks that the export lines in content are in
// non-decreasing byte order
func AssertSortedArtifact(t *testing.T, content string) {
	t.Helper()

	lines := ExportLines(content)
	if !sort.StringsAreSorted(lines) {
		t.Errorf("Artifact lines are not sorted:\n%s", strings.Join(lines, "\n"))
	}
}
