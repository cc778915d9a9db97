package types

import (
	"path"
	"strings"
)

// CandidateFile is a file selected for export aggregation, before rewriting.
type CandidateFile struct {
	// RelativePath is slash-separated and relative to the base directory.
	RelativePath string
	// Extension is the final dot-suffix including the dot, case preserved.
	// Empty when the file name has no dot.
	Extension string
	// BasenameWithoutExt is the final path segment with Extension removed.
	BasenameWithoutExt string
}

// NewCandidateFile derives a CandidateFile from a relative path.
func NewCandidateFile(relPath string) CandidateFile {
	relPath = strings.ReplaceAll(relPath, "\\", "/")
	base := path.Base(relPath)
	ext := path.Ext(base)
	return CandidateFile{
		RelativePath:       relPath,
		Extension:          ext,
		BasenameWithoutExt: strings.TrimSuffix(base, ext),
	}
}

// ExportKind classifies a candidate by extension.
type ExportKind int

const (
	KindUnknown ExportKind = iota
	KindPlain
	KindComponent
)

func (k ExportKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// KindOf returns the export kind for c under the given extensions.
// Matching is exact; ".TS" is not a plain module when Module is "ts".
func (e Extensions) KindOf(c CandidateFile) ExportKind {
	switch c.Extension {
	case "." + e.Module:
		return KindPlain
	case "." + e.Component:
		return KindComponent
	default:
		return KindUnknown
	}
}
