package types

import "strings"

// ExportLine is one fully-formed line of aggregator source.
type ExportLine struct {
	Text string
}

// Header is the fixed comment at the top of every generated file.
const Header = "// This file is generated by barrel. Do not edit it by hand."

// CSSHeader is Header as a CSS comment, for generated stylesheets.
const CSSHeader = "/* This file is generated by barrel. Do not edit it by hand. */"

// Artifact is the rendered aggregator file.
type Artifact struct {
	Path   string `json:"path"`
	Header string `json:"-"`
	// Lines are sorted and free of exact duplicates.
	Lines []string `json:"lines"`
}

// Bytes renders the header, one blank line and the export lines, each
// newline-terminated. An artifact without lines is the header followed by
// the blank line.
func (a *Artifact) Bytes() []byte {
	var sb strings.Builder
	sb.WriteString(a.Header)
	sb.WriteString("\n\n")
	for _, line := range a.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}
