// Package terminal provides styled terminal output
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/arthur-debert/barrel/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer prints pterm status lines with lipgloss-styled values
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

func path(p string) string {
	return styles.GetStyle("FilePath").Render(p)
}

func count(n int) string {
	return styles.GetStyle("Count").Render(fmt.Sprint(n))
}

// RenderResult renders any result type with terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.GenerateIndexResult:
		if v.DryRun {
			if _, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render(v.Artifact.Header)); err != nil {
				return err
			}
			for _, line := range v.Artifact.Lines {
				if _, err := fmt.Fprintln(r.output, line); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(r.output, pterm.Info.Sprintf("dry run: %s not written, %s exports from %s candidates",
				path(v.Artifact.Path), count(v.Exported), count(v.Candidates)))
			return err
		}
		if _, err := fmt.Fprintln(r.output, pterm.Success.Sprintf("Wrote %s: %s exports from %s candidates",
			path(v.Artifact.Path), count(v.Exported), count(v.Candidates))); err != nil {
			return err
		}
		if v.Skipped > 0 {
			_, err := fmt.Fprintln(r.output, pterm.Warning.Sprintf("Skipped %s files with unrecognized extensions",
				count(v.Skipped)))
			return err
		}
		return nil
	case *types.FlattenTokensResult:
		if v.DryRun {
			if _, err := io.WriteString(r.output, v.Content); err != nil {
				return err
			}
			_, err := fmt.Fprintln(r.output, pterm.Info.Sprintf("dry run: %s not written, %s tokens",
				path(v.OutPath), count(v.Tokens)))
			return err
		}
		_, err := fmt.Fprintln(r.output, pterm.Success.Sprintf("Wrote %s: %s tokens", path(v.OutPath), count(v.Tokens)))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if p := errors.GetPath(err); p != "" && !strings.Contains(msg, p) {
		msg += " " + path(p)
	}
	_, werr := fmt.Fprintln(r.output, pterm.Error.Sprint(msg))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Sprint(msg))
	return err
}
