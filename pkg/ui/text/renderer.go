// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.GenerateIndexResult:
		if v.DryRun {
			if _, err := r.output.Write(v.Artifact.Bytes()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(r.output, "\n%s not written (dry run): %d exports from %d candidates\n",
				v.Artifact.Path, v.Exported, v.Candidates)
			return err
		}
		if _, err := fmt.Fprintf(r.output, "Wrote %s: %d exports from %d candidates\n",
			v.Artifact.Path, v.Exported, v.Candidates); err != nil {
			return err
		}
		if v.Skipped > 0 {
			_, err := fmt.Fprintf(r.output, "Skipped %d files with unrecognized extensions\n", v.Skipped)
			return err
		}
		return nil
	case *types.FlattenTokensResult:
		if v.DryRun {
			if _, err := io.WriteString(r.output, v.Content); err != nil {
				return err
			}
			_, err := fmt.Fprintf(r.output, "\n%s not written (dry run): %d tokens\n", v.OutPath, v.Tokens)
			return err
		}
		_, err := fmt.Fprintf(r.output, "Wrote %s: %d tokens\n", v.OutPath, v.Tokens)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %s\n", errors.Describe(err))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
