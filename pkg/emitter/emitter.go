// Package emitter renders one export statement per candidate file.
package emitter

import (
	"fmt"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/logging"
	"github.com/arthur-debert/barrel/pkg/naming"
	"github.com/arthur-debert/barrel/pkg/types"
)

// Emit returns the export line for c, or nil when its extension is neither
// a plain module nor a component module.
//
// Plain modules are re-exported wholesale and get the module suffix when
// cfg.IsModule is set. Components are re-exported by default under a name
// derived from their basename and are imported with their own extension.
func Emit(c types.CandidateFile, specifier string, cfg types.SelectionConfig) (*types.ExportLine, error) {
	switch cfg.Extensions.KindOf(c) {
	case types.KindPlain:
		suffix := ""
		if cfg.IsModule {
			suffix = cfg.Extensions.ModuleSuffix
		}
		return &types.ExportLine{
			Text: fmt.Sprintf("export * from %q", specifier+suffix),
		}, nil

	case types.KindComponent:
		name, err := naming.ExportName(c.BasenameWithoutExt)
		if err != nil {
			return nil, errors.EnsurePath(err, c.RelativePath)
		}
		return &types.ExportLine{
			Text: fmt.Sprintf("export { default as %s } from %q", name, specifier+c.Extension),
		}, nil

	default:
		logger := logging.GetLogger("emitter")
		logger.Debug().
			Str("file", c.RelativePath).
			Str("extension", c.Extension).
			Msg("Skipping file with unrecognized extension")
		return nil, nil
	}
}
