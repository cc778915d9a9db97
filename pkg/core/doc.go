// Package core implements the command pipelines for barrel.
//
// GenerateIndex is a single linear batch:
//
//	selector.Select -> rewrite.Specifier -> emitter.Emit -> writer.Write
//
// Each stage receives the same immutable types.SelectionConfig. The run
// aborts on the first error; nothing is written until every line has been
// emitted, and the write itself is an atomic replace, so a failed run never
// leaves a partial index behind.
package core
