// Package types defines the core types and interfaces used throughout barrel.
// This includes the immutable SelectionConfig threaded through the pipeline,
// the CandidateFile and ExportLine values it produces, the final Artifact,
// and the FS interface every component reads and writes through.
package types
