package types

// GenerateIndexResult holds the result of one aggregation run.
type GenerateIndexResult struct {
	// Candidates is the number of files the selector returned.
	Candidates int `json:"candidates"`
	// Exported is the number of export lines in the artifact.
	Exported int `json:"exported"`
	// Skipped counts candidates with an unrecognized extension.
	Skipped  int       `json:"skipped"`
	Artifact *Artifact `json:"artifact"`
	DryRun   bool      `json:"dryRun"`
}

// FlattenTokensResult holds the result of the 'tokens' command.
type FlattenTokensResult struct {
	Tokens  int    `json:"tokens"`
	OutPath string `json:"outPath"`
	Content string `json:"-"`
	DryRun  bool   `json:"dryRun"`
}
