package splitter

// Block represents one extracted declaration unit: an enum declaration
// together with its leading doc comments and attributes, extended to cover
// the impl block that immediately follows it when one exists.
type Block struct {
	Name      string `json:"name"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	StartLine int    `json:"start_line"` // 1-based, inclusive
	EndLine   int    `json:"end_line"`   // 1-based, inclusive
}

// CategoryTable maps a category label to the identifier entries it owns.
// Entries are exact enum names or glob patterns (e.g. "Quote*").
type CategoryTable map[string][]string

// Stats tracks statistics about a split run.
type Stats struct {
	BlocksFound       int            `json:"blocks_found"`
	CategoryCounts    map[string]int `json:"category_counts"`
	CategoriesWritten []string       `json:"categories_written"` // sorted by label
	ManifestPath      string         `json:"manifest_path"`
	ProcessingSeconds float64        `json:"processing_seconds"`
	DryRun            bool           `json:"dry_run"`
}
