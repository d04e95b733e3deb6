package usecase

// IngestResult summarizes a successfully ingested table.
type IngestResult struct {
	Seq          int64
	FileName     string
	Headers      []string
	RowCount     int
	BlankDropped int
	Compatible3D bool
}

// SnapshotResult is the current page-level state: the loaded table's
// metadata (when present) and the single optional error message.
type SnapshotResult struct {
	HasTable     bool
	FileName     string
	Headers      []string
	RowCount     int
	Compatible3D bool
	Err          string
	LoadedAt     int64
}

// PreviewResult carries the first rows of the current table for display.
type PreviewResult struct {
	FileName  string
	Headers   []string
	Rows      [][]string
	TotalRows int
}
