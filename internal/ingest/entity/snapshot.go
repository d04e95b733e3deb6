package entity

// Snapshot is the page-level ingestion state.
//
// At most one table exists at a time; a successful ingestion replaces the
// whole snapshot (never merges), a failed one records Err and leaves the
// previous table untouched, and an explicit clear resets everything together.
type Snapshot struct {
	Table    *Table
	FileName string
	Err      string

	// Seq is the supersede token of the ingestion that produced this state.
	Seq int64
	// LoadedAt is the unix time the current table was loaded; zero when none.
	LoadedAt int64
}
