package entity

// IngestEvent describes the outcome of one ingestion attempt, successful or
// not. Published on the in-process bus for accounting and logging.
type IngestEvent struct {
	EventID      string
	Seq          int64
	FileName     string
	RowCount     int
	BlankDropped int
	Err          string
}
