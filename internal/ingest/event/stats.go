package event

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/prabhatsn1/trameapp/internal/ingest/entity"
)

// Stats is a point-in-time view of ingest accounting counters.
type Stats struct {
	Ingested      int64
	Failed        int64
	RowsKept      int64
	BlanksDropped int64
}

// StatsRecorder is the default event handler: it logs each outcome and keeps
// running totals. Safe for concurrent use.
type StatsRecorder struct {
	ingested      atomic.Int64
	failed        atomic.Int64
	rowsKept      atomic.Int64
	blanksDropped atomic.Int64
}

func NewStatsRecorder() *StatsRecorder {
	return &StatsRecorder{}
}

func (r *StatsRecorder) Handle(ctx context.Context, event entity.IngestEvent) error {
	if event.EventID == "" {
		return errors.New("missing event id")
	}

	if event.Err != "" {
		r.failed.Add(1)
		slog.Info("ingestion failed", "event_id", event.EventID, "file_name", event.FileName, "reason", event.Err)
		return nil
	}

	r.ingested.Add(1)
	r.rowsKept.Add(int64(event.RowCount))
	r.blanksDropped.Add(int64(event.BlankDropped))
	slog.Info("ingestion recorded",
		"event_id", event.EventID,
		"file_name", event.FileName,
		"rows", event.RowCount,
		"blank_rows_dropped", event.BlankDropped,
	)

	return nil
}

// Snapshot returns the current counter values.
func (r *StatsRecorder) Snapshot() Stats {
	return Stats{
		Ingested:      r.ingested.Load(),
		Failed:        r.failed.Load(),
		RowsKept:      r.rowsKept.Load(),
		BlanksDropped: r.blanksDropped.Load(),
	}
}
