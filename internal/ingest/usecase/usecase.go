package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/prabhatsn1/trameapp/internal/ingest/entity"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgerror"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkguid"
)

// User-facing messages; these are the exact strings the page shows.
const (
	msgInvalidType = "Please upload a CSV file"
	msgParseError  = "Error parsing CSV file"
	msgEmptyFile   = "CSV file is empty"
	msgSuperseded  = "Upload superseded by a newer file"
	msgNoTable     = "No CSV file has been uploaded"
)

// DefaultPreviewCap bounds how many rows a preview may return.
const DefaultPreviewCap = 100

type Store interface {
	// Begin records seq as the latest issued ingestion token.
	Begin(ctx context.Context, seq int64) error
	// Replace installs a new table if seq is still the latest issued token.
	// It reports whether the result was applied.
	Replace(ctx context.Context, seq int64, table entity.Table, fileName string, loadedAt int64) (bool, error)
	// SetError records an ingestion error without touching the current table,
	// if seq is still the latest issued token.
	SetError(ctx context.Context, seq int64, msg string) (bool, error)
	Current(ctx context.Context) (entity.Snapshot, error)
	Clear(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.IngestEvent) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store      Store
	Events     EventPublisher
	Clock      Clock
	ID         pkguid.StringID
	Seq        pkguid.NumberID
	PreviewCap int
}

type Usecase struct {
	store      Store
	events     EventPublisher
	clock      Clock
	id         pkguid.StringID
	seq        pkguid.NumberID
	previewCap int
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	previewCap := dep.PreviewCap
	if previewCap < 1 {
		previewCap = DefaultPreviewCap
	}

	return &Usecase{
		store:      dep.Store,
		events:     dep.Events,
		clock:      clock,
		id:         dep.ID,
		seq:        dep.Seq,
		previewCap: previewCap,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Ingest validates, parses, and installs one uploaded CSV file.
//
// Each call is tagged with a monotonic sequence token at initiation; the
// result (table or error message) is applied only if that token is still the
// latest issued, so a slow stale parse can never overwrite newer state.
func (u *Usecase) Ingest(ctx context.Context, r io.Reader, fileName, contentType string) (IngestResult, error) {
	if u.store == nil || u.seq == nil {
		return IngestResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	seq := u.seq.Generate()
	if err := u.store.Begin(ctx, seq); err != nil {
		return IngestResult{}, normalizeErr(err)
	}

	if !acceptUpload(fileName, contentType) {
		u.fail(ctx, seq, fileName, msgInvalidType)
		return IngestResult{}, pkgerror.NewUnsupportedMedia(msgInvalidType)
	}

	table, dropped, err := parseTable(r)
	if err != nil {
		msg := msgParseError
		if errors.Is(err, errEmptyFile) {
			msg = msgEmptyFile
		}
		slog.WarnContext(ctx, "csv ingestion failed", "file_name", fileName, "error", err)
		u.fail(ctx, seq, fileName, msg)
		return IngestResult{}, pkgerror.NewBusiness(msg, pkgerror.CodeInvalidFormat)
	}

	applied, err := u.store.Replace(ctx, seq, table, fileName, u.clock.Now().Unix())
	if err != nil {
		return IngestResult{}, normalizeErr(err)
	}
	if !applied {
		slog.InfoContext(ctx, "stale ingestion result dropped", "file_name", fileName, "seq", seq)
		return IngestResult{}, pkgerror.NewBusiness(msgSuperseded, pkgerror.CodeSuperseded)
	}

	u.publish(ctx, entity.IngestEvent{
		Seq:          seq,
		FileName:     fileName,
		RowCount:     table.RowCount(),
		BlankDropped: dropped,
	})

	return IngestResult{
		Seq:          seq,
		FileName:     fileName,
		Headers:      table.Headers,
		RowCount:     table.RowCount(),
		BlankDropped: dropped,
		Compatible3D: table.CompatibleWith3D(),
	}, nil
}

// Current returns the loaded table's metadata and the pending error message.
func (u *Usecase) Current(ctx context.Context) (SnapshotResult, error) {
	snap, err := u.store.Current(ctx)
	if err != nil {
		return SnapshotResult{}, mapStoreErr(err)
	}

	result := SnapshotResult{
		FileName: snap.FileName,
		Err:      snap.Err,
		LoadedAt: snap.LoadedAt,
	}
	if snap.Table != nil {
		result.HasTable = true
		result.Headers = snap.Table.Headers
		result.RowCount = snap.Table.RowCount()
		result.Compatible3D = snap.Table.CompatibleWith3D()
	}

	return result, nil
}

// Preview returns the first rows of the current table, capped at the
// configured preview limit.
func (u *Usecase) Preview(ctx context.Context, limit int) (PreviewResult, error) {
	snap, err := u.store.Current(ctx)
	if err != nil {
		return PreviewResult{}, mapStoreErr(err)
	}
	if snap.Table == nil {
		return PreviewResult{}, pkgerror.NewBusiness(msgNoTable, pkgerror.CodeNotFound)
	}

	if limit < 1 || limit > u.previewCap {
		limit = u.previewCap
	}

	rows := snap.Table.Rows
	if len(rows) > limit {
		rows = rows[:limit]
	}

	return PreviewResult{
		FileName:  snap.FileName,
		Headers:   snap.Table.Headers,
		Rows:      rows,
		TotalRows: snap.Table.RowCount(),
	}, nil
}

// Clear resets the table, file name, and error message together.
func (u *Usecase) Clear(ctx context.Context) error {
	if err := u.store.Clear(ctx); err != nil {
		return normalizeErr(err)
	}
	return nil
}

func (u *Usecase) fail(ctx context.Context, seq int64, fileName, msg string) {
	applied, err := u.store.SetError(ctx, seq, msg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to record ingestion error", "file_name", fileName, "error", err)
		return
	}
	if !applied {
		slog.InfoContext(ctx, "stale ingestion error dropped", "file_name", fileName, "seq", seq)
		return
	}

	u.publish(ctx, entity.IngestEvent{
		Seq:      seq,
		FileName: fileName,
		Err:      msg,
	})
}

func (u *Usecase) publish(ctx context.Context, event entity.IngestEvent) {
	if u.events == nil {
		return
	}
	if u.id != nil {
		event.EventID = u.id.Generate()
	}
	if err := u.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish ingest event", "file_name", event.FileName, "error", err)
	}
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness(msgNoTable, pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
