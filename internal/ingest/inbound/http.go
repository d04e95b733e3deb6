package inbound

import (
	"context"
	"io"

	"github.com/prabhatsn1/trameapp/internal/ingest/event"
	"github.com/prabhatsn1/trameapp/internal/ingest/usecase"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgrouter"
)

type uc interface {
	Ingest(ctx context.Context, r io.Reader, fileName, contentType string) (usecase.IngestResult, error)
	Current(ctx context.Context) (usecase.SnapshotResult, error)
	Preview(ctx context.Context, limit int) (usecase.PreviewResult, error)
	Clear(ctx context.Context) error
}

type statsProvider interface {
	Snapshot() event.Stats
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, stats statsProvider) {
	end := &HTTPEndpoint{uc: uc, stats: stats}

	r.POST("/table", end.Upload)
	r.GET("/table", end.Current)
	r.GET("/table/preview", end.Preview) // ?rows=
	r.DELETE("/table", end.Clear)
	r.GET("/table/stats", end.Stats)
}
