package ingest

import (
	"context"
	"time"

	"github.com/prabhatsn1/trameapp/internal/ingest/event"
	"github.com/prabhatsn1/trameapp/internal/ingest/inbound"
	"github.com/prabhatsn1/trameapp/internal/ingest/store"
	"github.com/prabhatsn1/trameapp/internal/ingest/usecase"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgconfig"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgrouter"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgroutine"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
	Seq       pkguid.NumberID
}

func New(dep Dependency) (func(context.Context) error, error) {
	storage := store.NewInMemoryStore()
	bus := event.NewBus(256)
	stats := event.NewStatsRecorder()
	consumer := event.NewAccountingConsumer(bus, stats, event.ConsumerConfig{
		Workers:     2,
		MaxRetries:  3,
		BaseBackoff: 200 * time.Millisecond,
	})
	consumer.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}
	if dep.Seq == nil {
		seq, err := pkguid.NewSnowflake()
		if err != nil {
			return nil, err
		}
		dep.Seq = seq
	}

	previewCap := 0
	if dep.Config != nil {
		previewCap = int(dep.Config.GetInt("modules.ingest.preview_rows"))
	}

	uc := usecase.New(usecase.Dependency{
		Store:      storage,
		Events:     bus,
		ID:         dep.ID,
		Seq:        dep.Seq,
		PreviewCap: previewCap,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, stats)

	return consumer.Stop, nil
}
