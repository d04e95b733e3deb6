package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/prabhatsn1/trameapp/internal/ingest"
	"github.com/prabhatsn1/trameapp/internal/visualizer"
	"github.com/prabhatsn1/trameapp/internal/web"
)

func (a *App) initModules() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	if a.config.GetBool("modules.ingest.enabled") {
		closer, err := ingest.New(ingest.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
			Seq:       a.seq,
		})
		if err != nil {
			slog.Error("failed to init module ingest", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			a.closerFn["Ingest"] = closer
		}
	}

	if a.config.GetBool("modules.visualizer.enabled") {
		closer, err := visualizer.New(visualizer.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
		})
		if err != nil {
			slog.Error("failed to init module visualizer", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			a.closerFn["Visualizer"] = closer
		}
	}

	if err := web.Register(a.router, a.config.GetString("modules.visualizer.url")); err != nil {
		slog.Error("failed to init module web", "error", err)
		os.Exit(1)
	}
}
