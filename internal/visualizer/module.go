package visualizer

import (
	"context"

	"github.com/prabhatsn1/trameapp/internal/pkg/pkgconfig"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgrouter"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgroutine"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
}

func New(dep Dependency) (func(context.Context) error, error) {
	target := ""
	interval := DefaultInterval
	if dep.Config != nil {
		target = dep.Config.GetString("modules.visualizer.url")
		if d := dep.Config.GetDuration("modules.visualizer.probe_interval"); d > 0 {
			interval = d
		}
	}

	prober := NewProber(target, interval)

	dep.Goroutine.Go(dep.Context, prober.Run)

	RegisterHTTPEndpoint(dep.Router, prober)

	return func(context.Context) error { return nil }, nil
}
