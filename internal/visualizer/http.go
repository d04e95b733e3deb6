package visualizer

import (
	"context"
	"net/http"

	"github.com/prabhatsn1/trameapp/internal/pkg/pkgrouter"
)

type StatusResponse struct {
	Reachable bool   `json:"reachable"`
	URL       string `json:"url"`
	CheckedAt int64  `json:"checked_at,omitempty"`
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, prober *Prober) {
	r.GET("/visualizer", func(ctx context.Context, _ *http.Request) (any, error) {
		return StatusResponse{
			Reachable: prober.Reachable(),
			URL:       prober.Target(),
			CheckedAt: prober.CheckedAt(),
		}, nil
	})
}
