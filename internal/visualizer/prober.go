package visualizer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	DefaultTarget   = "http://localhost:8080"
	DefaultInterval = 5 * time.Second
)

// Prober checks whether the external 3D visualization server answers HTTP.
//
// It issues a HEAD request on a fixed interval; any 2xx answer counts as
// reachable, a transport error or non-2xx status as unreachable. A busy flag
// guarantees checks never overlap even when one outlasts the interval.
type Prober struct {
	target   string
	interval time.Duration
	client   *http.Client

	reachable atomic.Bool
	busy      atomic.Bool
	checkedAt atomic.Int64
}

func NewProber(target string, interval time.Duration) *Prober {
	if target == "" {
		target = DefaultTarget
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Prober{
		target:   target,
		interval: interval,
		client: &http.Client{
			Timeout: interval,
		},
	}
}

// Run checks immediately, then on every tick until ctx is canceled.
func (p *Prober) Run(ctx context.Context) error {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

// Check probes the target once. A check already in flight makes this call a
// no-op.
func (p *Prober) Check(ctx context.Context) {
	if !p.busy.CompareAndSwap(false, true) {
		return
	}
	defer p.busy.Store(false)

	reachable := p.probe(ctx)

	was := p.reachable.Swap(reachable)
	p.checkedAt.Store(time.Now().Unix())

	if was != reachable {
		slog.InfoContext(ctx, "visualizer reachability changed", "url", p.target, "reachable", reachable)
	}
}

func (p *Prober) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.target, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (p *Prober) Reachable() bool {
	return p.reachable.Load()
}

func (p *Prober) Target() string {
	return p.target
}

// CheckedAt returns the unix time of the last completed check, zero if none
// has completed yet.
func (p *Prober) CheckedAt() int64 {
	return p.checkedAt.Load()
}
