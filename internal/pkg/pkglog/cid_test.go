package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := SetCorrelationID(context.Background(), "cid-123")
	if got := GetCorrelationID(ctx); got != "cid-123" {
		t.Fatalf("GetCorrelationID() = %q, want %q", got, "cid-123")
	}
}

func TestCorrelationIDMissing(t *testing.T) {
	if got := GetCorrelationID(context.Background()); got != "" {
		t.Fatalf("GetCorrelationID() = %q, want empty", got)
	}
}
