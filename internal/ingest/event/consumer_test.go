package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prabhatsn1/trameapp/internal/ingest/entity"
)

type handlerFunc func(ctx context.Context, event entity.IngestEvent) error

func (h handlerFunc) Handle(ctx context.Context, event entity.IngestEvent) error {
	return h(ctx, event)
}

func TestAccountingConsumerRetriesAndDedupes(t *testing.T) {
	bus := NewBus(10)

	var attempts int32
	done := make(chan struct{})
	handler := handlerFunc(func(ctx context.Context, event entity.IngestEvent) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return errors.New("temporary failure")
		}
		select {
		case <-done:
		default:
			close(done)
		}
		return nil
	})

	consumer := NewAccountingConsumer(bus, handler, ConsumerConfig{
		Workers:     1,
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
	})
	consumer.Start()

	event := entity.IngestEvent{EventID: "evt-1", FileName: "data.csv", RowCount: 3}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish event: %v", err)
	}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish duplicate: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for handler")
	}

	if err := consumer.Stop(context.Background()); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestBusPublishAfterClose(t *testing.T) {
	bus := NewBus(1)
	bus.Close()

	err := bus.Publish(context.Background(), entity.IngestEvent{EventID: "evt-1"})
	if !errors.Is(err, ErrBusClosed) {
		t.Fatalf("Publish() err = %v, want ErrBusClosed", err)
	}
}

func TestStatsRecorderCounts(t *testing.T) {
	recorder := NewStatsRecorder()

	events := []entity.IngestEvent{
		{EventID: "e1", FileName: "a.csv", RowCount: 5, BlankDropped: 1},
		{EventID: "e2", FileName: "b.csv", RowCount: 2},
		{EventID: "e3", FileName: "c.txt", Err: "Please upload a CSV file"},
	}
	for _, event := range events {
		if err := recorder.Handle(context.Background(), event); err != nil {
			t.Fatalf("Handle(%s) err = %v", event.EventID, err)
		}
	}

	stats := recorder.Snapshot()
	if stats.Ingested != 2 || stats.Failed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.RowsKept != 7 || stats.BlanksDropped != 1 {
		t.Fatalf("unexpected row stats: %+v", stats)
	}
}

func TestStatsRecorderRejectsMissingEventID(t *testing.T) {
	recorder := NewStatsRecorder()
	if err := recorder.Handle(context.Background(), entity.IngestEvent{}); err == nil {
		t.Fatal("expected error for missing event id")
	}
}
