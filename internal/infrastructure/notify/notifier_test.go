package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/khadamat/marketplace-api/internal/core/ports"
)

type captureSink struct {
	mu        sync.Mutex
	delivered []ports.Notification
}

func (s *captureSink) Deliver(n ports.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, n)
}

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.delivered)
}

func (s *captureSink) first() ports.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivered[0]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_DeliversToSink(t *testing.T) {
	sink := &captureSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Notify(ports.Notification{Title: "تم الحذف", Description: "تم حذف المتجر بنجاح", Severity: ports.SeveritySuccess})
	d.Notify(ports.Notification{Title: "خطأ", Description: "فشل في تحميل البيانات", Severity: ports.SeverityDestructive})

	waitFor(t, func() bool { return sink.count() == 2 })
	if got := sink.first(); got.Title != "تم الحذف" || got.Severity != ports.SeveritySuccess {
		t.Fatalf("unexpected first notification: %+v", got)
	}
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	// No worker started: the queue fills and overflow is dropped.
	d := NewDispatcher(&captureSink{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < queueBuffer*2; i++ {
			d.Notify(ports.Notification{Title: "خطأ", Severity: ports.SeverityDestructive})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	sink := &captureSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Notify(ports.Notification{Title: "خطأ", Severity: ports.SeverityDestructive})
	waitFor(t, func() bool { return sink.count() == 1 })

	cancel()
	// Give the worker a moment to observe cancellation, then verify no
	// further deliveries happen.
	time.Sleep(20 * time.Millisecond)
	d.Notify(ports.Notification{Title: "خطأ", Severity: ports.SeverityDestructive})
	time.Sleep(50 * time.Millisecond)
	if sink.count() != 1 {
		t.Fatalf("worker delivered after cancellation: %d", sink.count())
	}
}
