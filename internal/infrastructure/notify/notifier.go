// Package notify implements the fire-and-forget toast sink. Notifications
// are queued on a buffered channel and drained by a single worker, so a
// slow sink never blocks the request path.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/khadamat/marketplace-api/internal/core/ports"
)

const queueBuffer = 256

// Sink receives drained notifications. Implementations must not retry:
// a dropped toast is a dropped toast.
type Sink interface {
	Deliver(n ports.Notification)
}

// Dispatcher queues notifications and drains them to a Sink on a worker
// goroutine. When the queue is full the notification is dropped.
type Dispatcher struct {
	queue chan ports.Notification
	sink  Sink
	log   zerolog.Logger
}

// NewDispatcher creates a Dispatcher draining to sink.
func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		queue: make(chan ports.Notification, queueBuffer),
		sink:  sink,
		log:   log,
	}
}

// Start launches the drain worker. The worker stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-d.queue:
				if !ok {
					return
				}
				d.sink.Deliver(n)
			}
		}
	}()
}

// Notify enqueues a notification. Non-blocking: a full queue drops the
// notification with a warning.
func (d *Dispatcher) Notify(n ports.Notification) {
	select {
	case d.queue <- n:
	default:
		d.log.Warn().Str("title", n.Title).Msg("notification queue full, dropped")
	}
}

// LogSink writes notifications to the structured log. It is the default
// sink when no push channel is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(n ports.Notification) {
	evt := s.log.Info()
	if n.Severity == ports.SeverityDestructive {
		evt = s.log.Warn()
	}
	evt.Str("title", n.Title).
		Str("description", n.Description).
		Str("severity", string(n.Severity)).
		Msg("notification")
}
