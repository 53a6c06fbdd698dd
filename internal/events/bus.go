// Package events delivers domain events to side-effect handlers off the
// request path. Publishing never blocks and never fails the caller.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// Handler reacts to one event. Handler errors are logged and dropped.
type Handler interface {
	Handle(ctx context.Context, e domain.Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, e domain.Event) error

func (f HandlerFunc) Handle(ctx context.Context, e domain.Event) error { return f(ctx, e) }

// Bus is a buffered, single-worker event queue.
type Bus struct {
	queue    chan domain.Event
	handlers []Handler
	log      *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewBus starts a Bus worker dispatching to handlers in registration order.
func NewBus(log *slog.Logger, bufferSize int, handlers ...Handler) *Bus {
	b := &Bus{
		queue:    make(chan domain.Event, bufferSize),
		handlers: handlers,
		log:      log.With("component", "events"),
		done:     make(chan struct{}),
	}
	go b.run()
	return b
}

// Publish enqueues e. When the queue is full or the bus is closed the event
// is dropped with a warning.
func (b *Bus) Publish(ctx context.Context, e domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.drop(ctx, e, "bus closed")
		return
	}

	select {
	case b.queue <- e:
	default:
		b.drop(ctx, e, "queue full")
	}
}

// Close stops accepting events and waits until queued events are handled
// or ctx is done.
func (b *Bus) Close(ctx context.Context) error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.mu.Unlock()

	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: drain: %w", ctx.Err())
	}
}

func (b *Bus) run() {
	defer close(b.done)
	for e := range b.queue {
		for _, h := range b.handlers {
			b.dispatch(h, e)
		}
	}
}

func (b *Bus) dispatch(h Handler, e domain.Event) {
	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			b.log.ErrorContext(ctx, "event handler panicked",
				slog.String("event", e.Name()),
				slog.String("event_id", e.Meta().ID.String()),
				slog.Any("panic", r),
			)
		}
	}()

	if err := h.Handle(ctx, e); err != nil {
		b.log.WarnContext(ctx, "event handler failed",
			slog.String("event", e.Name()),
			slog.String("event_id", e.Meta().ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (b *Bus) drop(ctx context.Context, e domain.Event, reason string) {
	b.log.WarnContext(ctx, "event dropped",
		slog.String("event", e.Name()),
		slog.String("event_id", e.Meta().ID.String()),
		slog.String("reason", reason),
	)
}
