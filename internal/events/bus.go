package events

import (
	"context"
	"sync"

	"scipress-events/pkg/logger"
)

// Handler processes one published event. Handler errors and panics
// are contained by the bus and never reach the publisher.
type Handler func(ctx context.Context, e Event) error

// Bus is the in-process event dispatcher. The dispatch table is built
// once at startup via Subscribe/SubscribeAll; Publish fans an event
// out to every matching handler on its own goroutine and returns
// immediately.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	catchAll []Handler
	wg       sync.WaitGroup
	log      *logger.Logger
}

func NewBus(l *logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
		log:      l,
	}
}

// Subscribe registers a handler for one event kind.
func (b *Bus) Subscribe(t EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers a handler invoked for every published event.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.catchAll = append(b.catchAll, h)
}

// Publish dispatches the event to the catch-all handlers and every
// handler registered for its type, exactly once each. It never blocks
// on subscribers: each handler runs on its own goroutine and its
// failure stays inside that goroutine.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.catchAll)+len(b.handlers[e.Type()]))
	hs = append(hs, b.catchAll...)
	hs = append(hs, b.handlers[e.Type()]...)
	b.mu.RUnlock()

	for _, h := range hs {
		b.wg.Add(1)
		go func(h Handler) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.errorf("event handler panic for %s: %v", e.Type(), r)
				}
			}()
			if err := h(ctx, e); err != nil {
				b.errorf("event handler failed for %s: %v", e.Type(), err)
			}
		}(h)
	}
}

// Wait blocks until every in-flight handler has returned. Used on
// shutdown and in tests.
func (b *Bus) Wait() {
	b.wg.Wait()
}

func (b *Bus) errorf(template string, args ...interface{}) {
	log := b.log
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	if log != nil {
		log.Errorf(template, args...)
	}
}
