package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/models"
)

// EventBus delivers [models.Event] values to observers synchronously, in
// subscription order. A panicking observer is logged and skipped.
type EventBus struct {
	mu        sync.RWMutex
	observers []observer
	nextID    int

	now    func() time.Time
	logger *logger.Logger
}

type observer struct {
	id int
	fn func(models.Event)
}

func NewEventBus(logger *logger.Logger) *EventBus {
	return &EventBus{now: time.Now, logger: logger}
}

// Subscribe registers fn and returns a function removing it. Calling the
// returned function more than once is harmless.
func (b *EventBus) Subscribe(fn func(models.Event)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.observers = append(b.observers, observer{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *EventBus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, o := range b.observers {
		if o.id == id {
			b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
			return
		}
	}
}

// Publish stamps ev with the current time if unset and hands it to every
// observer.
func (b *EventBus) Publish(ev models.Event) {
	if ev.At.IsZero() {
		ev.At = b.now()
	}

	b.mu.RLock()
	observers := make([]observer, len(b.observers))
	copy(observers, b.observers)
	b.mu.RUnlock()

	for _, o := range observers {
		b.deliver(o, ev)
	}
}

func (b *EventBus) deliver(o observer, ev models.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("func", "EventBus.deliver").
				Str("kind", string(ev.Kind)).
				Interface("panic", r).
				Msg("event observer panicked")
		}
	}()
	o.fn(ev)
}
