package adapter

import (
	"sync"

	"github.com/MKhiriev/go-site-sync/internal/logger"
)

// signalHub tracks the online flag and fans transitions out to subscribers.
type signalHub struct {
	mu     sync.Mutex
	online bool
	subs   map[int]func(bool)
	nextID int
	logger *logger.Logger
}

func newSignalHub(online bool, log *logger.Logger) *signalHub {
	return &signalHub{online: online, subs: make(map[int]func(bool)), logger: log}
}

func (h *signalHub) Online() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.online
}

func (h *signalHub) Subscribe(fn func(online bool)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// set records online and notifies subscribers if it changed. Callbacks run
// without the lock held.
func (h *signalHub) set(online bool) bool {
	h.mu.Lock()
	if h.online == online {
		h.mu.Unlock()
		return false
	}
	h.online = online
	subs := make([]func(bool), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		h.notify(fn, online)
	}
	return true
}

func (h *signalHub) notify(fn func(bool), online bool) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Str("func", "signalHub.notify").Interface("panic", r).Msg("device signal subscriber panicked")
		}
	}()
	fn(online)
}

// ManualSignal is a [DeviceSignal] driven by explicit calls to Set.
type ManualSignal struct {
	*signalHub
}

// NewManualSignal returns a signal starting in the given state.
func NewManualSignal(online bool, log *logger.Logger) *ManualSignal {
	return &ManualSignal{signalHub: newSignalHub(online, log)}
}

// Set changes the state and reports whether it was a transition.
func (s *ManualSignal) Set(online bool) bool {
	return s.set(online)
}
