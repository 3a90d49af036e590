package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-site-sync/models"
)

// sequentialIDs hands out prefix-1, prefix-2, ... so tests can predict ids.
type sequentialIDs struct {
	prefix string
	n      atomic.Int64
}

func (g *sequentialIDs) Generate() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1))
}

// stubMonitor is a hand-rolled ConnectivityMonitor whose connection state
// tests flip directly.
type stubMonitor struct {
	mu         sync.Mutex
	connected  bool
	device     bool
	lastSync   *time.Time
	synced     int
	pendingOps int
	maxOps     int
	forced     []bool
}

func newStubMonitor(connected bool) *stubMonitor {
	return &stubMonitor{connected: connected, device: connected}
}

func (m *stubMonitor) setConnected(connected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = connected
}

func (m *stubMonitor) Start(context.Context)           {}
func (m *stubMonitor) Stop()                           {}
func (m *stubMonitor) OnDeviceOnline(context.Context)  {}
func (m *stubMonitor) OnDeviceOffline(context.Context) {}

func (m *stubMonitor) ForceOffline(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	m.forced = append(m.forced, false)
}

func (m *stubMonitor) ForceOnline(context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forced = append(m.forced, true)
	if !m.device {
		return false
	}
	m.connected = true
	return true
}

func (m *stubMonitor) Subscribe(func(models.ConnectivityState)) func() { return func() {} }

func (m *stubMonitor) BeginOperation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingOps++
	if m.pendingOps > m.maxOps {
		m.maxOps = m.pendingOps
	}
}

func (m *stubMonitor) EndOperation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingOps--
}

func (m *stubMonitor) MarkSynced(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSync = &at
	m.synced++
}

func (m *stubMonitor) ResetLastSync() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSync = nil
}

func (m *stubMonitor) State() models.ConnectivityState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.ConnectivityState{
		IsDeviceOnline:        m.device,
		IsRemoteConnected:     m.connected,
		LastSyncAt:            m.lastSync,
		PendingOperationCount: uint(m.pendingOps),
	}
}

func (m *stubMonitor) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *stubMonitor) SetReconnectHandler(func(context.Context)) {}

func (m *stubMonitor) syncCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.synced
}

// eventRecorder collects everything published on a bus.
type eventRecorder struct {
	mu     sync.Mutex
	events []models.Event
}

func recordEvents(bus *EventBus) *eventRecorder {
	r := &eventRecorder{}
	bus.Subscribe(func(ev models.Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, ev)
	})
	return r
}

func (r *eventRecorder) ofKind(kind models.EventKind) []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
