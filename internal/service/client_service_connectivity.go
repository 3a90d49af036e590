// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/adapter"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/models"
)

type connectivityMonitor struct {
	remote adapter.RemoteStore
	signal adapter.DeviceSignal
	events *EventBus

	mu        sync.Mutex
	state     models.ConnectivityState
	reconnect func(ctx context.Context)

	lifecycleMu sync.Mutex
	unsubscribe func()

	now    func() time.Time
	logger *logger.Logger
}

// NewConnectivityMonitor builds a monitor that starts out offline. Nothing
// happens until Start is called.
func NewConnectivityMonitor(remote adapter.RemoteStore, signal adapter.DeviceSignal, events *EventBus, logger *logger.Logger) ConnectivityMonitor {
	return &connectivityMonitor{
		remote: remote,
		signal: signal,
		events: events,
		now:    time.Now,
		logger: logger,
	}
}

func (m *connectivityMonitor) Start(ctx context.Context) {
	m.lifecycleMu.Lock()
	if m.unsubscribe != nil {
		m.lifecycleMu.Unlock()
		return
	}
	m.unsubscribe = m.signal.Subscribe(func(online bool) {
		if online {
			m.OnDeviceOnline(ctx)
			return
		}
		m.OnDeviceOffline(ctx)
	})
	m.lifecycleMu.Unlock()

	m.logger.Info().Str("func", "connectivityMonitor.Start").Msg("connectivity monitor started")

	if m.signal.Online() {
		m.OnDeviceOnline(ctx)
		return
	}
	m.OnDeviceOffline(ctx)
}

func (m *connectivityMonitor) Stop() {
	m.lifecycleMu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.lifecycleMu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
		m.logger.Info().Str("func", "connectivityMonitor.Stop").Msg("connectivity monitor stopped")
	}
}

func (m *connectivityMonitor) OnDeviceOnline(ctx context.Context) {
	m.update(func(s *models.ConnectivityState) {
		s.IsDeviceOnline = true
	})

	m.connect(ctx, "connectivityMonitor.OnDeviceOnline")
}

func (m *connectivityMonitor) OnDeviceOffline(ctx context.Context) {
	m.update(func(s *models.ConnectivityState) {
		s.IsDeviceOnline = false
		s.IsRemoteConnected = false
	})

	m.logger.Info().Str("func", "connectivityMonitor.OnDeviceOffline").Msg("device went offline")
}

func (m *connectivityMonitor) ForceOffline(ctx context.Context) {
	if err := m.remote.Disable(ctx); err != nil {
		m.logConnectivityError("connectivityMonitor.ForceOffline", &ConnectivityError{Op: "disable", Err: err})
	}

	m.update(func(s *models.ConnectivityState) {
		s.IsRemoteConnected = false
	})

	m.logger.Info().Str("func", "connectivityMonitor.ForceOffline").Msg("remote store switched off manually")
}

func (m *connectivityMonitor) ForceOnline(ctx context.Context) bool {
	if !m.State().IsDeviceOnline {
		m.logger.Warn().Str("func", "connectivityMonitor.ForceOnline").Msg("device is offline, refusing to connect")
		return false
	}

	return m.connect(ctx, "connectivityMonitor.ForceOnline")
}

// connect enables the remote store and, on success, marks it connected and
// runs the reconnect handler.
func (m *connectivityMonitor) connect(ctx context.Context, caller string) bool {
	if err := m.remote.Enable(ctx); err != nil {
		m.update(func(s *models.ConnectivityState) {
			s.IsRemoteConnected = false
		})
		m.logConnectivityError(caller, &ConnectivityError{Op: "enable", Err: err})
		return false
	}

	var connected bool
	m.update(func(s *models.ConnectivityState) {
		// the device may have dropped while Enable was in flight
		if !s.IsDeviceOnline {
			return
		}
		now := m.now()
		s.IsRemoteConnected = true
		s.LastSyncAt = &now
		connected = true
	})
	if !connected {
		return false
	}

	m.logger.Info().Str("func", caller).Msg("remote store connected")

	m.mu.Lock()
	reconnect := m.reconnect
	m.mu.Unlock()
	if reconnect != nil {
		reconnect(ctx)
	}
	return true
}

func (m *connectivityMonitor) Subscribe(fn func(models.ConnectivityState)) func() {
	return m.events.Subscribe(func(ev models.Event) {
		if ev.Kind == models.EventConnectivity && ev.State != nil {
			fn(*ev.State)
		}
	})
}

func (m *connectivityMonitor) BeginOperation() {
	m.update(func(s *models.ConnectivityState) {
		s.PendingOperationCount++
	})
}

func (m *connectivityMonitor) EndOperation() {
	m.update(func(s *models.ConnectivityState) {
		if s.PendingOperationCount > 0 {
			s.PendingOperationCount--
		}
	})
}

func (m *connectivityMonitor) MarkSynced(at time.Time) {
	m.update(func(s *models.ConnectivityState) {
		s.LastSyncAt = &at
	})
}

func (m *connectivityMonitor) ResetLastSync() {
	m.update(func(s *models.ConnectivityState) {
		s.LastSyncAt = nil
	})
}

func (m *connectivityMonitor) State() models.ConnectivityState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyState(m.state)
}

func (m *connectivityMonitor) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Online()
}

func (m *connectivityMonitor) SetReconnectHandler(fn func(ctx context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconnect = fn
}

// update applies fn under the lock and publishes the resulting snapshot.
// Observers run after the lock is released, so they may call back into the
// monitor.
func (m *connectivityMonitor) update(fn func(s *models.ConnectivityState)) {
	m.mu.Lock()
	fn(&m.state)
	snapshot := copyState(m.state)
	m.mu.Unlock()

	m.events.Publish(models.Event{Kind: models.EventConnectivity, State: &snapshot})
}

func (m *connectivityMonitor) logConnectivityError(caller string, err *ConnectivityError) {
	m.logger.Err(err).Str("func", caller).Str("op", err.Op).Msg("remote store connectivity change failed")
}

func copyState(s models.ConnectivityState) models.ConnectivityState {
	if s.LastSyncAt != nil {
		at := *s.LastSyncAt
		s.LastSyncAt = &at
	}
	return s
}
