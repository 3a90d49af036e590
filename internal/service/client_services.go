package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-site-sync/internal/adapter"
	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/utils"
)

type ClientServices struct {
	Events        *EventBus
	Monitor       ConnectivityMonitor
	SyncEngine    SyncEngine
	SyncJob       SyncJob
	EntityService EntityService
}

// NewClientServices wires the agent's services together. The monitor's
// reconnect handler drains the queue, so a successful (re)connection replays
// everything written while offline before it returns.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, signal adapter.DeviceSignal,
	ids utils.IDGenerator, cfg config.Sync, logger *logger.Logger) *ClientServices {
	events := NewEventBus(logger)
	monitor := NewConnectivityMonitor(remote, signal, events, logger)
	engine := NewSyncEngine(storages, remote, monitor, events, cfg, logger)

	monitor.SetReconnectHandler(func(ctx context.Context) {
		if _, err := engine.Drain(ctx); err != nil && !errors.Is(err, ErrDrainInProgress) {
			logger.Err(err).Str("func", "reconnectHandler").Msg("drain after reconnect failed")
		}
	})

	return &ClientServices{
		Events:        events,
		Monitor:       monitor,
		SyncEngine:    engine,
		SyncJob:       NewClientSyncJob(engine, monitor, logger),
		EntityService: NewEntityService(storages, remote, monitor, engine, events, ids, logger),
	}
}

// Close waits for the background work of the entity service.
func (c *ClientServices) Close() {
	c.EntityService.Close()
}
