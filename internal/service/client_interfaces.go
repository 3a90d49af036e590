package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-site-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConnectivityMonitor tracks device and remote reachability and owns the
// manual online/offline overrides. It is built once per process and injected
// into the components that need it.
type ConnectivityMonitor interface {
	// Start subscribes to the device signal and probes the current state.
	// Calling Start again has no effect until Stop is called.
	Start(ctx context.Context)

	// Stop unsubscribes from the device signal.
	Stop()

	// OnDeviceOnline marks the device online and tries to enable the remote
	// store. On success the remote is connected, LastSyncAt is refreshed and
	// the reconnect handler runs before OnDeviceOnline returns.
	OnDeviceOnline(ctx context.Context)

	// OnDeviceOffline marks both the device and the remote as unreachable.
	OnDeviceOffline(ctx context.Context)

	// ForceOffline disables the remote store connection while leaving the
	// device state alone.
	ForceOffline(ctx context.Context)

	// ForceOnline re-enables the remote store. It reports whether the remote
	// is connected afterwards and is refused while the device is offline.
	ForceOnline(ctx context.Context) bool

	// Subscribe registers fn for a state snapshot after every change.
	Subscribe(fn func(models.ConnectivityState)) (unsubscribe func())

	BeginOperation()
	EndOperation()

	MarkSynced(at time.Time)
	ResetLastSync()

	State() models.ConnectivityState
	IsConnected() bool

	// SetReconnectHandler registers the function run after every successful
	// (re)connection.
	SetReconnectHandler(fn func(ctx context.Context))
}

// SyncEngine buffers writes made while disconnected and replays them against
// the remote store.
type SyncEngine interface {
	// Enqueue appends a mutation to the queue. Creates and updates are also
	// written to the local cache as offline-origin snapshots.
	Enqueue(kind models.MutationKind, collection, entityID string, payload models.Payload) (models.QueuedMutation, error)

	// Drain replays queued mutations in FIFO order. It returns
	// ErrNotConnected when the remote is not connected and
	// ErrDrainInProgress when another drain is running.
	Drain(ctx context.Context) (models.SyncSummary, error)

	// Pending returns a FIFO copy of the queued mutations.
	Pending() []models.QueuedMutation
}

// SyncJob periodically drains the mutation queue in the background.
type SyncJob interface {
	// Start launches the background goroutine ticking every interval. A
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}

// EntityService is the single entry point features use to read and write
// entities, online or offline.
type EntityService interface {
	Create(ctx context.Context, collection string, payload models.Payload) (models.Entity, error)
	Update(ctx context.Context, collection, id string, partial models.Payload) (models.Entity, error)
	Remove(ctx context.Context, collection, id string) error

	// List returns the cached collection immediately. When connected, a
	// background refresh follows and onFresh, if not nil, receives the
	// refreshed collection.
	List(ctx context.Context, collection string, onFresh func([]models.Entity)) []models.Entity

	ReadCache(collection, id string) (models.CachedEntity, bool)
	ReadCollection(collection string) []models.CachedEntity

	// ClearCache drops one collection. An empty collection name clears the
	// whole cache, the mutation queue and LastSyncAt.
	ClearCache(collection string)

	ForceOffline(ctx context.Context)
	ForceOnline(ctx context.Context) bool

	// Sync runs a drain pass on demand.
	Sync(ctx context.Context) (models.SyncSummary, error)

	EstimatedSizeKB() uint
	LastSyncAt() *time.Time
	State() models.ConnectivityState
	Status() models.AgentStatus
	PendingMutations() []models.QueuedMutation

	Subscribe(fn func(models.Event)) (unsubscribe func())

	// Close waits for background work started by List.
	Close()
}
