// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-site-sync/internal/adapter"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/models"
)

type entityService struct {
	cache   *store.LocalCache
	queue   *store.MutationQueue
	remote  adapter.RemoteStore
	monitor ConnectivityMonitor
	engine  SyncEngine
	events  *EventBus
	ids     utils.IDGenerator

	// locks serializes read-merge-write sequences per entity.
	locks *keyedMutex

	// refreshes tracks background list refreshes still running.
	refreshes sync.WaitGroup
	closeMu   sync.Mutex
	closed    bool

	logger *logger.Logger
}

// NewEntityService builds the facade features read and write entities
// through. Writes go straight to the remote store while it is connected and
// through the sync engine's queue otherwise.
func NewEntityService(storages *store.ClientStorages, remote adapter.RemoteStore, monitor ConnectivityMonitor,
	engine SyncEngine, events *EventBus, ids utils.IDGenerator, logger *logger.Logger) EntityService {
	return &entityService{
		cache:   storages.Cache,
		queue:   storages.Queue,
		remote:  remote,
		monitor: monitor,
		engine:  engine,
		events:  events,
		ids:     ids,
		locks:   newKeyedMutex(),
		logger:  logger,
	}
}

func (s *entityService) Create(ctx context.Context, collection string, payload models.Payload) (models.Entity, error) {
	if collection == "" {
		return models.Entity{}, ErrEmptyCollection
	}

	id := s.ids.Generate()
	if !s.monitor.IsConnected() {
		if _, err := s.engine.Enqueue(models.MutationCreate, collection, id, payload); err != nil {
			return models.Entity{}, fmt.Errorf("queue create: %w", err)
		}
		return newEntity(collection, id, payload), nil
	}

	s.monitor.BeginOperation()
	defer s.monitor.EndOperation()

	storedID, err := s.remote.Create(ctx, collection, id, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "entityService.Create").Str("collection", collection).Msg("remote create failed")
		return models.Entity{}, &DirectWriteError{Op: "create", Collection: collection, Err: err}
	}

	s.cache.Write(collection, storedID, payload, false)
	return newEntity(collection, storedID, payload), nil
}

func (s *entityService) Update(ctx context.Context, collection, id string, partial models.Payload) (models.Entity, error) {
	if collection == "" {
		return models.Entity{}, ErrEmptyCollection
	}
	if id == "" {
		return models.Entity{}, ErrEmptyEntityID
	}

	unlock := s.locks.lock(entityKey(collection, id))
	defer unlock()

	merged, err := s.merge(collection, id, partial)
	if err != nil {
		return models.Entity{}, err
	}

	if s.queued(collection, id) {
		if _, err = s.engine.Enqueue(models.MutationUpdate, collection, id, merged); err != nil {
			return models.Entity{}, fmt.Errorf("queue update: %w", err)
		}
		return newEntity(collection, id, merged), nil
	}

	s.monitor.BeginOperation()
	defer s.monitor.EndOperation()

	if err = s.remote.Update(ctx, collection, id, merged); err != nil {
		s.logger.Err(err).Str("func", "entityService.Update").Str("collection", collection).Str("id", id).Msg("remote update failed")
		return models.Entity{}, &DirectWriteError{Op: "update", Collection: collection, ID: id, Err: err}
	}

	s.cache.Write(collection, id, merged, false)
	return newEntity(collection, id, merged), nil
}

func (s *entityService) Remove(ctx context.Context, collection, id string) error {
	if collection == "" {
		return ErrEmptyCollection
	}
	if id == "" {
		return ErrEmptyEntityID
	}

	unlock := s.locks.lock(entityKey(collection, id))
	defer unlock()

	if s.queued(collection, id) {
		s.cache.Delete(collection, id)
		if _, err := s.engine.Enqueue(models.MutationDelete, collection, id, nil); err != nil {
			return fmt.Errorf("queue delete: %w", err)
		}
		return nil
	}

	s.monitor.BeginOperation()
	defer s.monitor.EndOperation()

	if err := s.remote.Delete(ctx, collection, id); err != nil {
		s.logger.Err(err).Str("func", "entityService.Remove").Str("collection", collection).Str("id", id).Msg("remote delete failed")
		return &DirectWriteError{Op: "delete", Collection: collection, ID: id, Err: err}
	}

	s.cache.Delete(collection, id)
	return nil
}

// queued reports whether a write to (collection, id) has to go through the
// mutation queue: either the remote is not connected or earlier writes to the
// same entity are still waiting there.
func (s *entityService) queued(collection, id string) bool {
	return !s.monitor.IsConnected() || s.queue.HasPending(collection, id)
}

// merge overlays partial onto the cached payload of (collection, id). Keys
// in partial win, including zero values.
func (s *entityService) merge(collection, id string, partial models.Payload) (models.Payload, error) {
	merged := models.Payload{}
	if cached, ok := s.cache.Read(collection, id); ok {
		merged = deepCopyPayload(cached.Payload)
	}
	if len(partial) == 0 {
		return merged, nil
	}

	if err := mergo.Merge(&merged, deepCopyPayload(partial), mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
		return nil, fmt.Errorf("merge payload of %s/%s: %w", collection, id, err)
	}
	return merged, nil
}

func (s *entityService) List(ctx context.Context, collection string, onFresh func([]models.Entity)) []models.Entity {
	entities := toEntities(s.ReadCollection(collection))

	if collection == "" || !s.monitor.IsConnected() {
		return entities
	}

	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return entities
	}

	since := s.cache.Generation()

	s.refreshes.Add(1)
	go func() {
		defer s.refreshes.Done()
		s.refresh(context.WithoutCancel(ctx), collection, since, onFresh)
	}()

	return entities
}

// refresh replaces the confirmed entries of collection with the remote set.
// Offline-origin entries, entities with queued mutations and entries written
// locally while the remote list was in flight are kept as they are.
func (s *entityService) refresh(ctx context.Context, collection string, since uint64, onFresh func([]models.Entity)) {
	s.monitor.BeginOperation()
	remote, err := s.remote.List(ctx, collection)
	s.monitor.EndOperation()
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "entityService.refresh").Str("collection", collection).Msg("background refresh failed")
		return
	}

	pending := func(id string) bool {
		return s.queue.HasPending(collection, id)
	}
	if !s.cache.ReplaceConfirmed(collection, remote, since, pending) {
		s.logger.Debug().Str("func", "entityService.refresh").Str("collection", collection).Msg("collection cleared during refresh, result dropped")
		return
	}

	entities := toEntities(s.ReadCollection(collection))

	s.logger.Debug().Str("func", "entityService.refresh").Str("collection", collection).Int("count", len(entities)).Msg("collection refreshed")

	if onFresh != nil {
		onFresh(entities)
	}
	s.events.Publish(models.Event{Kind: models.EventCollectionRefreshed, Collection: collection, Entities: entities})
}

// Close waits for background refreshes to finish. List does not start new
// ones afterwards.
func (s *entityService) Close() {
	s.closeMu.Lock()
	s.closed = true
	s.closeMu.Unlock()

	s.refreshes.Wait()
}

func (s *entityService) ReadCache(collection, id string) (models.CachedEntity, bool) {
	return s.cache.Read(collection, id)
}

// ReadCollection returns the cached entries of collection ordered by id.
func (s *entityService) ReadCollection(collection string) []models.CachedEntity {
	byID := s.cache.ReadCollection(collection)

	entries := make([]models.CachedEntity, 0, len(byID))
	for _, entry := range byID {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b models.CachedEntity) int {
		return strings.Compare(a.ID, b.ID)
	})
	return entries
}

func (s *entityService) ClearCache(collection string) {
	if collection != "" {
		s.cache.Clear(collection)
		s.logger.Info().Str("func", "entityService.ClearCache").Str("collection", collection).Msg("collection cleared")
		return
	}

	s.cache.ClearAll()
	s.queue.Clear()
	s.monitor.ResetLastSync()
	s.logger.Info().Str("func", "entityService.ClearCache").Msg("cache, queue and last sync time cleared")
}

func (s *entityService) ForceOffline(ctx context.Context) {
	s.monitor.ForceOffline(ctx)
}

func (s *entityService) ForceOnline(ctx context.Context) bool {
	return s.monitor.ForceOnline(ctx)
}

func (s *entityService) Sync(ctx context.Context) (models.SyncSummary, error) {
	return s.engine.Drain(ctx)
}

// EstimatedSizeKB approximates the serialized size of the cache and the
// queue, rounded to the nearest kilobyte.
func (s *entityService) EstimatedSizeKB() uint {
	size := s.cache.SizeBytes() + s.queue.SizeBytes()
	return uint((size + 512) / 1024)
}

func (s *entityService) LastSyncAt() *time.Time {
	return s.monitor.State().LastSyncAt
}

func (s *entityService) State() models.ConnectivityState {
	return s.monitor.State()
}

func (s *entityService) Status() models.AgentStatus {
	return models.AgentStatus{
		State:             s.monitor.State(),
		QueuedMutations:   s.queue.Len(),
		EstimatedSizeKB:   s.EstimatedSizeKB(),
		CachedCollections: len(s.cache.Collections()),
	}
}

func (s *entityService) PendingMutations() []models.QueuedMutation {
	return s.engine.Pending()
}

func (s *entityService) Subscribe(fn func(models.Event)) func() {
	return s.events.Subscribe(fn)
}

func entityKey(collection, id string) string {
	return collection + "/" + id
}

func newEntity(collection, id string, payload models.Payload) models.Entity {
	return models.Entity{Collection: collection, ID: id, Payload: models.ClonePayload(payload)}
}

func toEntities(entries []models.CachedEntity) []models.Entity {
	entities := make([]models.Entity, 0, len(entries))
	for _, entry := range entries {
		entities = append(entities, entry.Entity())
	}
	return entities
}

// deepCopyPayload copies nested maps and slices too, so merging never writes
// into maps the cache still holds.
func deepCopyPayload(p models.Payload) models.Payload {
	out := make(models.Payload, len(p))
	for k, v := range p {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyPayload(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
