package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/adapter"
	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/models"
)

type syncEngine struct {
	cache   *store.LocalCache
	queue   *store.MutationQueue
	remote  adapter.RemoteStore
	monitor ConnectivityMonitor
	events  *EventBus

	maxRetries uint
	draining   atomic.Bool

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncEngine builds the engine over the agent's cache and queue. A failed
// mutation is retried maxRetries times before it is abandoned.
func NewSyncEngine(storages *store.ClientStorages, remote adapter.RemoteStore, monitor ConnectivityMonitor,
	events *EventBus, cfg config.Sync, logger *logger.Logger) SyncEngine {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = config.DefaultMaxRetries
	}

	return &syncEngine{
		cache:      storages.Cache,
		queue:      storages.Queue,
		remote:     remote,
		monitor:    monitor,
		events:     events,
		maxRetries: uint(maxRetries),
		now:        time.Now,
		logger:     logger,
	}
}

func (e *syncEngine) Enqueue(kind models.MutationKind, collection, entityID string, payload models.Payload) (models.QueuedMutation, error) {
	if !kind.Valid() {
		return models.QueuedMutation{}, fmt.Errorf("%w: %q", ErrInvalidMutation, kind)
	}
	if collection == "" {
		return models.QueuedMutation{}, ErrEmptyCollection
	}
	if entityID == "" {
		return models.QueuedMutation{}, ErrEmptyEntityID
	}

	mutation := e.queue.Enqueue(kind, collection, entityID, payload)
	if kind != models.MutationDelete {
		e.cache.Write(collection, entityID, payload, true)
	}

	e.logger.Debug().
		Str("func", "syncEngine.Enqueue").
		Str("mutation_id", mutation.ID).
		Str("kind", string(kind)).
		Str("collection", collection).
		Str("entity_id", entityID).
		Msg("mutation queued")

	return mutation, nil
}

func (e *syncEngine) Drain(ctx context.Context) (models.SyncSummary, error) {
	log := e.logger

	if !e.monitor.IsConnected() {
		return models.SyncSummary{}, ErrNotConnected
	}
	if !e.draining.CompareAndSwap(false, true) {
		return models.SyncSummary{}, ErrDrainInProgress
	}
	defer e.draining.Store(false)

	pending := e.queue.Snapshot()
	if len(pending) == 0 {
		return models.SyncSummary{}, nil
	}

	summary := models.SyncSummary{StartedAt: e.now()}
	log.Info().Str("func", "syncEngine.Drain").Int("queued", len(pending)).Msg("drain pass started")

	var stopErr error
	for _, snap := range pending {
		if err := ctx.Err(); err != nil {
			stopErr = err
			break
		}

		// an earlier create in this pass may have re-keyed the entity
		mutation, ok := e.queue.Get(snap.ID)
		if !ok {
			continue
		}

		err := e.apply(ctx, mutation)
		if err == nil {
			summary.Succeeded++
			continue
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			stopErr = ctxErr
			break
		}
		if errors.Is(err, adapter.ErrRemoteDisabled) {
			log.Warn().Str("func", "syncEngine.Drain").Msg("remote store was switched off during the pass")
			break
		}

		if mutation.RetryCount < e.maxRetries {
			retries, _ := e.queue.IncrementRetry(mutation.ID)
			summary.Retried++
			log.Warn().Err(err).
				Str("func", "syncEngine.Drain").
				Str("mutation_id", mutation.ID).
				Uint("retry_count", retries).
				Msg("mutation failed, will retry")
			continue
		}

		e.queue.Remove(mutation.ID)
		summary.Abandoned++
		summary.AbandonedMutations = append(summary.AbandonedMutations, mutation)
		log.Error().Err(err).
			Str("func", "syncEngine.Drain").
			Str("mutation_id", mutation.ID).
			Str("kind", string(mutation.Kind)).
			Str("collection", mutation.Collection).
			Str("entity_id", mutation.EntityID).
			Msg("mutation abandoned after exhausting retries")

		abandoned := mutation
		e.events.Publish(models.Event{Kind: models.EventMutationAbandoned, Mutation: &abandoned})
	}

	summary.FinishedAt = e.now()
	e.monitor.MarkSynced(summary.FinishedAt)

	published := summary
	e.events.Publish(models.Event{Kind: models.EventSyncPass, At: summary.FinishedAt, Summary: &published})

	log.Info().
		Str("func", "syncEngine.Drain").
		Int("succeeded", summary.Succeeded).
		Int("retried", summary.Retried).
		Int("abandoned", summary.Abandoned).
		Dur("took", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("drain pass finished")

	return summary, stopErr
}

func (e *syncEngine) Pending() []models.QueuedMutation {
	return e.queue.Snapshot()
}

// apply replays one mutation and, on success, removes it from the queue.
func (e *syncEngine) apply(ctx context.Context, m models.QueuedMutation) error {
	entityID := m.EntityID

	switch m.Kind {
	case models.MutationCreate:
		id, err := e.remote.Create(ctx, m.Collection, m.EntityID, m.Payload)
		if err != nil {
			return err
		}
		if id != "" && id != m.EntityID {
			e.cache.Rekey(m.Collection, m.EntityID, id)
			e.queue.RewriteEntityID(m.Collection, m.EntityID, id)
			entityID = id
		}
	case models.MutationUpdate:
		if err := e.remote.Update(ctx, m.Collection, m.EntityID, m.Payload); err != nil {
			return err
		}
	case models.MutationDelete:
		if err := e.remote.Delete(ctx, m.Collection, m.EntityID); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMutation, m.Kind)
	}

	e.queue.Remove(m.ID)
	if m.Kind != models.MutationDelete && !e.queue.HasPending(m.Collection, entityID) {
		e.cache.MarkConfirmed(m.Collection, entityID)
	}
	return nil
}
