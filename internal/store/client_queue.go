package store

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/models"
)

// MutationQueue is the in-memory FIFO of writes waiting for the remote store.
// Order is global across collections. All methods are safe for concurrent use.
type MutationQueue struct {
	mu    sync.Mutex
	items []models.QueuedMutation
	ids   utils.IDGenerator
	now   func() time.Time
}

// NewMutationQueue returns an empty queue that stamps mutations with ids from
// ids.
func NewMutationQueue(ids utils.IDGenerator) *MutationQueue {
	return &MutationQueue{
		items: make([]models.QueuedMutation, 0, 16),
		ids:   ids,
		now:   time.Now,
	}
}

// Enqueue appends a mutation to the tail with a zero retry count.
func (q *MutationQueue) Enqueue(kind models.MutationKind, collection, entityID string, payload models.Payload) models.QueuedMutation {
	m := models.QueuedMutation{
		ID:         q.ids.Generate(),
		Kind:       kind,
		Collection: collection,
		EntityID:   entityID,
		EnqueuedAt: q.now(),
	}
	if payload != nil {
		m.Payload = models.ClonePayload(payload)
	}

	q.mu.Lock()
	q.items = append(q.items, m)
	q.mu.Unlock()

	return cloneMutation(m)
}

// Snapshot returns a copy of the queue in FIFO order.
func (q *MutationQueue) Snapshot() []models.QueuedMutation {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.QueuedMutation, len(q.items))
	for i, m := range q.items {
		out[i] = cloneMutation(m)
	}
	return out
}

// Remove drops the mutation with the given id and reports whether it was
// present.
func (q *MutationQueue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return false
	}
	q.items = slices.Delete(q.items, i, i+1)
	return true
}

// IncrementRetry bumps the retry count of the mutation with the given id and
// returns the new value.
func (q *MutationQueue) IncrementRetry(id string) (uint, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return 0, false
	}
	q.items[i].RetryCount++
	return q.items[i].RetryCount, true
}

// Get returns the current state of the mutation with the given id.
func (q *MutationQueue) Get(id string) (models.QueuedMutation, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return models.QueuedMutation{}, false
	}
	return cloneMutation(q.items[i]), true
}

func (q *MutationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

func (q *MutationQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = q.items[:0]
}

// HasPending reports whether any queued mutation targets (collection, entityID).
func (q *MutationQueue) HasPending(collection, entityID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, m := range q.items {
		if m.Collection == collection && m.EntityID == entityID {
			return true
		}
	}
	return false
}

// RewriteEntityID retargets queued mutations of (collection, oldID) to newID
// and returns how many were changed.
func (q *MutationQueue) RewriteEntityID(collection, oldID, newID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for i := range q.items {
		if q.items[i].Collection == collection && q.items[i].EntityID == oldID {
			q.items[i].EntityID = newID
			n++
		}
	}
	return n
}

// SizeBytes estimates the memory held by the queue as the length of its JSON
// encoding.
func (q *MutationQueue) SizeBytes() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	total := 0
	for _, m := range q.items {
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		total += len(data)
	}
	return total
}

// indexOf must be called with q.mu held.
func (q *MutationQueue) indexOf(id string) int {
	return slices.IndexFunc(q.items, func(m models.QueuedMutation) bool {
		return m.ID == id
	})
}

func cloneMutation(m models.QueuedMutation) models.QueuedMutation {
	if m.Payload != nil {
		m.Payload = models.ClonePayload(m.Payload)
	}
	return m
}
