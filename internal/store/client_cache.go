// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/MKhiriev/go-site-sync/models"
)

// LocalCache holds the latest known snapshot of every entity the agent has
// seen, keyed by collection and id. It lives only as long as the process.
//
// All methods are safe for concurrent use. Payloads are copied on the way in
// and on the way out so callers never share maps with the cache.
//
// Every local change advances a generation counter. The generation of the
// last change is remembered per key, deletions included, so a refresh can
// tell which entries changed after it started.
type LocalCache struct {
	mu          sync.RWMutex
	collections map[string]map[string]models.CachedEntity
	now         func() time.Time

	gen        uint64
	touched    map[string]map[string]uint64
	cleared    map[string]uint64
	clearedAll uint64
}

// NewLocalCache returns an empty cache.
func NewLocalCache() *LocalCache {
	return &LocalCache{
		collections: make(map[string]map[string]models.CachedEntity),
		now:         time.Now,
		touched:     make(map[string]map[string]uint64),
		cleared:     make(map[string]uint64),
	}
}

// Generation returns the generation of the latest local change.
func (c *LocalCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.gen
}

// touch records a change of (collection, id). c.mu must be held.
func (c *LocalCache) touch(collection, id string) {
	c.gen++
	ids, ok := c.touched[collection]
	if !ok {
		ids = make(map[string]uint64)
		c.touched[collection] = ids
	}
	ids[id] = c.gen
}

// Write stores payload as the current snapshot of (collection, id), replacing
// any previous one, and returns the stored entry.
func (c *LocalCache) Write(collection, id string, payload models.Payload, isOfflineOrigin bool) models.CachedEntity {
	entry := models.CachedEntity{
		Collection:      collection,
		ID:              id,
		Payload:         models.ClonePayload(payload),
		CachedAt:        c.now(),
		IsOfflineOrigin: isOfflineOrigin,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.touch(collection, id)
	c.put(entry)

	return cloneEntry(entry)
}

func (c *LocalCache) put(entry models.CachedEntity) {
	entities, ok := c.collections[entry.Collection]
	if !ok {
		entities = make(map[string]models.CachedEntity)
		c.collections[entry.Collection] = entities
	}
	entities[entry.ID] = entry
}

// Read returns the snapshot of (collection, id).
func (c *LocalCache) Read(collection, id string) (models.CachedEntity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.collections[collection][id]
	if !ok {
		return models.CachedEntity{}, false
	}
	return cloneEntry(entry), true
}

// ReadCollection returns every snapshot of collection keyed by id. The map is
// empty, never nil, when the collection has no entries.
func (c *LocalCache) ReadCollection(collection string) map[string]models.CachedEntity {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entities := c.collections[collection]
	out := make(map[string]models.CachedEntity, len(entities))
	for id, entry := range entities {
		out[id] = cloneEntry(entry)
	}
	return out
}

// Delete drops (collection, id). Missing entries are ignored.
func (c *LocalCache) Delete(collection, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touch(collection, id)

	entities, ok := c.collections[collection]
	if !ok {
		return
	}
	delete(entities, id)
	if len(entities) == 0 {
		delete(c.collections, collection)
	}
}

// Rekey moves the snapshot stored under oldID to newID. It reports whether an
// entry was moved.
func (c *LocalCache) Rekey(collection, oldID, newID string) bool {
	if oldID == newID {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entities, ok := c.collections[collection]
	if !ok {
		return false
	}
	entry, ok := entities[oldID]
	if !ok {
		return false
	}

	c.touch(collection, oldID)
	c.touch(collection, newID)

	delete(entities, oldID)
	entry.ID = newID
	entities[newID] = entry
	return true
}

// MarkConfirmed clears the offline-origin flag of (collection, id).
func (c *LocalCache) MarkConfirmed(collection, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.collections[collection][id]
	if !ok {
		return
	}
	c.touch(collection, id)
	entry.IsOfflineOrigin = false
	c.collections[collection][id] = entry
}

// Clear drops every entry of collection.
func (c *LocalCache) Clear(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.cleared[collection] = c.gen
	delete(c.collections, collection)
	delete(c.touched, collection)
}

// ClearAll empties the cache.
func (c *LocalCache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.clearedAll = c.gen
	c.collections = make(map[string]map[string]models.CachedEntity)
	c.touched = make(map[string]map[string]uint64)
	c.cleared = make(map[string]uint64)
}

// ReplaceConfirmed reconciles the confirmed entries of collection with the
// remote set fresh. Entries missing from fresh are dropped and the others are
// overwritten, except offline-origin entries, ids for which keep returns true
// and keys changed locally after generation since. Nothing is applied when
// the collection was cleared after since. It reports whether fresh was
// applied.
func (c *LocalCache) ReplaceConfirmed(collection string, fresh []models.Entity, since uint64, keep func(id string) bool) bool {
	at := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clearedAll > since || c.cleared[collection] > since {
		return false
	}

	touched := c.touched[collection]
	skip := func(id string) bool {
		if touched[id] > since {
			return true
		}
		if entry, ok := c.collections[collection][id]; ok && entry.IsOfflineOrigin {
			return true
		}
		return keep != nil && keep(id)
	}

	inFresh := make(map[string]struct{}, len(fresh))
	for _, e := range fresh {
		inFresh[e.ID] = struct{}{}
	}

	if entities, ok := c.collections[collection]; ok {
		for id := range entities {
			if _, ok := inFresh[id]; ok || skip(id) {
				continue
			}
			delete(entities, id)
		}
		if len(entities) == 0 {
			delete(c.collections, collection)
		}
	}

	for _, e := range fresh {
		if skip(e.ID) {
			continue
		}
		c.put(models.CachedEntity{
			Collection: collection,
			ID:         e.ID,
			Payload:    models.ClonePayload(e.Payload),
			CachedAt:   at,
		})
	}
	return true
}

// Collections returns the names of all non-empty collections.
func (c *LocalCache) Collections() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.collections))
	for name := range c.collections {
		names = append(names, name)
	}
	return names
}

// SizeBytes estimates the memory held by the cache as the length of its JSON
// encoding. Entries that cannot be encoded are skipped.
func (c *LocalCache) SizeBytes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, entities := range c.collections {
		for _, entry := range entities {
			data, err := json.Marshal(entry)
			if err != nil {
				continue
			}
			total += len(data)
		}
	}
	return total
}

func cloneEntry(entry models.CachedEntity) models.CachedEntity {
	entry.Payload = models.ClonePayload(entry.Payload)
	return entry
}
