// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-site-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedClockCache(at time.Time) *LocalCache {
	c := NewLocalCache()
	c.now = func() time.Time { return at }
	return c
}

// ── Write / Read ─────────────────────────────────────────────────────────────

func TestLocalCache_WriteThenRead(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newFixedClockCache(at)

	written := c.Write("tasks", "t1", models.Payload{"title": "Pour slab"}, true)

	got, ok := c.Read("tasks", "t1")
	require.True(t, ok)
	assert.Equal(t, written, got)
	assert.Equal(t, "tasks", got.Collection)
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, "Pour slab", got.Payload["title"])
	assert.Equal(t, at, got.CachedAt)
	assert.True(t, got.IsOfflineOrigin)
}

func TestLocalCache_LastWriteWins(t *testing.T) {
	c := NewLocalCache()

	c.Write("tasks", "t1", models.Payload{"title": "A"}, true)
	c.Write("tasks", "t1", models.Payload{"title": "B"}, false)

	got, ok := c.Read("tasks", "t1")
	require.True(t, ok)
	assert.Equal(t, "B", got.Payload["title"])
	assert.False(t, got.IsOfflineOrigin)
	assert.Len(t, c.ReadCollection("tasks"), 1)
}

func TestLocalCache_ReadMissing(t *testing.T) {
	c := NewLocalCache()

	_, ok := c.Read("tasks", "nope")
	assert.False(t, ok)

	all := c.ReadCollection("tasks")
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestLocalCache_PayloadIsolation(t *testing.T) {
	c := NewLocalCache()
	in := models.Payload{"title": "A"}

	c.Write("tasks", "t1", in, false)
	in["title"] = "mutated by caller"

	got, _ := c.Read("tasks", "t1")
	assert.Equal(t, "A", got.Payload["title"])

	got.Payload["title"] = "mutated by reader"
	again, _ := c.Read("tasks", "t1")
	assert.Equal(t, "A", again.Payload["title"])
}

func TestLocalCache_NilPayload(t *testing.T) {
	c := NewLocalCache()

	c.Write("tasks", "t1", nil, false)

	got, ok := c.Read("tasks", "t1")
	require.True(t, ok)
	assert.NotNil(t, got.Payload)
	assert.Empty(t, got.Payload)
}

// ── Delete / Clear ───────────────────────────────────────────────────────────

func TestLocalCache_Delete(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "t1", models.Payload{}, false)
	c.Write("tasks", "t2", models.Payload{}, false)

	c.Delete("tasks", "t1")
	c.Delete("tasks", "missing")
	c.Delete("unknown", "t1")

	_, ok := c.Read("tasks", "t1")
	assert.False(t, ok)
	_, ok = c.Read("tasks", "t2")
	assert.True(t, ok)
}

func TestLocalCache_DeleteLastEntryDropsCollection(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "t1", models.Payload{}, false)

	c.Delete("tasks", "t1")

	assert.Empty(t, c.Collections())
}

func TestLocalCache_ClearOneCollection(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "t1", models.Payload{}, false)
	c.Write("sites", "s1", models.Payload{}, false)

	c.Clear("tasks")

	assert.Empty(t, c.ReadCollection("tasks"))
	assert.Len(t, c.ReadCollection("sites"), 1)
}

func TestLocalCache_ClearAll(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "t1", models.Payload{}, false)
	c.Write("sites", "s1", models.Payload{}, false)

	c.ClearAll()

	assert.Empty(t, c.Collections())
	assert.Zero(t, c.SizeBytes())
}

// ── Rekey / MarkConfirmed ────────────────────────────────────────────────────

func TestLocalCache_Rekey(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "tmp", models.Payload{"title": "A"}, true)

	moved := c.Rekey("tasks", "tmp", "srv-1")

	assert.True(t, moved)
	_, ok := c.Read("tasks", "tmp")
	assert.False(t, ok)
	got, ok := c.Read("tasks", "srv-1")
	require.True(t, ok)
	assert.Equal(t, "srv-1", got.ID)
	assert.Equal(t, "A", got.Payload["title"])
	assert.True(t, got.IsOfflineOrigin)
}

func TestLocalCache_RekeyNoop(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "a", models.Payload{}, true)

	assert.False(t, c.Rekey("tasks", "a", "a"))
	assert.False(t, c.Rekey("tasks", "missing", "b"))
	assert.False(t, c.Rekey("sites", "a", "b"))
}

func TestLocalCache_MarkConfirmed(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "t1", models.Payload{}, true)

	c.MarkConfirmed("tasks", "t1")
	c.MarkConfirmed("tasks", "missing")

	got, _ := c.Read("tasks", "t1")
	assert.False(t, got.IsOfflineOrigin)
	_, ok := c.Read("tasks", "missing")
	assert.False(t, ok)
}

// ── SizeBytes ────────────────────────────────────────────────────────────────

func TestLocalCache_SizeBytesGrows(t *testing.T) {
	c := NewLocalCache()
	assert.Zero(t, c.SizeBytes())

	c.Write("tasks", "t1", models.Payload{"title": "A"}, false)
	small := c.SizeBytes()
	assert.Positive(t, small)

	c.Write("tasks", "t2", models.Payload{"title": "a much longer title than the first"}, false)
	assert.Greater(t, c.SizeBytes(), small)
}

func TestLocalCache_ConcurrentAccess(t *testing.T) {
	c := NewLocalCache()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Write("tasks", "t1", models.Payload{"n": 1}, false)
		}()
		go func() {
			defer wg.Done()
			c.ReadCollection("tasks")
			c.SizeBytes()
		}()
	}
	wg.Wait()

	assert.Len(t, c.ReadCollection("tasks"), 1)
}

// ── ReplaceConfirmed ─────────────────────────────────────────────────────────

func TestLocalCache_GenerationAdvancesOnEveryChange(t *testing.T) {
	c := NewLocalCache()
	assert.Zero(t, c.Generation())

	c.Write("tasks", "a", nil, false)
	g1 := c.Generation()
	c.MarkConfirmed("tasks", "a")
	g2 := c.Generation()
	c.Delete("tasks", "missing")
	g3 := c.Generation()
	c.Clear("notes")
	g4 := c.Generation()

	assert.Less(t, uint64(0), g1)
	assert.Less(t, g1, g2)
	assert.Less(t, g2, g3)
	assert.Less(t, g3, g4)
}

func TestLocalCache_ReplaceConfirmed(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "stale", models.Payload{"title": "old"}, false)
	c.Write("tasks", "gone", models.Payload{"title": "deleted remotely"}, false)
	c.Write("tasks", "local", models.Payload{"title": "not synced"}, true)
	c.Write("tasks", "pending", models.Payload{"title": "queued"}, false)

	applied := c.ReplaceConfirmed("tasks", []models.Entity{
		{Collection: "tasks", ID: "stale", Payload: models.Payload{"title": "new"}},
		{Collection: "tasks", ID: "local", Payload: models.Payload{"title": "remote"}},
		{Collection: "tasks", ID: "fresh", Payload: models.Payload{"title": "F"}},
	}, c.Generation(), func(id string) bool { return id == "pending" })

	require.True(t, applied)
	got := c.ReadCollection("tasks")
	assert.Len(t, got, 4)
	assert.Equal(t, "new", got["stale"].Payload["title"])
	assert.Equal(t, "not synced", got["local"].Payload["title"])
	assert.True(t, got["local"].IsOfflineOrigin)
	assert.Equal(t, "queued", got["pending"].Payload["title"])
	assert.Equal(t, "F", got["fresh"].Payload["title"])
	assert.False(t, got["fresh"].IsOfflineOrigin)
	assert.NotContains(t, got, "gone")
}

func TestLocalCache_ReplaceConfirmedSkipsLaterLocalChanges(t *testing.T) {
	c := NewLocalCache()
	c.Write("tasks", "updated", models.Payload{"x": 1}, false)
	c.Write("tasks", "removed", models.Payload{"x": 1}, false)
	since := c.Generation()

	c.Write("tasks", "updated", models.Payload{"x": 2}, false)
	c.Write("tasks", "created", models.Payload{"x": 3}, false)
	c.Delete("tasks", "removed")

	applied := c.ReplaceConfirmed("tasks", []models.Entity{
		{Collection: "tasks", ID: "updated", Payload: models.Payload{"x": 1}},
		{Collection: "tasks", ID: "removed", Payload: models.Payload{"x": 1}},
	}, since, nil)

	require.True(t, applied)
	got := c.ReadCollection("tasks")
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got["updated"].Payload["x"])
	assert.Equal(t, 3, got["created"].Payload["x"])
	assert.NotContains(t, got, "removed")
}

func TestLocalCache_ReplaceConfirmedAfterClear(t *testing.T) {
	tests := []struct {
		name  string
		clear func(c *LocalCache)
	}{
		{name: "collection", clear: func(c *LocalCache) { c.Clear("tasks") }},
		{name: "everything", clear: func(c *LocalCache) { c.ClearAll() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLocalCache()
			c.Write("tasks", "a", models.Payload{"x": 1}, false)
			since := c.Generation()
			tt.clear(c)

			applied := c.ReplaceConfirmed("tasks", []models.Entity{
				{Collection: "tasks", ID: "a", Payload: models.Payload{"x": 1}},
			}, since, nil)

			assert.False(t, applied)
			assert.Empty(t, c.ReadCollection("tasks"))
		})
	}
}
