package models

import (
	"maps"
	"time"
)

// Payload is the schemaless body of an entity as features see it.
type Payload = map[string]any

// Entity is a document addressed by collection and id.
type Entity struct {
	Collection string  `json:"collection"`
	ID         string  `json:"id"`
	Payload    Payload `json:"payload"`
}

// CachedEntity is the latest known snapshot of an entity held by the local
// cache. Only the most recent write for a (Collection, ID) pair is kept.
type CachedEntity struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	Payload    Payload   `json:"payload"`
	CachedAt   time.Time `json:"cached_at"`

	// IsOfflineOrigin is true while the snapshot comes from a local mutation
	// the remote store has not confirmed yet.
	IsOfflineOrigin bool `json:"is_offline_origin"`
}

// Entity converts the snapshot to the feature-facing representation.
func (c CachedEntity) Entity() Entity {
	return Entity{
		Collection: c.Collection,
		ID:         c.ID,
		Payload:    ClonePayload(c.Payload),
	}
}

// ClonePayload returns a shallow copy of p. A nil payload yields an empty,
// non-nil map so callers can write into the result.
func ClonePayload(p Payload) Payload {
	if p == nil {
		return Payload{}
	}
	return maps.Clone(p)
}
