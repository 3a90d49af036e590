package models

import "time"

// MutationKind is the write intent carried by a queued mutation.
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// Valid reports whether k is one of the known kinds.
func (k MutationKind) Valid() bool {
	switch k {
	case MutationCreate, MutationUpdate, MutationDelete:
		return true
	}
	return false
}

// QueuedMutation is a write that could not reach the remote store and waits
// in the mutation queue for the next drain pass.
type QueuedMutation struct {
	// ID is a time-ordered UUIDv7, unique per enqueue.
	ID         string       `json:"id"`
	Kind       MutationKind `json:"kind"`
	Collection string       `json:"collection"`

	// EntityID identifies the target document. For creates it is the
	// temporary id the entity was cached under.
	EntityID   string    `json:"entity_id"`
	Payload    Payload   `json:"payload,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount is incremented on every failed replay.
	RetryCount uint `json:"retry_count"`
}
