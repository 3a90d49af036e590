// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventKind discriminates the payload of an [Event].
type EventKind string

const (
	// EventConnectivity is published on every connectivity state mutation.
	// State is set.
	EventConnectivity EventKind = "connectivity"

	// EventSyncPass is published after every drain pass that actually ran.
	// Summary is set.
	EventSyncPass EventKind = "sync_pass"

	// EventMutationAbandoned is published once per mutation dropped after
	// exhausting its retries. Mutation is set.
	EventMutationAbandoned EventKind = "mutation_abandoned"

	// EventCollectionRefreshed is published when a background list refresh
	// brought fresh remote data into the cache. Collection and Entities are
	// set.
	EventCollectionRefreshed EventKind = "collection_refreshed"
)

// Event is the structured notification delivered to observers. Consumers
// decide how to surface it (toasts, banners, logs).
type Event struct {
	Kind EventKind `json:"kind"`
	At   time.Time `json:"at"`

	State      *ConnectivityState `json:"state,omitempty"`
	Summary    *SyncSummary       `json:"summary,omitempty"`
	Mutation   *QueuedMutation    `json:"mutation,omitempty"`
	Collection string             `json:"collection,omitempty"`
	Entities   []Entity           `json:"entities,omitempty"`
}
