package models

import "time"

// SyncSummary describes one completed drain pass.
type SyncSummary struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Succeeded counts mutations confirmed by the remote store and removed
	// from the queue.
	Succeeded int `json:"succeeded"`
	// Retried counts mutations that failed and stay queued with an
	// incremented retry counter.
	Retried int `json:"retried"`
	// Abandoned counts mutations dropped after exhausting their retries.
	Abandoned int `json:"abandoned"`

	AbandonedMutations []QueuedMutation `json:"abandoned_mutations,omitempty"`
}

// Attempted returns the number of mutations the pass tried to apply.
func (s SyncSummary) Attempted() int {
	return s.Succeeded + s.Retried + s.Abandoned
}
