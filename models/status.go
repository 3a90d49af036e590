package models

// AgentStatus is the operational snapshot the sync agent reports.
type AgentStatus struct {
	State             ConnectivityState `json:"state"`
	QueuedMutations   int               `json:"queued_mutations"`
	EstimatedSizeKB   uint              `json:"estimated_size_kb"`
	CachedCollections int               `json:"cached_collections"`
}
