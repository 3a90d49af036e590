package store

import (
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/utils"
)

// ClientStorages groups the agent's in-memory stores so they can be passed
// to the service layer as one value.
type ClientStorages struct {
	// Cache holds the latest snapshot per collection and id.
	Cache *LocalCache

	// Queue holds writes waiting for the remote store.
	Queue *MutationQueue
}

// NewClientStorages builds empty stores. Nothing is persisted across restarts.
func NewClientStorages(ids utils.IDGenerator, logger *logger.Logger) *ClientStorages {
	logger.Info().Str("func", "NewClientStorages").Msg("creating in-memory cache and mutation queue")

	return &ClientStorages{
		Cache: NewLocalCache(),
		Queue: NewMutationQueue(ids),
	}
}
