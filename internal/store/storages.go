package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
)

// Storages groups the repositories of the reference document store.
type Storages struct {
	DocumentRepository DocumentRepository
}

// NewStorages connects the backend selected by cfg.DB.Driver, migrating SQL
// schemas on the way.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverRedis:
		repo, err := NewRedisDocumentRepository(ctx, cfg.Redis.URL, log)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return &Storages{DocumentRepository: repo}, nil
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DocumentRepository: NewDocumentRepository(db, log),
	}, nil
}
