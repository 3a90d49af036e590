package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/migrations"
)

// DB wraps a database/sql pool together with the driver name and the
// classifier used to tell transient failures from permanent ones.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection's driver.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.driver); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.driver, err)
	}
	return nil
}

// wrapErr attaches ErrStoreUnavailable to err when the classifier deems it
// retryable.
func (db *DB) wrapErr(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
