package config

import "time"

const (
	DefaultSyncInterval   = 30 * time.Second
	DefaultProbeInterval  = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRetries     = 3

	DefaultAgentAddress  = "localhost:8081"
	DefaultServerAddress = "localhost:8080"
	DefaultDBDriver      = DriverSQLite
	DefaultDBDSN         = "site-sync.db"
	DefaultLogLevel      = "debug"
)

// Supported document store backends.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverRedis    = "redis"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Adapter.ProbeInterval == 0 {
		cfg.Adapter.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Agent.HTTPAddress == "" {
		cfg.Agent.HTTPAddress = DefaultAgentAddress
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = DefaultDBDSN
	}
}
