// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync agent and the reference document store. It is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: version, log level, schema directory.
	App App `envPrefix:"APP_"`

	// Storage holds the document store persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the document store's HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the agent's connection settings for the remote store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds mutation replay settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Agent holds the agent's local facade API settings.
	Agent Agent `envPrefix:"AGENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SchemaDir is a directory of <collection>.json JSON Schema files used to
	// validate document payloads. Empty disables validation.
	// Env: APP_SCHEMA_DIR
	SchemaDir string `env:"SCHEMA_DIR"`
}

// Storage groups the document store persistence settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds SQL backend settings.
type DB struct {
	// Driver selects the backend: "sqlite3", "pgx" or "redis".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string (a file path for sqlite3).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds Redis backend settings, used when DB.Driver is "redis".
type Redis struct {
	// URL is a redis:// connection URL.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Server holds the document store's network settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the agent's remote store client settings.
type Adapter struct {
	// HTTPAddress is the remote store base address.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeInterval is how often device reachability is polled.
	// Env: ADAPTER_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Workers holds background worker settings.
type Workers struct {
	// SyncInterval is the period of the automatic drain.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Sync holds mutation replay settings.
type Sync struct {
	// MaxRetries is how many failed replays a queued mutation survives
	// before it is abandoned.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// Agent holds the local facade API settings.
type Agent struct {
	// HTTPAddress is the listen address of the agent API.
	// Env: AGENT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to whatever is still unset after the merge.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
}
