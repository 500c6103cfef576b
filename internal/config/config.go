// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/afero"
)

// StructuredConfig is the top-level configuration container for the
// go-cloud-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account and cache secrets.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the local folder mirrored by the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AccountHandle is the Base64 handle of the local account. Removals of
	// nodes owned by anyone else raise alerts.
	// Env: APP_ACCOUNT_HANDLE
	AccountHandle string `env:"ACCOUNT_HANDLE"`

	// CacheSecret is the secret the local cache key is derived from. Must be
	// kept confidential.
	// Env: APP_CACHE_SECRET
	CacheSecret string `env:"CACHE_SECRET"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path of the SQLite database file (e.g. "cache.db"). The file
	// is created if it does not exist.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds the settings of the local sync.
type Sync struct {
	// LocalRoot is the local folder to mirror. Empty disables the sync.
	// Env: SYNC_LOCAL_ROOT
	LocalRoot string `env:"LOCAL_ROOT"`

	// Watch keeps the client running and rescans LocalRoot on every change
	// until interrupted.
	// Env: SYNC_WATCH
	Watch bool `env:"WATCH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// FlushInterval is how often pending state cache changes are written.
	// Zero selects the flusher's default of 30s.
	// Env: WORKERS_FLUSH_INTERVAL
	FlushInterval time.Duration `env:"FLUSH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(afero.NewOsFs()).
		withEnv().
		withFlags().
		withJSON().
		build()
}
