// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-carddav-sync client. It aggregates all sub-configurations and is
// populated by merging built-in defaults with values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the conflict policy and
	// the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local contact cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the address-book collection URL, credentials and the
	// transport tuning of the WebDAV session.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ConflictResolution names the policy applied when a remote contact
	// changed since it was last synced: fail, use-newer, keep-server,
	// keep-local or write-copy.
	// Env: APP_CONFLICT_RESOLUTION
	ConflictResolution string `env:"CONFLICT_RESOLUTION"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Command is the positional arguments left after the flags, e.g.
	// "sync" or "import a.vcf b.vcf". Only set from the command line.
	Command []string
}

// Storage groups the configuration for the local cache.
type Storage struct {
	// DB holds the SQLite cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite contact cache.
type DB struct {
	// DSN is the path of the SQLite database file (e.g. "contacts.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the WebDAV session.
type Adapter struct {
	// CollectionURL is the absolute URL of the address-book collection.
	// Env: ADAPTER_COLLECTION_URL
	CollectionURL string `env:"COLLECTION_URL"`

	// Username is the basic-auth user name.
	// Env: ADAPTER_USERNAME
	Username string `env:"USERNAME"`

	// Password is the basic-auth password.
	// Env: ADAPTER_PASSWORD
	Password string `env:"PASSWORD"`

	// RequestTimeout is the maximum duration of a single request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestRate limits outgoing requests per second. Zero disables the
	// limiter.
	// Env: ADAPTER_REQUEST_RATE
	RequestRate float64 `env:"REQUEST_RATE"`

	// RequestBurst is the burst size of the request limiter.
	// Env: ADAPTER_REQUEST_BURST
	RequestBurst int `env:"REQUEST_BURST"`

	// Debug logs request and response bodies.
	// Env: ADAPTER_DEBUG
	Debug bool `env:"DEBUG"`

	// InsecureSkipVerify disables TLS certificate verification.
	// Env: ADAPTER_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period between two sync passes.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
