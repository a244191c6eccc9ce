// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-mail-sync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the account list the daemon synchronizes.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds configuration for the local replica database.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Adapter holds configuration for the remote events API client.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter"`

	// Control holds settings of the local control API the daemon exposes.
	Control Control `envPrefix:"CONTROL_" json:"control"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_" json:"workers"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`

	// Accounts lists the account ids the daemon keeps synchronized, in the
	// order they are processed. Accounts are always synced sequentially.
	// Env: APP_ACCOUNTS (comma-separated)
	Accounts []string `env:"ACCOUNTS" json:"accounts"`
}

// Storage groups the configuration for the local replica.
type Storage struct {
	// DB holds the replica database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB holds connection settings for the replica database.
type DB struct {
	// DSN is the SQLite path or DSN of the local replica
	// (e.g. "mailsync.db" or "file:mailsync.db?cache=shared").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Adapter holds configuration for the outbound events API client.
type Adapter struct {
	// BaseURL is the root URL of the remote mail service
	// (e.g. "https://mail.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// RequestsPerSecond caps the rate of outbound feed and message-fetch
	// calls. Zero disables the limiter.
	// Env: ADAPTER_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND" json:"requests_per_second"`

	// Tokens maps account ids to their bearer tokens for the remote API.
	// Env: ADAPTER_TOKENS (comma-separated account:token pairs)
	Tokens map[string]string `env:"TOKENS" json:"tokens"`
}

// Control holds settings of the local control API.
type Control struct {
	// HTTPAddress is the TCP address on which the control API listens,
	// in "host:port" format (e.g. "localhost:8489").
	// Env: CONTROL_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"address"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the periodic sync worker runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL" json:"sync_interval"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
