// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other configuration source.
const (
	// DefaultBaseURL is the public resource service the client talks to.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultRequestTimeout bounds every outbound client request.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultServerAddress is where the fixture server listens.
	DefaultServerAddress = "localhost:8080"

	// DefaultServerRequestTimeout bounds reading and writing a single
	// request on the fixture server.
	DefaultServerRequestTimeout = 30 * time.Second

	// DefaultLogLevel is the minimum level of emitted log entries.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container for the
// go-resource-client application. It aggregates all sub-configurations and is
// populated by merging defaults, an optional JSON file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the settings of the outbound resource client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds network address and timeout settings for the fixture
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the fixture server persistence.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging settings shared by all binaries.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the outbound resource client. They are fixed
// once the client is constructed.
type Adapter struct {
	// BaseURL is the endpoint every request is resolved against
	// (e.g. "https://jsonplaceholder.typicode.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Headers are extra headers sent with every request, layered over the
	// JSON defaults. Format: "Name:value,Other:value".
	// Env: ADAPTER_HEADERS
	Headers map[string]string `env:"HEADERS"`
}

// Server holds network and timeout settings for the fixture server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading or writing
	// a single inbound request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the fixture server storage.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// SeedFile is an optional YAML or JSON document with users and posts
	// loaded into an empty store at startup.
	// Env: STORAGE_SEED_FILE
	SeedFile string `env:"SEED_FILE"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN selects and configures the backend: empty or "memory" keeps
	// everything in process memory, "postgres://..." uses PostgreSQL and
	// anything else is treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. flags holds values already
// parsed from the command line (nil when there are none); it has the
// highest priority.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
