// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Commands accepted on the command line.
const (
	CommandTUI   = "tui"
	CommandServe = "serve"
	CommandDump  = "dump"
)

// Output formats of the dump command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// StructuredConfig is the top-level configuration container for the
// lb-dashboard application. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the address and timeout used to reach the load balancer
	// control API.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Server holds network address and timeout settings for the dashboard
	// HTTP API (serve command).
	Server Server `envPrefix:"SERVER_"`
	// Workers holds settings of periodic background work.
	Workers Workers `envPrefix:"WORKERS_"`
	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`
	// Report holds settings of the dump command.
	Report Report `envPrefix:"REPORT_"`
	// JSONFilePath is the optional path to a configuration file. Files with
	// a .yaml or .yml extension are read as YAML, everything else as JSON.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
	// Command is the sub-command selected on the command line.
	Command string
}

// Adapter holds settings of the outbound connection to the load balancer.
type Adapter struct {
	// HTTPAddress is the base URL of the load balancer control API
	// (e.g. "http://localhost:10001"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout bounds a single fetch (e.g. "5s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// UserAgent is sent with every fetch. It is filled from the build
	// version, not from the environment.
	UserAgent string
}

// Server holds network and timeout settings for the dashboard HTTP API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for periodic background work.
type Workers struct {
	// RefreshInterval makes the TUI reload the dashboard periodically.
	// Zero disables auto refresh.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Report holds settings of the dump command.
type Report struct {
	// Format is one of "table", "json", "yaml".
	// Env: REPORT_FORMAT
	Format string `env:"FORMAT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. Configuration file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:10001",
			RequestTimeout: 5 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Log:     Log{Level: "info"},
		Report:  Report{Format: FormatTable},
		Command: CommandTUI,
	}
}
