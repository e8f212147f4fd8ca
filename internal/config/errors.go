package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid load balancer adapter
	// settings (for example, missing address or non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid dashboard API settings
	// required by the serve command.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnknownOutputFormat indicates a dump format other than table, json
	// or yaml.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrUnknownCommand indicates a command other than tui, serve or dump.
	ErrUnknownCommand = errors.New("unknown command")
)
