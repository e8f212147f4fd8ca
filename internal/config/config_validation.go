// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	switch cfg.Command {
	case CommandTUI:
	case CommandServe:
		if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
			return ErrInvalidServerConfigs
		}
	case CommandDump:
		switch cfg.Report.Format {
		case FormatTable, FormatJSON, FormatYAML:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, cfg.Report.Format)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cfg.Command)
	}

	return nil
}
