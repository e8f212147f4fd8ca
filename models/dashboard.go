// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Dashboard is the outcome of one combined load of the config and info
// documents.
//
// The two fetches are independent: a failure of one is recorded in its error
// field and does not discard the other document.
type Dashboard struct {
	// Config is the enriched configuration, nil when ConfigErr is set.
	Config *Config

	// Info is the runtime status document, nil when InfoErr is set.
	Info Info

	ConfigErr error
	InfoErr   error

	// FetchedAt is the time the load completed.
	FetchedAt time.Time
}

// Err returns the first fetch error, config before info.
func (d Dashboard) Err() error {
	if d.ConfigErr != nil {
		return d.ConfigErr
	}
	return d.InfoErr
}
