// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned when there are no HTTP handlers or
	// no listen address, so the serve command has nothing to run.
	errNoServersAreCreated = errors.New("no dashboard server is created")
)
