// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dashboard HTTP handlers.
package app

const (
	// MsgInternalServerError replaces the message of errors that are not
	// load balancer failures, so internal details stay out of responses.
	MsgInternalServerError = "internal server error"
)
