// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Shape errors returned while decoding load balancer documents. The adapter
// wraps them into a parse error, so callers normally only see them through
// [errors.Is].
var (
	// ErrMissingFrontends is returned when a config document has no
	// "frontends" array.
	ErrMissingFrontends = errors.New(`config document has no "frontends" array`)

	// ErrMissingBackends is returned when a config document has no
	// "backends" array.
	ErrMissingBackends = errors.New(`config document has no "backends" array`)

	// ErrNullEntry is returned when a frontends/backends array holds null.
	ErrNullEntry = errors.New("null entry")

	// ErrNotAnObject is returned when a frontend, backend or info document is
	// not a JSON object.
	ErrNotAnObject = errors.New("not a JSON object")

	// ErrInvalidName is returned when a "name" field is not a string.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidBackendRef is returned when "defaultBackend" is neither a
	// backend name nor a backend object.
	ErrInvalidBackendRef = errors.New(`"defaultBackend" must be a string or a backend object`)
)
