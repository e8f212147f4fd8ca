// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the load
// balancer control API.
//
// The primary abstraction is [LoadBalancerAdapter], which decouples the
// service layer from the wire protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPLoadBalancerAdapter]).
//
// Every failure is reported as either a [*FetchError] (transport failure or
// non-2xx status) or a [*ParseError] (body is not the expected JSON), so that
// callers can use [errors.Is] with [ErrFetch] / [ErrParse] or [errors.As] to
// inspect the details.
package adapter

import (
	"context"

	"github.com/MKhiriev/lb-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/lb_adapter_mock.go -package=mock

// LoadBalancerAdapter defines read-only access to the load balancer control
// API. Implementations must honour ctx cancellation and must not retry.
type LoadBalancerAdapter interface {
	// GetConfig fetches GET /v1/config and decodes it into a [models.Config].
	// The returned config is not enriched.
	GetConfig(ctx context.Context) (models.Config, error)

	// GetInfo fetches GET /v1/info and returns the runtime status document
	// as received.
	GetInfo(ctx context.Context) (models.Info, error)
}
