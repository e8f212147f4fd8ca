// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exports Prometheus metrics about the load balancer fetches
// performed by the dashboard.
//
// [InstrumentAdapter] wraps an [adapter.LoadBalancerAdapter] so that every
// call is counted by outcome and timed. [NewRegistry] and [Handler] expose the
// result on a private registry, served at /metrics by the HTTP server.
package metrics
