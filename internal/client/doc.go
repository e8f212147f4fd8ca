// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the lbdash application runtime.
//
// It wires the load balancer adapter, services and one of the three
// presentation layers (terminal UI, HTTP API, one-shot dump) into a single
// process lifecycle chosen by the command line.
package client
