// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders a loaded dashboard for the dump command.
//
// The same [Document] is the body of GET /api/dashboard, so the dump output
// in json format and the HTTP API agree field for field.
package report
