// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/lb-dashboard/models"
)

// Enrich returns a copy of cfg in which every frontend whose default backend
// names a backend of cfg points at that backend record.
//
// Frontends are cloned, the input is left untouched. The returned Backends
// slice is a new slice holding the same *Backend records as cfg.Backends, and
// resolved references point at those records. When several backends share a
// name the one appearing last wins. A name without a match stays unresolved,
// and a frontend without a default backend is left as it is.
//
// Already resolved references are matched again by name, so applying Enrich
// to its own output yields an equal config.
func Enrich(cfg models.Config) models.Config {
	byName := make(map[string]int, len(cfg.Backends))
	for i, be := range cfg.Backends {
		byName[be.Name] = i
	}

	out := models.Config{
		Frontends: make([]*models.Frontend, len(cfg.Frontends)),
		Backends:  slices.Clone(cfg.Backends),
	}

	for i, fe := range cfg.Frontends {
		cp := fe.Clone()
		if !fe.HasDefaultBackend() {
			out.Frontends[i] = cp
			continue
		}
		ref := models.BackendRef{Name: fe.DefaultBackend.Name}
		if idx, ok := byName[ref.Name]; ok {
			ref.Backend = out.Backends[idx]
		}
		cp.DefaultBackend = ref
		out.Frontends[i] = cp
	}

	return out
}
