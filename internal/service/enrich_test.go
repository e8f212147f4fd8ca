// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/lb-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, body string) models.Config {
	t.Helper()
	var cfg models.Config
	require.NoError(t, json.Unmarshal([]byte(body), &cfg))
	return cfg
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

// ── Worked examples ─────────────────────────────────────────────────────────

func TestEnrich_ResolvesMatchingBackend(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [{"defaultBackend": "b1"}],
		"backends": [{"name": "b1", "port": 80}, {"name": "b2", "port": 81}]
	}`)

	got := Enrich(cfg)

	ref := got.Frontends[0].DefaultBackend
	require.True(t, ref.Resolved())
	assert.JSONEq(t, `{"name": "b1", "port": 80}`, mustJSON(t, ref))
}

func TestEnrich_UnmatchedNameStaysString(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [{"defaultBackend": "missing"}],
		"backends": [{"name": "b1"}]
	}`)

	got := Enrich(cfg)

	ref := got.Frontends[0].DefaultBackend
	assert.False(t, ref.Resolved())
	assert.Equal(t, "missing", ref.Name)
	assert.JSONEq(t, `"missing"`, mustJSON(t, ref))
}

// ── Properties ──────────────────────────────────────────────────────────────

func TestEnrich_PreservesLengthsAndOrder(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [
			{"name": "f1", "defaultBackend": "b2"},
			{"name": "f2", "defaultBackend": "nope"},
			{"name": "f3", "defaultBackend": "b1"}
		],
		"backends": [{"name": "b1"}, {"name": "b2"}]
	}`)

	got := Enrich(cfg)

	require.Len(t, got.Frontends, 3)
	require.Len(t, got.Backends, 2)
	for i, fe := range got.Frontends {
		assert.Equal(t, cfg.Frontends[i].Name, fe.Name)
	}
	for i, be := range got.Backends {
		assert.Same(t, cfg.Backends[i], be)
	}
}

func TestEnrich_ReferencePointsAtReturnedBackend(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [{"defaultBackend": "b2"}],
		"backends": [{"name": "b1"}, {"name": "b2"}]
	}`)

	got := Enrich(cfg)

	assert.Same(t, got.Backends[1], got.Frontends[0].DefaultBackend.Backend)
}

func TestEnrich_DuplicateNamesLastWins(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [{"defaultBackend": "dup"}],
		"backends": [
			{"name": "dup", "port": 1},
			{"name": "other"},
			{"name": "dup", "port": 2}
		]
	}`)

	got := Enrich(cfg)

	assert.Same(t, got.Backends[2], got.Frontends[0].DefaultBackend.Backend)
	assert.JSONEq(t, `{"name": "dup", "port": 2}`, mustJSON(t, got.Frontends[0].DefaultBackend))
}

func TestEnrich_Idempotent(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [
			{"name": "f1", "defaultBackend": "b1"},
			{"name": "f2", "defaultBackend": "missing"}
		],
		"backends": [{"name": "b1", "port": 80}]
	}`)

	once := Enrich(cfg)
	twice := Enrich(once)

	assert.Equal(t, once, twice)
	assert.JSONEq(t, mustJSON(t, once), mustJSON(t, twice))
}

func TestEnrich_DoesNotModifyInput(t *testing.T) {
	body := `{
		"frontends": [{"name": "f1", "mode": "http", "defaultBackend": "b1"}],
		"backends": [{"name": "b1"}]
	}`
	cfg := mustConfig(t, body)

	_ = Enrich(cfg)

	assert.False(t, cfg.Frontends[0].DefaultBackend.Resolved())
	assert.JSONEq(t, body, mustJSON(t, cfg))
}

func TestEnrich_KeepsFrontendFields(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [{"name": "f1", "mode": "tcp", "bindPort": 443, "defaultBackend": "b1"}],
		"backends": [{"name": "b1"}]
	}`)

	got := Enrich(cfg)

	assert.JSONEq(t,
		`{"name": "f1", "mode": "tcp", "bindPort": 443, "defaultBackend": {"name": "b1"}}`,
		mustJSON(t, got.Frontends[0]))
}

func TestEnrich_EmptyConfig(t *testing.T) {
	got := Enrich(mustConfig(t, `{"frontends": [], "backends": []}`))

	assert.Empty(t, got.Frontends)
	assert.Empty(t, got.Backends)
	assert.JSONEq(t, `{"frontends": [], "backends": []}`, mustJSON(t, got))
}

func TestEnrich_ReresolvesStaleReference(t *testing.T) {
	// a reference decoded from an already enriched document carries its own
	// copy of the backend; enriching swaps it for the config's record
	cfg := mustConfig(t, `{
		"frontends": [{"defaultBackend": {"name": "b1", "port": 80}}],
		"backends": [{"name": "b1", "port": 80}]
	}`)
	require.NotSame(t, cfg.Backends[0], cfg.Frontends[0].DefaultBackend.Backend)

	got := Enrich(cfg)

	assert.Same(t, got.Backends[0], got.Frontends[0].DefaultBackend.Backend)
}

func TestEnrich_FrontendWithoutDefaultBackend(t *testing.T) {
	cfg := mustConfig(t, `{
		"frontends": [{"name": "fe", "mode": "tcp"}],
		"backends": [{"port": 80}]
	}`)

	got := Enrich(cfg)

	require.Len(t, got.Frontends, 1)
	assert.False(t, got.Frontends[0].DefaultBackend.Resolved())
	assert.JSONEq(t, `{"name": "fe", "mode": "tcp"}`, mustJSON(t, got.Frontends[0]))
}
