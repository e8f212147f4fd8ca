// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

const (
	fieldName           = "name"
	fieldDefaultBackend = "defaultBackend"
	fieldMode           = "mode"
	fieldBindIP         = "bindIp"
	fieldBindPort       = "bindPort"
	fieldServers        = "servers"
	fieldProxyMode      = "proxyMode"
)

// Config is the load balancer configuration document served by
// GET /v1/config.
//
// Frontends and Backends keep the order in which they appeared in the
// document. Both arrays are mandatory: decoding a document that lacks either
// of them (or carries null instead of an array) fails with
// [ErrMissingFrontends] or [ErrMissingBackends].
type Config struct {
	Frontends []*Frontend `json:"frontends"`
	Backends  []*Backend  `json:"backends"`
}

// UnmarshalJSON decodes a configuration document and validates its shape.
func (c *Config) UnmarshalJSON(data []byte) error {
	var doc struct {
		Frontends *[]*Frontend `json:"frontends"`
		Backends  *[]*Backend  `json:"backends"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if doc.Frontends == nil {
		return ErrMissingFrontends
	}
	if doc.Backends == nil {
		return ErrMissingBackends
	}
	for i, fe := range *doc.Frontends {
		if fe == nil {
			return fmt.Errorf("frontends[%d]: %w", i, ErrNullEntry)
		}
	}
	for i, be := range *doc.Backends {
		if be == nil {
			return fmt.Errorf("backends[%d]: %w", i, ErrNullEntry)
		}
	}

	c.Frontends = *doc.Frontends
	c.Backends = *doc.Backends
	return nil
}

// Backend is a named pool of servers a frontend can route to.
//
// Only Name is interpreted; every other field of the document is kept
// verbatim in Fields and written back unchanged by MarshalJSON.
type Backend struct {
	// Name identifies the backend inside one Config. Names should be unique;
	// see the enrichment rules for what happens when they are not.
	Name string

	// Fields holds the raw JSON value of every key of the backend object,
	// including "name".
	Fields map[string]json.RawMessage
}

// UnmarshalJSON implements [json.Unmarshaler].
func (b *Backend) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	name, err := optionalString(fields, fieldName)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	b.Name = name
	b.Fields = fields
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (b Backend) MarshalJSON() ([]byte, error) {
	fields := maps.Clone(b.Fields)
	if fields == nil {
		fields = make(map[string]json.RawMessage, 1)
	}
	if err := setString(fields, fieldName, b.Name); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// Field decodes the raw value stored under key into v.
// It reports false when the key is absent.
func (b *Backend) Field(key string, v any) (bool, error) {
	return decodeField(b.Fields, key, v)
}

// Mode returns the proxy mode ("http", "tcp") or an empty string.
func (b *Backend) Mode() string {
	var mode string
	_, _ = b.Field(fieldMode, &mode)
	return mode
}

// ProxyMode reports the backend's "proxyMode" flag. A missing or non-boolean
// value reads as false.
func (b *Backend) ProxyMode() bool {
	var proxyMode bool
	_, _ = b.Field(fieldProxyMode, &proxyMode)
	return proxyMode
}

// Servers returns the servers listed in the backend. A backend without a
// "servers" key has no servers.
func (b *Backend) Servers() ([]BackendServer, error) {
	var servers []BackendServer
	if _, err := b.Field(fieldServers, &servers); err != nil {
		return nil, fmt.Errorf("backend %q servers: %w", b.Name, err)
	}
	return servers, nil
}

// BackendServer is the typed view of one entry of a backend's "servers".
type BackendServer struct {
	Name   string `json:"name" yaml:"name"`
	Host   string `json:"host" yaml:"host"`
	Port   int    `json:"port" yaml:"port"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Frontend is a listener of the load balancer.
//
// DefaultBackend starts out as a backend name and is resolved to the backend
// record during enrichment. All other fields are kept verbatim in Fields.
type Frontend struct {
	Name           string
	DefaultBackend BackendRef

	// Fields holds the raw JSON value of every key of the frontend object
	// except "defaultBackend", which lives in DefaultBackend.
	Fields map[string]json.RawMessage

	// noDefaultBackend is set when the decoded object had no "defaultBackend"
	// key; such a frontend is written back without it.
	noDefaultBackend bool
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *Frontend) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("frontend: %w", err)
	}

	name, err := optionalString(fields, fieldName)
	if err != nil {
		return fmt.Errorf("frontend: %w", err)
	}

	var ref BackendRef
	raw, hasRef := fields[fieldDefaultBackend]
	if hasRef {
		if err = json.Unmarshal(raw, &ref); err != nil {
			return fmt.Errorf("frontend %q: %w", name, err)
		}
		delete(fields, fieldDefaultBackend)
	}

	f.Name = name
	f.DefaultBackend = ref
	f.Fields = fields
	f.noDefaultBackend = !hasRef
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (f Frontend) MarshalJSON() ([]byte, error) {
	fields := maps.Clone(f.Fields)
	if fields == nil {
		fields = make(map[string]json.RawMessage, 2)
	}
	if err := setString(fields, fieldName, f.Name); err != nil {
		return nil, err
	}
	if !f.HasDefaultBackend() {
		return json.Marshal(fields)
	}

	ref, err := json.Marshal(f.DefaultBackend)
	if err != nil {
		return nil, err
	}
	fields[fieldDefaultBackend] = ref

	return json.Marshal(fields)
}

// HasDefaultBackend reports whether the frontend declares a default backend.
// It is false only for a frontend decoded without a "defaultBackend" key
// whose reference was not set afterwards.
func (f *Frontend) HasDefaultBackend() bool {
	return !f.noDefaultBackend || f.DefaultBackend != (BackendRef{})
}

// Field decodes the raw value stored under key into v.
// It reports false when the key is absent.
func (f *Frontend) Field(key string, v any) (bool, error) {
	return decodeField(f.Fields, key, v)
}

// Mode returns the proxy mode ("http", "tcp") or an empty string.
func (f *Frontend) Mode() string {
	var mode string
	_, _ = f.Field(fieldMode, &mode)
	return mode
}

// BindAddress returns "ip:port" built from bindIp and bindPort, or an empty
// string when the frontend does not declare a port.
func (f *Frontend) BindAddress() string {
	var (
		ip   string
		port int
	)
	_, _ = f.Field(fieldBindIP, &ip)
	if ok, err := f.Field(fieldBindPort, &port); !ok || err != nil || port == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", ip, port)
}

// Clone returns a shallow copy of the frontend with its own Fields map.
func (f *Frontend) Clone() *Frontend {
	cp := *f
	cp.Fields = maps.Clone(f.Fields)
	return &cp
}

// BackendRef is the value of a frontend's "defaultBackend".
//
// Before enrichment only Name is set. After enrichment Backend points at the
// matching record of the same Config. On the wire an unresolved reference is
// the plain name string and a resolved one is the backend object.
type BackendRef struct {
	Name    string
	Backend *Backend
}

// Resolved reports whether the reference points at a backend record.
func (r BackendRef) Resolved() bool {
	return r.Backend != nil
}

// MarshalJSON implements [json.Marshaler].
func (r BackendRef) MarshalJSON() ([]byte, error) {
	if r.Backend != nil {
		return json.Marshal(r.Backend)
	}
	return json.Marshal(r.Name)
}

// UnmarshalJSON accepts either a backend name or a backend object, so that
// an already enriched document can be decoded again.
func (r *BackendRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidBackendRef
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = BackendRef{Name: name}
		return nil
	case '{':
		var be Backend
		if err := json.Unmarshal(data, &be); err != nil {
			return err
		}
		*r = BackendRef{Name: be.Name, Backend: &be}
		return nil
	default:
		return ErrInvalidBackendRef
	}
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotAnObject
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func optionalString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidName, key)
	}
	return s, nil
}

func setString(fields map[string]json.RawMessage, key, value string) error {
	if value == "" {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fields[key] = raw
	return nil
}

func decodeField(fields map[string]json.RawMessage, key string, v any) (bool, error) {
	raw, ok := fields[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, err
	}
	return true, nil
}
