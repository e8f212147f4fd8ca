// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// Info is the runtime status document served by GET /v1/info.
//
// It is passed through unmodified: values keep their raw JSON encoding and
// MarshalJSON writes them back as received.
type Info map[string]json.RawMessage

// UnmarshalJSON rejects anything that is not a JSON object.
func (i *Info) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	*i = fields
	return nil
}

// Keys returns the field names in lexical order.
func (i Info) Keys() []string {
	keys := make([]string, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Value returns a display form of the field: strings are unquoted, every
// other JSON value is returned as its compact encoding. Missing fields yield
// an empty string.
func (i Info) Value(key string) string {
	raw, ok := i[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}
