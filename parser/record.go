/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"

	"bennypowers.dev/composetokens/schema"
)

// Record is a token leaf object. Type and Value are nil when absent.
type Record struct {
	Type  json.RawMessage
	Value json.RawMessage
}

// Record reads the entry as a token leaf. It returns false for non-object
// entries, which carry tool metadata rather than tokens.
func (e Entry) Record() (Record, bool) {
	fields, ok := Object(e.Raw)
	if !ok {
		return Record{}, false
	}
	return Record{
		Type:  firstField(fields, schema.TypeKeys),
		Value: firstField(fields, schema.ValueKeys),
	}, true
}

// TypeName returns the type tag if it is a JSON string.
func (r Record) TypeName() (string, bool) {
	return String(r.Type)
}

// HasValue reports whether a value field is present.
func (r Record) HasValue() bool {
	return r.Value != nil
}

func firstField(fields map[string]json.RawMessage, keys []string) json.RawMessage {
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			return v
		}
	}
	return nil
}

// String returns raw as a Go string if it is a JSON string.
func String(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Scalar returns raw as text if it is a JSON string or number. Numbers are
// returned as written.
func Scalar(raw json.RawMessage) (string, bool) {
	if s, ok := String(raw); ok {
		return s, true
	}
	if len(raw) == 0 {
		return "", false
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return "", false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	return n.String(), true
}

// Object returns the members of raw if it is a JSON object.
func Object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}
