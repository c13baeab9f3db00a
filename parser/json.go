/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads token-sync documents into an ordered intermediate form.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/composetokens/fs"
	"bennypowers.dev/composetokens/schema"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Entry is one key/value pair of an object, in document order.
type Entry struct {
	// Key is the member name.
	Key string

	// Raw is the member value, exactly as written.
	Raw json.RawMessage

	// Line is the 1-based line of the key.
	Line int

	valueLine int
}

// Document is a parsed token document. Top-level members keep document order.
type Document struct {
	Members []Entry
}

// Set is a token set: the ordered entries of one top-level object.
type Set struct {
	Name    string
	Entries []Entry
}

// Parse parses a token document. Comments and trailing commas are tolerated.
// The root must be a JSON object.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	// jsonc.ToJSON blanks out comments in place, so offsets and lines are preserved.
	clean := jsonc.ToJSON(data)

	members, err := decodeObject(clean, 1)
	if err != nil {
		if errors.Is(err, errNotObject) {
			return nil, schema.ErrNotObject
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &Document{Members: members}, nil
}

// ParseFile reads and parses a token document.
func ParseFile(filesystem fs.FileSystem, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return doc, nil
}

// Set returns the named token set.
func (d *Document) Set(name string) (*Set, error) {
	// The last duplicate wins, as with encoding/json.
	var member *Entry
	for i := range d.Members {
		if d.Members[i].Key == name {
			member = &d.Members[i]
		}
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %q", schema.ErrMissingGlobalSet, name)
	}

	entries, err := decodeObject(member.Raw, member.valueLine)
	if err != nil {
		if errors.Is(err, errNotObject) {
			return nil, fmt.Errorf("%w: %q", schema.ErrInvalidTokenSet, name)
		}
		return nil, fmt.Errorf("failed to parse token set %q: %w", name, err)
	}
	return &Set{Name: name, Entries: entries}, nil
}

// IsObject reports whether the entry's value is a JSON object.
func (e Entry) IsObject() bool {
	return len(e.Raw) > 0 && e.Raw[0] == '{'
}

var (
	errNotObject = errors.New("not an object")
	newline      = []byte("\n")
)

// decodeObject decodes the members of a JSON object in order. firstLine is
// the line on which data begins.
func decodeObject(data []byte, firstLine int) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected %v in object", tok)
		}
		keyEnd := dec.InputOffset()

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		valueStart := dec.InputOffset() - int64(len(raw))

		entries = append(entries, Entry{
			Key:       key,
			Raw:       raw,
			Line:      firstLine + bytes.Count(data[:keyEnd], newline),
			valueLine: firstLine + bytes.Count(data[:valueStart], newline),
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	return entries, nil
}
