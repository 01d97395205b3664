// Copyright 2025 The Thaumaturgia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package persist saves and restores every serializable field of a moddable
// object, including fields added by mods, without knowing their types.
//
// A snapshot is a JSON object keyed by field name. Restoring applies the
// snapshot's values to the fields the object currently declares: fields
// missing from the snapshot keep their current values, and snapshot keys
// the object doesn't declare are ignored. Fields without a codec are never
// saved.
//
// Fields are visited in name order, so the first failing field is always the
// same one.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/thaumaturgia/thaum"
	"github.com/thaumaturgia/thaum/modding"
	"github.com/tidwall/gjson"
)

// Snapshot returns the JSON text of every serializable field of m.
func Snapshot(m modding.Moddable) (string, error) {
	object := make(map[string]json.RawMessage)
	fields := m.Fields()
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		field, ok := fields[name].(modding.Serializable)
		if !ok {
			continue
		}
		text, err := field.SerializeValue()
		if err != nil {
			return "", fmt.Errorf("field %q: %w", name, err)
		}
		object[name] = json.RawMessage(text)
	}
	data, err := json.Marshal(object)
	if err != nil {
		return "", thaum.Errorf(thaum.CodeInvalidValue, "assemble snapshot: %w", err)
	}
	return string(data), nil
}

// Restore applies a snapshot produced by Snapshot to m. If a value fails to
// deserialize, fields restored before it (in name order) keep their new
// values and the rest are untouched.
func Restore(m modding.Moddable, text string) error {
	if !gjson.Valid(text) {
		return thaum.Errorf(thaum.CodeMalformedText, "invalid snapshot JSON")
	}
	result := gjson.Parse(text)
	if result.Type == gjson.Null {
		return thaum.Errorf(thaum.CodeNullValue, "snapshot is null")
	}
	if !result.IsObject() {
		return thaum.Errorf(thaum.CodeMalformedText, "expected snapshot object, got %s", result.Type)
	}
	values := result.Map()
	fields := m.Fields()
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		field, ok := fields[name].(modding.Serializable)
		if !ok {
			continue
		}
		value, ok := values[name]
		if !ok {
			continue
		}
		if err := field.DeserializeValue(value.Raw); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

// Encode writes the snapshot of m to w as one length-prefixed frame.
func Encode(w io.Writer, m modding.Moddable) error {
	text, err := Snapshot(m)
	if err != nil {
		return err
	}
	return thaum.WriteFrame(w, []byte(text))
}

// Decode reads one frame written by Encode and restores it into m.
func Decode(r io.Reader, m modding.Moddable) error {
	payload, err := thaum.ReadFrame(r)
	if err != nil {
		return err
	}
	return Restore(m, string(payload))
}
