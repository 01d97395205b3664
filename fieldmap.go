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

package thaum

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// A FieldMapBuilder collects named fields for a FieldMapCodec. Add fields
// with the package-level AddField function (Go methods can't introduce the
// field's type parameter), then call Build.
type FieldMapBuilder[T any] struct {
	newValue func() *T
	fields   []mappedField[T]
}

// NewFieldMapBuilder starts a codec for *T. Decoding begins from the value
// returned by newValue; if newValue is nil, decoding begins from new(T).
func NewFieldMapBuilder[T any](newValue func() *T) *FieldMapBuilder[T] {
	if newValue == nil {
		newValue = func() *T { return new(T) }
	}
	return &FieldMapBuilder[T]{newValue: newValue}
}

// AddField registers a named field read with get and written with set. Adding
// a name that's already registered replaces the earlier field in place.
func AddField[T, F any](
	b *FieldMapBuilder[T],
	name string,
	codec Codec[F],
	get func(*T) F,
	set func(*T, F),
) *FieldMapBuilder[T] {
	field := &accessorField[T, F]{
		fieldName: name,
		codec:     codec,
		get:       get,
		set:       set,
	}
	for i, existing := range b.fields {
		if existing.name() == name {
			b.fields[i] = field
			return b
		}
	}
	b.fields = append(b.fields, field)
	return b
}

// Build returns a codec for the fields registered so far. Fields added to the
// builder afterwards don't affect codecs that were already built.
func (b *FieldMapBuilder[T]) Build() *FieldMapCodec[T] {
	return &FieldMapCodec[T]{
		newValue: b.newValue,
		fields:   slices.Clone(b.fields),
	}
}

// A FieldMapCodec serializes *T as a JSON object keyed by field name.
//
// Deserializing starts from a fresh default value and applies every
// registered field present in the object. Registered fields missing from the
// object are skipped and keep their default, and keys that aren't registered
// are ignored, so records written before or after a field was added still
// decode.
type FieldMapCodec[T any] struct {
	newValue func() *T
	fields   []mappedField[T]
}

var _ Codec[*struct{}] = (*FieldMapCodec[struct{}])(nil)

// Names returns the registered field names in registration order.
func (c *FieldMapCodec[T]) Names() []string {
	names := make([]string, 0, len(c.fields))
	for _, field := range c.fields {
		names = append(names, field.name())
	}
	return names
}

func (c *FieldMapCodec[T]) Encode(w io.Writer, value *T) error {
	return encodeFramed(w, c.SerializeText, value)
}

func (c *FieldMapCodec[T]) Decode(r io.Reader) (*T, error) {
	return decodeFramed(r, c.DeserializeText)
}

func (c *FieldMapCodec[T]) SerializeText(value *T) (string, error) {
	if value == nil {
		return "", errorf(CodeInvalidValue, "serialize nil %T", value)
	}
	object := make(map[string]json.RawMessage, len(c.fields))
	for _, field := range c.fields {
		raw, err := field.serialize(value)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", field.name(), err)
		}
		object[field.name()] = raw
	}
	data, err := json.Marshal(object)
	if err != nil {
		return "", errorf(CodeInvalidValue, "assemble %T: %w", value, err)
	}
	return string(data), nil
}

func (c *FieldMapCodec[T]) DeserializeText(text string) (*T, error) {
	result, err := parseText(text)
	if err != nil {
		return nil, err
	}
	if !result.IsObject() {
		return nil, errorf(CodeMalformedText, "expected JSON object, got %s", result.Type)
	}
	present := result.Map()
	value := c.newValue()
	for _, field := range c.fields {
		element, ok := present[field.name()]
		if !ok {
			continue
		}
		if err := field.deserialize(element.Raw, value); err != nil {
			return nil, fmt.Errorf("field %q: %w", field.name(), err)
		}
	}
	return value, nil
}

// mappedField erases the field's own type so that one codec can hold fields
// of many types.
type mappedField[T any] interface {
	name() string
	serialize(*T) (json.RawMessage, error)
	deserialize(string, *T) error
}

type accessorField[T, F any] struct {
	fieldName string
	codec     Codec[F]
	get       func(*T) F
	set       func(*T, F)
}

func (f *accessorField[T, F]) name() string { return f.fieldName }

func (f *accessorField[T, F]) serialize(value *T) (json.RawMessage, error) {
	text, err := f.codec.SerializeText(f.get(value))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(text), nil
}

func (f *accessorField[T, F]) deserialize(text string, value *T) error {
	fieldValue, err := f.codec.DeserializeText(text)
	if err != nil {
		return err
	}
	f.set(value, fieldValue)
	return nil
}
