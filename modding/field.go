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

package modding

import (
	"io"
	"reflect"

	"github.com/thaumaturgia/thaum"
)

// A Handle is a field with its value type erased. Every Handle reports the
// type it was declared with, and typed access through GetField checks that
// type before converting.
type Handle interface {
	// ValueType is the field's declared value type.
	ValueType() reflect.Type
	// Value returns the current value as an any.
	Value() any
	// SetValue replaces the current value. It fails with
	// thaum.CodeFieldTypeMismatch if v isn't of the field's value type.
	SetValue(v any) error
}

// Serializable is a Handle that knows how to persist its own value. Generic
// persisters walk an object's fields through this interface without knowing
// their concrete types.
type Serializable interface {
	Handle

	EncodeValue(w io.Writer) error
	DecodeValue(r io.Reader) error
	SerializeValue() (string, error)
	DeserializeValue(text string) error
}

// A Field is a mutable, typed value cell.
type Field[T any] struct {
	value     T
	valueType reflect.Type
}

var _ Handle = (*Field[int])(nil)

// NewField returns a Field holding initial.
func NewField[T any](initial T) *Field[T] {
	return &Field[T]{value: initial, valueType: reflect.TypeFor[T]()}
}

// Get returns the current value.
func (f *Field[T]) Get() T { return f.value }

// Set replaces the current value.
func (f *Field[T]) Set(v T) { f.value = v }

func (f *Field[T]) ValueType() reflect.Type { return f.valueType }

func (f *Field[T]) Value() any { return f.value }

func (f *Field[T]) SetValue(v any) error {
	typed, ok := v.(T)
	if !ok {
		return thaum.Errorf(thaum.CodeFieldTypeMismatch, "cannot assign %T to field of type %v", v, f.valueType)
	}
	f.value = typed
	return nil
}

func (f *Field[T]) cell() *Field[T] { return f }

// A SerializableField is a Field paired with the Codec that persists it.
type SerializableField[T any] struct {
	*Field[T]

	codec thaum.Codec[T]
}

var _ Serializable = (*SerializableField[int])(nil)

// NewSerializableField returns a field holding initial, persisted with codec.
func NewSerializableField[T any](codec thaum.Codec[T], initial T) *SerializableField[T] {
	return &SerializableField[T]{Field: NewField(initial), codec: codec}
}

// Codec returns the field's codec.
func (f *SerializableField[T]) Codec() thaum.Codec[T] { return f.codec }

func (f *SerializableField[T]) EncodeValue(w io.Writer) error {
	return f.codec.Encode(w, f.value)
}

func (f *SerializableField[T]) DecodeValue(r io.Reader) error {
	v, err := f.codec.Decode(r)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f *SerializableField[T]) SerializeValue() (string, error) {
	return f.codec.SerializeText(f.value)
}

func (f *SerializableField[T]) DeserializeValue(text string) error {
	v, err := f.codec.DeserializeText(text)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

// celled is implemented by Field and, through embedding, SerializableField.
type celled[T any] interface {
	cell() *Field[T]
}
