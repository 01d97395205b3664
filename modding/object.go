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

// Package modding lets extensions attach typed data to existing objects.
//
// An object embeds Object to get a bag of named fields. The object's own
// package declares its fields at construction, and mods may add more at any
// time afterwards. Core code and mods share one namespace of field names:
// adding a field under a name that's already taken replaces the old field,
// so picking distinct names is up to the caller.
//
// Objects and fields aren't safe for concurrent mutation.
package modding

import (
	"maps"
	"reflect"
	"slices"

	"github.com/thaumaturgia/thaum"
)

// Moddable is implemented by any type that embeds Object.
type Moddable interface {
	AddField(name string, field Handle)
	Lookup(name string) (Handle, bool)
	Fields() map[string]Handle
}

// Object is an embeddable bag of named fields. The zero value is ready to
// use.
type Object struct {
	fields map[string]Handle
}

var _ Moddable = (*Object)(nil)

// AddField inserts field under name, replacing any field already there.
func (o *Object) AddField(name string, field Handle) {
	if o.fields == nil {
		o.fields = make(map[string]Handle)
	}
	o.fields[name] = field
}

// Lookup returns the field stored under name.
func (o *Object) Lookup(name string) (Handle, bool) {
	field, ok := o.fields[name]
	return field, ok
}

// Fields returns a copy of the name-to-field map. The map is the caller's to
// mutate; the fields themselves are shared with o.
func (o *Object) Fields() map[string]Handle {
	if o.fields == nil {
		return map[string]Handle{}
	}
	return maps.Clone(o.fields)
}

// Names returns the field names in sorted order.
func (o *Object) Names() []string {
	return slices.Sorted(maps.Keys(o.fields))
}

// GetField returns the field stored under name as a *Field[T]. It fails with
// thaum.CodeFieldNotFound if there's no such field and with
// thaum.CodeFieldTypeMismatch if the field holds some other type.
func GetField[T any](m Moddable, name string) (*Field[T], error) {
	handle, err := typedHandle[T](m, name)
	if err != nil {
		return nil, err
	}
	c, ok := handle.(celled[T])
	if !ok {
		return nil, mismatch[T](name, handle)
	}
	return c.cell(), nil
}

// GetSerializableField is like GetField, but also requires that the field
// was declared with a codec.
func GetSerializableField[T any](m Moddable, name string) (*SerializableField[T], error) {
	handle, err := typedHandle[T](m, name)
	if err != nil {
		return nil, err
	}
	field, ok := handle.(*SerializableField[T])
	if !ok {
		return nil, thaum.Errorf(thaum.CodeFieldTypeMismatch, "field %q of type %v has no codec", name, handle.ValueType())
	}
	return field, nil
}

// typedHandle finds name and checks its declared value type against T.
func typedHandle[T any](m Moddable, name string) (Handle, error) {
	handle, ok := m.Lookup(name)
	if !ok {
		return nil, thaum.Errorf(thaum.CodeFieldNotFound, "no field %q", name)
	}
	if handle.ValueType() != reflect.TypeFor[T]() {
		return nil, mismatch[T](name, handle)
	}
	return handle, nil
}

func mismatch[T any](name string, handle Handle) error {
	return thaum.Errorf(
		thaum.CodeFieldTypeMismatch,
		"field %q holds %v, not %v",
		name,
		handle.ValueType(),
		reflect.TypeFor[T](),
	)
}
