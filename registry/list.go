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

package registry

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/thaumaturgia/thaum"
	"github.com/thaumaturgia/thaum/resource"
	"go.uber.org/zap"
)

// A List is the registry of registries: one Entry per location. Callers
// create one List for the content-definition phase and pass it to whatever
// defines content.
type List struct {
	registries map[resource.Location]Entry
	sealed     bool
	logger     *zap.Logger
}

// NewList returns an empty List.
func NewList(opts ...Option) *List {
	cfg := newListConfig(opts)
	return &List{
		registries: make(map[resource.Location]Entry),
		logger:     cfg.Logger,
	}
}

// AddRegistry adds entry under its own location. It fails with
// thaum.CodeDuplicateRegistry if that location is already taken.
func (l *List) AddRegistry(entry Entry) error {
	if entry == nil {
		return thaum.Errorf(thaum.CodeInvalidValue, "add nil registry")
	}
	location := entry.Location()
	if l.sealed {
		return thaum.Errorf(thaum.CodeSealed, "add registry %s: list is sealed", location)
	}
	if _, ok := l.registries[location]; ok {
		return thaum.Errorf(thaum.CodeDuplicateRegistry, "registry %s already exists", location)
	}
	l.registries[location] = entry
	l.logger.Debug("added registry", zap.Stringer("registry", location))
	return nil
}

// Get returns the registry at location.
func (l *List) Get(location resource.Location) (Entry, error) {
	entry, ok := l.registries[location]
	if !ok {
		return nil, thaum.Errorf(thaum.CodeKeyNotFound, "no registry %s", location)
	}
	return entry, nil
}

// Locations returns the location of every registry, sorted by their string
// form.
func (l *List) Locations() []resource.Location {
	return slices.SortedFunc(maps.Keys(l.registries), func(a, b resource.Location) int {
		return strings.Compare(a.String(), b.String())
	})
}

// Seal seals the List and every registry in it.
func (l *List) Seal() {
	if l.sealed {
		return
	}
	for _, entry := range l.registries {
		entry.Seal()
	}
	l.sealed = true
	l.logger.Debug("sealed registry list", zap.Int("registries", len(l.registries)))
}

// Sealed reports whether Seal has been called.
func (l *List) Sealed() bool { return l.sealed }

// Lookup returns the registry at location with its element type restored. A
// registry of some other element type is reported as not found.
func Lookup[T any](l *List, location resource.Location) (*Registry[T], error) {
	entry, err := l.Get(location)
	if err != nil {
		return nil, err
	}
	typed, ok := entry.(*Registry[T])
	if !ok {
		return nil, thaum.Errorf(thaum.CodeKeyNotFound, "registry %s doesn't hold %v", location, reflect.TypeFor[T]())
	}
	return typed, nil
}
