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

// Package registry holds long-lived content objects keyed by resource
// location.
//
// Content is defined during a single-goroutine startup phase: create a List,
// create one Registry per kind of content, register objects, add each
// Registry to the List, and finally Seal the List. After sealing, further
// registration fails and lookups are safe from any number of goroutines.
// Nothing in this package is synchronized before sealing.
package registry

import (
	"maps"
	"slices"

	"github.com/thaumaturgia/thaum"
	"github.com/thaumaturgia/thaum/resource"
	"go.uber.org/zap"
)

// Entry is a Registry with its element type erased, as held by a List.
type Entry interface {
	Location() resource.Location
	Keys() []string
	Len() int
	Seal()
	Sealed() bool
}

// An Object is one registered content object. The instance is produced once,
// when the object is registered, and shared by every caller of Get.
type Object[T any] struct {
	location resource.Location
	instance T
}

// Location returns the location the object was registered at.
func (o *Object[T]) Location() resource.Location { return o.location }

// Get returns the cached instance.
func (o *Object[T]) Get() T { return o.instance }

// A Registry maps keys to content objects of one type. An object's key is
// the path of the location it was registered at.
type Registry[T any] struct {
	location       resource.Location
	objects        map[string]*Object[T]
	sealed         bool
	allowOverwrite bool
	logger         *zap.Logger
}

var _ Entry = (*Registry[int])(nil)

// New returns an empty Registry identified by location.
func New[T any](location resource.Location, opts ...Option) *Registry[T] {
	cfg := newRegistryConfig(opts)
	return &Registry[T]{
		location:       location,
		objects:        make(map[string]*Object[T]),
		allowOverwrite: cfg.AllowOverwrite,
		logger:         cfg.Logger.With(zap.Stringer("registry", location)),
	}
}

// Location returns the registry's own location.
func (r *Registry[T]) Location() resource.Location { return r.location }

// Register namespaces name under the registry's location (see
// resource.Location.AsChild) and registers factory there.
func (r *Registry[T]) Register(name string, factory func() T) (*Object[T], error) {
	location, err := r.location.AsChild(name)
	if err != nil {
		return nil, err
	}
	return r.RegisterAt(location, factory)
}

// RegisterAt registers factory at an explicit location, keyed by the
// location's path. The factory is called once, immediately.
func (r *Registry[T]) RegisterAt(location resource.Location, factory func() T) (*Object[T], error) {
	if r.sealed {
		return nil, thaum.Errorf(thaum.CodeSealed, "register %s: registry %s is sealed", location, r.location)
	}
	if location.IsZero() {
		return nil, thaum.Errorf(thaum.CodeInvalidIdentifier, "register in %s: zero location", r.location)
	}
	if factory == nil {
		return nil, thaum.Errorf(thaum.CodeInvalidValue, "register %s: nil factory", location)
	}
	key := location.Path()
	if previous, ok := r.objects[key]; ok {
		if !r.allowOverwrite {
			return nil, thaum.Errorf(
				thaum.CodeDuplicateKey,
				"register %s: key %q already holds %s",
				location, key, previous.location,
			)
		}
		r.logger.Debug("overwriting registry object",
			zap.String("key", key),
			zap.Stringer("previous", previous.location),
		)
	}
	object := &Object[T]{location: location, instance: factory()}
	r.objects[key] = object
	r.logger.Debug("registered object", zap.String("key", key), zap.Stringer("location", location))
	return object, nil
}

// Get returns the object stored under name. Name is first tried as a key and
// then as a bare name passed to Register.
func (r *Registry[T]) Get(name string) (*Object[T], error) {
	if object, ok := r.objects[name]; ok {
		return object, nil
	}
	if child, err := r.location.AsChild(name); err == nil {
		if object, ok := r.objects[child.Path()]; ok {
			return object, nil
		}
	}
	return nil, thaum.Errorf(thaum.CodeKeyNotFound, "no object %q in registry %s", name, r.location)
}

// Keys returns every key in sorted order.
func (r *Registry[T]) Keys() []string {
	return slices.Sorted(maps.Keys(r.objects))
}

// Objects returns every registered object, sorted by key.
func (r *Registry[T]) Objects() []*Object[T] {
	keys := r.Keys()
	objects := make([]*Object[T], 0, len(keys))
	for _, key := range keys {
		objects = append(objects, r.objects[key])
	}
	return objects
}

// Len returns the number of registered objects.
func (r *Registry[T]) Len() int { return len(r.objects) }

// Seal rejects all future registrations. Sealing twice is a no-op.
func (r *Registry[T]) Seal() {
	if r.sealed {
		return
	}
	r.sealed = true
	r.logger.Debug("sealed registry", zap.Int("objects", len(r.objects)))
}

// Sealed reports whether Seal has been called.
func (r *Registry[T]) Sealed() bool { return r.sealed }
