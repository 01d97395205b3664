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

// Package resource defines Location, the namespaced identifier used to key
// registries and content.
package resource

import (
	"io"
	"strings"

	"github.com/thaumaturgia/thaum"
)

// DefaultNamespace is the namespace of the base game's content.
const DefaultNamespace = "thaumaturgia"

const (
	separator      = ":"
	childSeparator = "/"
)

// A Location is an immutable namespace:path identifier. The zero Location is
// not valid; construct Locations with New, Default, or Parse.
//
// Locations are comparable and may be used as map keys.
type Location struct {
	namespace string
	path      string
}

// Codec serializes a Location as the JSON array [namespace, path]. The zero
// Location can't be written, since it could never be read back.
var Codec thaum.Codec[Location] = locationCodec{
	Codec: thaum.NewTuple2(
		thaum.String,
		thaum.String,
		New,
		Location.Namespace,
		Location.Path,
	),
}

type locationCodec struct {
	thaum.Codec[Location]
}

func (c locationCodec) Encode(w io.Writer, l Location) error {
	if l.IsZero() {
		return errZeroLocation()
	}
	return c.Codec.Encode(w, l)
}

func (c locationCodec) SerializeText(l Location) (string, error) {
	if l.IsZero() {
		return "", errZeroLocation()
	}
	return c.Codec.SerializeText(l)
}

func errZeroLocation() error {
	return thaum.Errorf(thaum.CodeInvalidIdentifier, "serialize zero location")
}

// New returns the Location namespace:path. Both parts must be non-empty.
func New(namespace, path string) (Location, error) {
	if namespace == "" {
		return Location{}, thaum.Errorf(thaum.CodeInvalidIdentifier, "namespace of %q must not be empty", path)
	}
	if path == "" {
		return Location{}, thaum.Errorf(thaum.CodeInvalidIdentifier, "path in namespace %q must not be empty", namespace)
	}
	return Location{namespace: namespace, path: path}, nil
}

// MustNew is like New, but panics on invalid input. It's intended for
// package-level content definitions.
func MustNew(namespace, path string) Location {
	loc, err := New(namespace, path)
	if err != nil {
		panic(err)
	}
	return loc
}

// Default returns path in the DefaultNamespace.
func Default(path string) (Location, error) {
	return New(DefaultNamespace, path)
}

// Parse reads a "namespace:path" string. It requires exactly one separator
// and non-empty parts.
func Parse(s string) (Location, error) {
	if s == "" {
		return Location{}, thaum.Errorf(thaum.CodeInvalidIdentifier, "empty location")
	}
	parts := strings.Split(s, separator)
	if len(parts) != 2 {
		return Location{}, thaum.Errorf(thaum.CodeInvalidIdentifier, "invalid location %q: expected namespace:path", s)
	}
	return New(parts[0], parts[1])
}

// MustParse is like Parse, but panics on invalid input.
func MustParse(s string) Location {
	loc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// Namespace returns the namespace part.
func (l Location) Namespace() string { return l.namespace }

// Path returns the path part.
func (l Location) Path() string { return l.path }

// IsZero reports whether l is the zero Location.
func (l Location) IsZero() bool { return l == Location{} }

// AsChild returns a new Location in the same namespace with path appended to
// l's path, joined by a slash.
func (l Location) AsChild(path string) (Location, error) {
	if path == "" {
		return Location{}, thaum.Errorf(thaum.CodeInvalidIdentifier, "child path of %s must not be empty", l)
	}
	return New(l.namespace, l.path+childSeparator+path)
}

func (l Location) String() string {
	return l.namespace + separator + l.path
}

// MarshalText implements encoding.TextMarshaler.
func (l Location) MarshalText() ([]byte, error) {
	if l.IsZero() {
		return nil, errZeroLocation()
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(text []byte) error {
	loc, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}
