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

// Package thaum is a framework of composable, typed codecs for game content.
//
// A Codec[T] converts values of T to a JSON text form and to a binary form.
// Scalar codecs (Int32, String, Bytes, and friends) are the leaves. Larger
// codecs are composed from them in two ways:
//
//   - NewTuple1 through NewTuple8 combine positional components with a
//     constructor and one getter per component, for types that can only be
//     built whole. Their text form is a JSON array.
//   - FieldMapBuilder combines named fields with getter and setter pairs, for
//     mutable types with a usable default. Its text form is a JSON object,
//     and fields missing from the input are skipped.
//
// The binary form of every codec in this package is its JSON text behind a
// 4-byte little-endian length prefix; tuples write one such frame per
// component.
//
// Failures are reported as *Error values carrying a Code. Use CodeOf to
// recover the code from a wrapped error.
//
// Subpackages build on these codecs: resource defines qualified identifiers,
// modding attaches typed fields to objects after construction, and registry
// holds long-lived content objects keyed by identifier.
package thaum
