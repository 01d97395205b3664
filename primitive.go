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
	"io"
	"unicode/utf8"
)

// Codecs for scalar values. Their text form is the JSON scalar and their
// binary form is that text behind a length prefix.
var (
	Int16   Codec[int16]   = JSON[int16]()
	Int32   Codec[int32]   = JSON[int32]()
	Int64   Codec[int64]   = JSON[int64]()
	Float32 Codec[float32] = JSON[float32]()
	Float64 Codec[float64] = JSON[float64]()
	Bool    Codec[bool]    = JSON[bool]()
	// String rejects strings that aren't valid UTF-8, which JSON can't carry
	// unchanged.
	String Codec[string] = stringCodec{}
	// Bytes uses the base64 string form of encoding/json. A nil slice is
	// written as the empty string.
	Bytes Codec[[]byte] = bytesCodec{}
)

// JSON returns a Codec for any type that encoding/json can round-trip.
// Deserializing JSON null is an error rather than a zero value.
func JSON[T any]() Codec[T] {
	return jsonCodec[T]{}
}

type jsonCodec[T any] struct{}

var _ Codec[int32] = jsonCodec[int32]{}

func (c jsonCodec[T]) Encode(w io.Writer, value T) error {
	return encodeFramed(w, c.SerializeText, value)
}

func (c jsonCodec[T]) Decode(r io.Reader) (T, error) {
	return decodeFramed(r, c.DeserializeText)
}

func (c jsonCodec[T]) SerializeText(value T) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", errorf(CodeInvalidValue, "serialize %T: %w", value, err)
	}
	return string(data), nil
}

func (c jsonCodec[T]) DeserializeText(text string) (T, error) {
	var value T
	if _, err := parseText(text); err != nil {
		return value, err
	}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return value, errorf(CodeMalformedText, "deserialize %T: %w", value, err)
	}
	return value, nil
}

type bytesCodec struct{}

func (c bytesCodec) Encode(w io.Writer, value []byte) error {
	return encodeFramed(w, c.SerializeText, value)
}

func (c bytesCodec) Decode(r io.Reader) ([]byte, error) {
	return decodeFramed(r, c.DeserializeText)
}

func (c bytesCodec) SerializeText(value []byte) (string, error) {
	if value == nil {
		value = []byte{}
	}
	return jsonCodec[[]byte]{}.SerializeText(value)
}

func (c bytesCodec) DeserializeText(text string) ([]byte, error) {
	return jsonCodec[[]byte]{}.DeserializeText(text)
}

type stringCodec struct{}

func (c stringCodec) Encode(w io.Writer, value string) error {
	return encodeFramed(w, c.SerializeText, value)
}

func (c stringCodec) Decode(r io.Reader) (string, error) {
	return decodeFramed(r, c.DeserializeText)
}

func (c stringCodec) SerializeText(value string) (string, error) {
	if !utf8.ValidString(value) {
		return "", errorf(CodeInvalidValue, "serialize string %q: invalid UTF-8", abbreviate(value))
	}
	return jsonCodec[string]{}.SerializeText(value)
}

func (c stringCodec) DeserializeText(text string) (string, error) {
	return jsonCodec[string]{}.DeserializeText(text)
}
