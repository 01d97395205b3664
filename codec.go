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
	"bytes"
	"io"

	"github.com/tidwall/gjson"
)

// A Codec converts values of type T to and from two representations: a JSON
// text form and a binary form written to a stream. Decode must be the exact
// inverse of Encode, and DeserializeText the exact inverse of SerializeText.
//
// Codecs are immutable once constructed, so a single Codec may be shared by
// any number of goroutines.
type Codec[T any] interface {
	// Encode writes value to w.
	Encode(w io.Writer, value T) error
	// Decode reads one value from r. It fails with CodeTruncated if r runs
	// out before the value is complete.
	Decode(r io.Reader) (T, error)
	// SerializeText returns the JSON form of value.
	SerializeText(value T) (string, error)
	// DeserializeText parses the JSON form produced by SerializeText. It fails
	// with CodeMalformedText if text can't be parsed into the expected shape
	// and with CodeNullValue if text is JSON null.
	DeserializeText(text string) (T, error)
}

// MarshalBinary encodes value into a new byte slice.
func MarshalBinary[T any](c Codec[T], value T) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := c.Encode(buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes exactly one value from data. Trailing bytes are
// reported as corruption.
func UnmarshalBinary[T any](c Codec[T], data []byte) (T, error) {
	r := bytes.NewReader(data)
	value, err := c.Decode(r)
	if err != nil {
		return value, err
	}
	if r.Len() > 0 {
		var zero T
		return zero, errorf(CodeTruncated, "corrupt input: %d trailing bytes", r.Len())
	}
	return value, nil
}

// parseText validates text as JSON and rejects null.
func parseText(text string) (gjson.Result, error) {
	if !gjson.Valid(text) {
		return gjson.Result{}, errorf(CodeMalformedText, "invalid JSON %q", abbreviate(text))
	}
	result := gjson.Parse(text)
	if result.Type == gjson.Null {
		return result, errorf(CodeNullValue, "deserialized null where a value is required")
	}
	return result, nil
}

// abbreviate keeps error messages readable when the offending text is large.
func abbreviate(text string) string {
	const max = 64
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
