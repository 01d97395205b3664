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

//go:generate go run ./internal/cmd/gentuple -max 8 -o tuple_gen.go

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// The NewTupleN constructors live in tuple_gen.go. They compose N
// independently typed codecs positionally: components are encoded in the
// order the getters are declared, serialized as a JSON array of exactly N
// elements, and handed to build in that same order when decoding. These
// helpers hold everything that doesn't depend on the arity.

// tupleText accumulates the elements of a tuple's JSON array.
type tupleText struct {
	elems []json.RawMessage
}

func (t *tupleText) String() (string, error) {
	data, err := json.Marshal(t.elems)
	if err != nil {
		return "", errorf(CodeInvalidValue, "assemble tuple: %w", err)
	}
	return string(data), nil
}

func appendElement[T any](t *tupleText, c Codec[T], value T) error {
	text, err := c.SerializeText(value)
	if err != nil {
		return fmt.Errorf("tuple element %d: %w", len(t.elems), err)
	}
	t.elems = append(t.elems, json.RawMessage(text))
	return nil
}

// splitTuple parses text as a JSON array of exactly arity elements.
func splitTuple(text string, arity int) ([]gjson.Result, error) {
	result, err := parseText(text)
	if err != nil {
		return nil, err
	}
	if !result.IsArray() {
		return nil, errorf(CodeMalformedText, "expected JSON array, got %s", result.Type)
	}
	elems := result.Array()
	if len(elems) != arity {
		return nil, errorf(CodeArityMismatch, "expected array of length %d, got %d", arity, len(elems))
	}
	return elems, nil
}

func elementAt[T any](c Codec[T], elems []gjson.Result, index int) (T, error) {
	value, err := c.DeserializeText(elems[index].Raw)
	if err != nil {
		return value, fmt.Errorf("tuple element %d: %w", index, err)
	}
	return value, nil
}

func encodeElement[T any](w io.Writer, index int, c Codec[T], value T) error {
	if err := c.Encode(w, value); err != nil {
		return fmt.Errorf("tuple element %d: %w", index, err)
	}
	return nil
}

func decodeElement[T any](r io.Reader, index int, c Codec[T]) (T, error) {
	value, err := c.Decode(r)
	if err != nil {
		return value, fmt.Errorf("tuple element %d: %w", index, err)
	}
	return value, nil
}

// construct adapts the result of a tuple's build function. Constructor
// failures without a code of their own are reported as CodeInvalidValue.
func construct[R any](value R, err error) (R, error) {
	if err != nil {
		var zero R
		return zero, wrapIfUncoded(fmt.Errorf("construct %T: %w", zero, err), CodeInvalidValue)
	}
	return value, nil
}
