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
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Proto returns a Codec for a protobuf message type. The text form uses the
// canonical JSON mapping from the protocol buffer specification, and the
// binary form frames that text like every other codec in this package.
//
// newMessage must return a fresh, empty message on every call.
func Proto[T proto.Message](newMessage func() T) Codec[T] {
	return &protoCodec[T]{
		newMessage: newMessage,
		unmarshalOptions: protojson.UnmarshalOptions{
			DiscardUnknown: true,
		},
	}
}

type protoCodec[T proto.Message] struct {
	newMessage       func() T
	marshalOptions   protojson.MarshalOptions
	unmarshalOptions protojson.UnmarshalOptions
}

func (c *protoCodec[T]) Encode(w io.Writer, value T) error {
	return encodeFramed(w, c.SerializeText, value)
}

func (c *protoCodec[T]) Decode(r io.Reader) (T, error) {
	return decodeFramed(r, c.DeserializeText)
}

func (c *protoCodec[T]) SerializeText(value T) (string, error) {
	if !value.ProtoReflect().IsValid() {
		return "", errorf(CodeInvalidValue, "serialize nil %T", value)
	}
	data, err := c.marshalOptions.Marshal(value)
	if err != nil {
		return "", errorf(CodeInvalidValue, "serialize %T: %w", value, err)
	}
	return string(data), nil
}

func (c *protoCodec[T]) DeserializeText(text string) (T, error) {
	message := c.newMessage()
	if _, err := parseText(text); err != nil {
		var zero T
		return zero, err
	}
	if err := c.unmarshalOptions.Unmarshal([]byte(text), message); err != nil {
		var zero T
		return zero, errorf(CodeMalformedText, "deserialize %T: %w", message, err)
	}
	return message, nil
}
