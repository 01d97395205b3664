// Copyright 2021-2022 Buf Technologies, Inc.
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
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// prefixSize is the width of the frame's length prefix: a little-endian
// int32, matching the native integer layout of the original save format.
const prefixSize = 4

// readChunk bounds how much of a frame is buffered per read, so that a corrupt
// length prefix can't force a huge allocation before the input runs dry.
const readChunk = 32 * 1024

// WriteFrame writes payload to w behind a 4-byte length prefix.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > math.MaxInt32 {
		return errorf(CodeInvalidValue, "frame of %d bytes overflows int32 prefix", len(payload))
	}
	prefix := [prefixSize]byte{}
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return wrapIfUncoded(err, CodeUnknown)
	}
	if _, err := w.Write(payload); err != nil {
		return wrapIfUncoded(err, CodeUnknown)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame from r and returns its payload.
func ReadFrame(r io.Reader) ([]byte, error) {
	prefix := [prefixSize]byte{}
	n, err := io.ReadFull(r, prefix[:])
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && n == 0:
		return nil, errorf(CodeTruncated, "read frame prefix: %w", io.ErrUnexpectedEOF)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, errorf(CodeTruncated, "incomplete frame prefix: got %d of %d bytes", n, prefixSize)
	default:
		return nil, wrapIfUncoded(err, CodeUnknown)
	}
	size := int32(binary.LittleEndian.Uint32(prefix[:]))
	if size < 0 {
		return nil, errorf(CodeTruncated, "corrupt frame: negative length %d", size)
	}
	dst := &bytes.Buffer{}
	remaining := int64(size)
	for remaining > 0 {
		chunk := remaining
		if chunk > readChunk {
			chunk = readChunk
		}
		copied, err := io.CopyN(dst, r, chunk)
		remaining -= copied
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errorf(
					CodeTruncated,
					"frame promised %d bytes, got %d",
					size,
					int64(size)-remaining,
				)
			}
			return nil, wrapIfUncoded(err, CodeUnknown)
		}
	}
	return dst.Bytes(), nil
}

// encodeFramed serializes value to text and writes it as one frame.
func encodeFramed[T any](w io.Writer, serialize func(T) (string, error), value T) error {
	text, err := serialize(value)
	if err != nil {
		return err
	}
	return WriteFrame(w, []byte(text))
}

// decodeFramed reads one frame and deserializes its text.
func decodeFramed[T any](r io.Reader, deserialize func(string) (T, error)) (T, error) {
	payload, err := ReadFrame(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return deserialize(string(payload))
}
