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
	"math"
	"testing"
	"testing/quick"

	"github.com/thaumaturgia/thaum/internal/assert"
)

// roundTrips reports whether value survives both the text and the binary
// form of codec.
func roundTrips[T any](t testing.TB, codec Codec[T], value T) bool {
	t.Helper()
	text, err := codec.SerializeText(value)
	if err != nil {
		t.Fatal(err)
	}
	fromText, err := codec.DeserializeText(text)
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalBinary(codec, value)
	if err != nil {
		t.Fatal(err)
	}
	fromBinary, err := UnmarshalBinary(codec, data)
	if err != nil {
		t.Fatal(err)
	}
	return assert.Equal(t, fromText, value) && assert.Equal(t, fromBinary, value)
}

func TestPrimitiveRoundTrips(t *testing.T) {
	t.Parallel()
	check := func(f any) {
		t.Helper()
		if err := quick.Check(f, nil /* config */); err != nil {
			t.Error(err)
		}
	}
	check(func(v int16) bool { return roundTrips(t, Int16, v) })
	check(func(v int32) bool { return roundTrips(t, Int32, v) })
	check(func(v int64) bool { return roundTrips(t, Int64, v) })
	check(func(v float32) bool { return roundTrips(t, Float32, v) })
	check(func(v float64) bool { return roundTrips(t, Float64, v) })
	check(func(v string) bool { return roundTrips(t, String, v) })
	check(func(v bool) bool { return roundTrips(t, Bool, v) })
	check(func(v []byte) bool { return roundTrips(t, Bytes, v) })
}

func TestPrimitiveEdgeValues(t *testing.T) {
	t.Parallel()
	roundTrips(t, Int16, math.MinInt16)
	roundTrips(t, Int32, math.MaxInt32)
	roundTrips(t, Int64, math.MinInt64)
	roundTrips(t, Int64, math.MaxInt64)
	roundTrips(t, Float32, math.SmallestNonzeroFloat32)
	roundTrips(t, Float64, -math.MaxFloat64)
	roundTrips(t, String, "")
	roundTrips(t, String, `quotes " and <tags> & unicode ✓`)
	roundTrips(t, Bytes, []byte{0, 1, 2, 0xff})
}

func TestPrimitiveText(t *testing.T) {
	t.Parallel()
	text, err := Int32.SerializeText(42)
	assert.Nil(t, err)
	assert.Equal(t, text, "42")
	text, err = String.SerializeText("hi")
	assert.Nil(t, err)
	assert.Equal(t, text, `"hi"`)
	text, err = Bool.SerializeText(true)
	assert.Nil(t, err)
	assert.Equal(t, text, "true")
	text, err = Bytes.SerializeText([]byte("hi"))
	assert.Nil(t, err)
	assert.Equal(t, text, `"aGk="`)
	text, err = Bytes.SerializeText(nil)
	assert.Nil(t, err)
	assert.Equal(t, text, `""`)

	// Whitespace around a scalar is still valid JSON.
	v, err := Int32.DeserializeText(" 7\n")
	assert.Nil(t, err)
	assert.Equal(t, v, int32(7))
}

func TestPrimitiveFailures(t *testing.T) {
	t.Parallel()
	t.Run("null", func(t *testing.T) {
		t.Parallel()
		_, err := String.DeserializeText("null")
		assert.Equal(t, CodeOf(err), CodeNullValue)
		_, err = Int32.DeserializeText("null")
		assert.Equal(t, CodeOf(err), CodeNullValue)
	})
	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"", "{", "tru", `"unterminated`} {
			_, err := Int32.DeserializeText(text)
			assert.Equal(t, CodeOf(err), CodeMalformedText, assert.Sprintf("input %q", text))
		}
	})
	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := Int32.DeserializeText(`"42"`)
		assert.Equal(t, CodeOf(err), CodeMalformedText)
		_, err = Int16.DeserializeText("70000")
		assert.Equal(t, CodeOf(err), CodeMalformedText)
		_, err = Bool.DeserializeText("[true]")
		assert.Equal(t, CodeOf(err), CodeMalformedText)
	})
	t.Run("unrepresentable", func(t *testing.T) {
		t.Parallel()
		_, err := Float64.SerializeText(math.NaN())
		assert.Equal(t, CodeOf(err), CodeInvalidValue)
		err = Float32.Encode(&bytes.Buffer{}, float32(math.Inf(1)))
		assert.Equal(t, CodeOf(err), CodeInvalidValue)
	})
	t.Run("invalid utf-8", func(t *testing.T) {
		t.Parallel()
		invalid := "ore\xff\xfe"
		_, err := String.SerializeText(invalid)
		assert.Equal(t, CodeOf(err), CodeInvalidValue)
		_, err = MarshalBinary(String, invalid)
		assert.Equal(t, CodeOf(err), CodeInvalidValue)
		// The same bytes are fine as a byte slice.
		roundTrips(t, Bytes, []byte(invalid))
	})
	t.Run("truncated", func(t *testing.T) {
		t.Parallel()
		data, err := MarshalBinary(String, "hello")
		assert.Nil(t, err)
		_, err = UnmarshalBinary(String, data[:len(data)-1])
		assert.Equal(t, CodeOf(err), CodeTruncated)
		_, err = UnmarshalBinary(String, append(data, 0))
		assert.Equal(t, CodeOf(err), CodeTruncated)
	})
}

func TestBinaryLayout(t *testing.T) {
	t.Parallel()
	data, err := MarshalBinary(Int32, 42)
	assert.Nil(t, err)
	assert.Equal(t, data, []byte{2, 0, 0, 0, '4', '2'})
}

func TestSequentialDecode(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	assert.Nil(t, Int64.Encode(buf, 1))
	assert.Nil(t, String.Encode(buf, "two"))
	assert.Nil(t, Bool.Encode(buf, true))
	one, err := Int64.Decode(buf)
	assert.Nil(t, err)
	assert.Equal(t, one, int64(1))
	two, err := String.Decode(buf)
	assert.Nil(t, err)
	assert.Equal(t, two, "two")
	three, err := Bool.Decode(buf)
	assert.Nil(t, err)
	assert.True(t, three)
	_, err = Bool.Decode(buf)
	assert.Equal(t, CodeOf(err), CodeTruncated)
}

func TestJSONCodec(t *testing.T) {
	t.Parallel()
	type settings struct {
		Volume int      `json:"volume"`
		Tags   []string `json:"tags"`
	}
	codec := JSON[settings]()
	roundTrips(t, codec, settings{Volume: 3, Tags: []string{"a", "b"}})
	_, err := JSON[*settings]().DeserializeText("null")
	assert.Equal(t, CodeOf(err), CodeNullValue)
}
