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
	"errors"
	"fmt"
	"testing"

	"github.com/thaumaturgia/thaum/internal/assert"
)

type pair struct {
	count int32
	label string
}

func newPair(count int32, label string) (pair, error) {
	return pair{count: count, label: label}, nil
}

func pairCount(p pair) int32  { return p.count }
func pairLabel(p pair) string { return p.label }

var pairCodec = NewTuple2(Int32, String, newPair, pairCount, pairLabel)

type octet struct {
	a, b, c, d int16
	e, f       string
	g          bool
	h          float64
}

func newOctet(a, b, c, d int16, e, f string, g bool, h float64) (octet, error) {
	return octet{a, b, c, d, e, f, g, h}, nil
}

func TestTupleText(t *testing.T) {
	t.Parallel()
	text, err := pairCodec.SerializeText(pair{count: 42, label: "hi"})
	assert.Nil(t, err)
	assert.Equal(t, text, `[42,"hi"]`)

	got, err := pairCodec.DeserializeText(`[ 7 , "seven" ]`)
	assert.Nil(t, err)
	assert.Equal(t, got, pair{count: 7, label: "seven"})
}

func TestTupleOrder(t *testing.T) {
	t.Parallel()
	// Swapping the component order swaps the serialized order.
	swapped := NewTuple2(
		String, Int32,
		func(label string, count int32) (pair, error) { return newPair(count, label) },
		pairLabel, pairCount,
	)
	text, err := swapped.SerializeText(pair{count: 1, label: "one"})
	assert.Nil(t, err)
	assert.Equal(t, text, `["one",1]`)
	_, err = swapped.DeserializeText(`[1,"one"]`)
	assert.Equal(t, CodeOf(err), CodeMalformedText)
}

func TestTupleBinary(t *testing.T) {
	t.Parallel()
	value := pair{count: -5, label: "neg"}
	data, err := MarshalBinary(pairCodec, value)
	assert.Nil(t, err)
	// Each component is its own frame, in declaration order.
	assert.Equal(t, data, []byte{
		2, 0, 0, 0, '-', '5',
		5, 0, 0, 0, '"', 'n', 'e', 'g', '"',
	})
	got, err := UnmarshalBinary(pairCodec, data)
	assert.Nil(t, err)
	assert.Equal(t, got, value)

	_, err = UnmarshalBinary(pairCodec, data[:8])
	assert.Equal(t, CodeOf(err), CodeTruncated)
}

func TestTupleArity(t *testing.T) {
	t.Parallel()
	for _, text := range []string{`[1,2,3]`, `[1]`, `[]`} {
		_, err := pairCodec.DeserializeText(text)
		assert.Equal(t, CodeOf(err), CodeArityMismatch, assert.Sprintf("input %s", text))
	}
	for _, text := range []string{`{"count":1}`, `"x"`, `[1,"a"`} {
		_, err := pairCodec.DeserializeText(text)
		assert.Equal(t, CodeOf(err), CodeMalformedText, assert.Sprintf("input %s", text))
	}
	_, err := pairCodec.DeserializeText("null")
	assert.Equal(t, CodeOf(err), CodeNullValue)
	_, err = pairCodec.DeserializeText(`[null,"a"]`)
	assert.Equal(t, CodeOf(err), CodeNullValue)
}

func TestTupleConstructorFailure(t *testing.T) {
	t.Parallel()
	errNegative := errors.New("count must not be negative")
	checked := NewTuple2(Int32, String,
		func(count int32, label string) (pair, error) {
			if count < 0 {
				return pair{}, errNegative
			}
			return newPair(count, label)
		},
		pairCount, pairLabel,
	)
	_, err := checked.DeserializeText(`[-1,"x"]`)
	assert.Equal(t, CodeOf(err), CodeInvalidValue)
	assert.ErrorIs(t, err, errNegative)

	// A constructor's own code is kept.
	coded := NewTuple1(String,
		func(string) (pair, error) { return pair{}, Errorf(CodeInvalidIdentifier, "bad") },
		pairLabel,
	)
	_, err = coded.DeserializeText(`["x"]`)
	assert.Equal(t, CodeOf(err), CodeInvalidIdentifier)
}

func TestTupleNested(t *testing.T) {
	t.Parallel()
	type line struct{ from, to pair }
	lineCodec := NewTuple2(pairCodec, pairCodec,
		func(from, to pair) (line, error) { return line{from, to}, nil },
		func(l line) pair { return l.from },
		func(l line) pair { return l.to },
	)
	value := line{from: pair{1, "a"}, to: pair{2, "b"}}
	text, err := lineCodec.SerializeText(value)
	assert.Nil(t, err)
	assert.Equal(t, text, `[[1,"a"],[2,"b"]]`)
	roundTrips(t, lineCodec, value)

	_, err = lineCodec.DeserializeText(`[[1,"a"],[2]]`)
	assert.Equal(t, CodeOf(err), CodeArityMismatch)
}

func TestTupleMaxArity(t *testing.T) {
	t.Parallel()
	codec := NewTuple8(
		Int16, Int16, Int16, Int16, String, String, Bool, Float64,
		newOctet,
		func(o octet) int16 { return o.a },
		func(o octet) int16 { return o.b },
		func(o octet) int16 { return o.c },
		func(o octet) int16 { return o.d },
		func(o octet) string { return o.e },
		func(o octet) string { return o.f },
		func(o octet) bool { return o.g },
		func(o octet) float64 { return o.h },
	)
	value := octet{1, 2, 3, 4, "e", "f", true, 0.5}
	text, err := codec.SerializeText(value)
	assert.Nil(t, err)
	assert.Equal(t, text, `[1,2,3,4,"e","f",true,0.5]`)
	roundTrips(t, codec, value)
	for arity := 1; arity < 8; arity++ {
		_, err := codec.DeserializeText(fmt.Sprintf("[%s]", joinOnes(arity)))
		assert.Equal(t, CodeOf(err), CodeArityMismatch)
	}
}

func joinOnes(n int) string {
	text := "1"
	for i := 1; i < n; i++ {
		text += ",1"
	}
	return text
}
