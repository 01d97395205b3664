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

package resource

import (
	"encoding/json"
	"testing"

	"github.com/thaumaturgia/thaum"
	"github.com/thaumaturgia/thaum/internal/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input     string
		namespace string
		path      string
		ok        bool
	}{
		{input: "thaumaturgia:dirt", namespace: "thaumaturgia", path: "dirt", ok: true},
		{input: "mod:blocks/ore", namespace: "mod", path: "blocks/ore", ok: true},
		{input: "", ok: false},
		{input: "dirt", ok: false},
		{input: ":dirt", ok: false},
		{input: "mod:", ok: false},
		{input: "a:b:c", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			loc, err := Parse(tt.input)
			if !tt.ok {
				assert.Equal(t, thaum.CodeOf(err), thaum.CodeInvalidIdentifier)
				assert.True(t, loc.IsZero())
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, loc.Namespace(), tt.namespace)
			assert.Equal(t, loc.Path(), tt.path)
			assert.Equal(t, loc.String(), tt.input)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	_, err := New("", "dirt")
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeInvalidIdentifier)
	_, err = New("mod", "")
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeInvalidIdentifier)

	loc, err := Default("dirt")
	assert.Nil(t, err)
	assert.Equal(t, loc, MustNew(DefaultNamespace, "dirt"))
	assert.Equal(t, loc, MustParse("thaumaturgia:dirt"))
	assert.False(t, loc.IsZero())
	assert.True(t, Location{}.IsZero())

	assert.Panics(t, func() { MustNew("", "") })
	assert.Panics(t, func() { MustParse("no-separator") })
}

func TestAsChild(t *testing.T) {
	t.Parallel()
	parent := MustNew("mod", "blocks")
	child, err := parent.AsChild("ore")
	assert.Nil(t, err)
	assert.Equal(t, child, MustNew("mod", "blocks/ore"))
	grandchild, err := child.AsChild("iron")
	assert.Nil(t, err)
	assert.Equal(t, grandchild.String(), "mod:blocks/ore/iron")
	// The parent is unchanged.
	assert.Equal(t, parent.String(), "mod:blocks")

	_, err = parent.AsChild("")
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeInvalidIdentifier)
}

func TestLocationAsMapKey(t *testing.T) {
	t.Parallel()
	seen := map[Location]int{MustParse("mod:a"): 1}
	seen[MustNew("mod", "a")]++
	assert.Equal(t, len(seen), 1)
	assert.Equal(t, seen[MustParse("mod:a")], 2)
}

func TestCodec(t *testing.T) {
	t.Parallel()
	loc := MustNew("mod", "blocks/ore")
	text, err := Codec.SerializeText(loc)
	assert.Nil(t, err)
	assert.Equal(t, text, `["mod","blocks/ore"]`)
	got, err := Codec.DeserializeText(text)
	assert.Nil(t, err)
	assert.Equal(t, got, loc)

	data, err := thaum.MarshalBinary(Codec, loc)
	assert.Nil(t, err)
	got, err = thaum.UnmarshalBinary(Codec, data)
	assert.Nil(t, err)
	assert.Equal(t, got, loc)

	// The zero Location is refused on the way out rather than on the way in.
	_, err = Codec.SerializeText(Location{})
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeInvalidIdentifier)
	_, err = thaum.MarshalBinary(Codec, Location{})
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeInvalidIdentifier)

	_, err = Codec.DeserializeText(`["mod",""]`)
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeInvalidIdentifier)
	_, err = Codec.DeserializeText(`["mod"]`)
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeArityMismatch)
}

func TestText(t *testing.T) {
	t.Parallel()
	type record struct {
		Block Location `json:"block"`
	}
	data, err := json.Marshal(record{Block: MustParse("mod:ore")})
	assert.Nil(t, err)
	assert.Equal(t, string(data), `{"block":"mod:ore"}`)

	var got record
	assert.Nil(t, json.Unmarshal(data, &got))
	assert.Equal(t, got.Block, MustParse("mod:ore"))
	assert.NotNil(t, json.Unmarshal([]byte(`{"block":"bad"}`), &got))

	_, err = json.Marshal(record{})
	assert.NotNil(t, err)
}
