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

package persist

import (
	"bytes"
	"testing"

	"github.com/thaumaturgia/thaum"
	"github.com/thaumaturgia/thaum/internal/assert"
	"github.com/thaumaturgia/thaum/modding"
	"github.com/thaumaturgia/thaum/resource"
	"github.com/thaumaturgia/thaum/world"
)

// moddedBlock returns a block carrying fields a mod attached at runtime.
func moddedBlock(pos world.Pos) *world.Block {
	block := world.NewBlock(pos, resource.MustParse("mod:crystal"))
	block.AddField("charge", modding.NewSerializableField(thaum.Float64, 0.75))
	block.AddField("owner", modding.NewSerializableField(thaum.String, "alex"))
	// Fields without a codec aren't saved.
	block.AddField("cache", modding.NewField(map[string]int{"hits": 3}))
	return block
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	text, err := Snapshot(moddedBlock(world.Pos{X: 1, Y: 2, Z: 3}))
	assert.Nil(t, err)
	assert.Equal(t, text, `{"charge":0.75,"location":["mod","crystal"],"owner":"alex","x":1,"y":2,"z":3}`)
}

func TestRestore(t *testing.T) {
	t.Parallel()
	source := moddedBlock(world.Pos{X: 1, Y: 2, Z: 3})
	charge, err := modding.GetField[float64](source, "charge")
	assert.Nil(t, err)
	charge.Set(0.25)
	text, err := Snapshot(source)
	assert.Nil(t, err)

	target := moddedBlock(world.Pos{})
	assert.Nil(t, Restore(target, text))
	assert.Equal(t, target.Pos(), world.Pos{X: 1, Y: 2, Z: 3})
	restored, err := modding.GetField[float64](target, "charge")
	assert.Nil(t, err)
	assert.Equal(t, restored.Get(), 0.25)
}

func TestRestorePartial(t *testing.T) {
	t.Parallel()
	block := moddedBlock(world.Pos{X: 9, Y: 9, Z: 9})
	// Missing fields keep their values and unknown keys are ignored.
	assert.Nil(t, Restore(block, `{"x":1,"owner":"sam","mana":12}`))
	assert.Equal(t, block.Pos(), world.Pos{X: 1, Y: 9, Z: 9})
	owner, err := modding.GetField[string](block, "owner")
	assert.Nil(t, err)
	assert.Equal(t, owner.Get(), "sam")

	// A plain block ignores the mod's keys.
	plain := world.NewBlock(world.Pos{}, resource.MustParse("mod:crystal"))
	assert.Nil(t, Restore(plain, `{"x":2,"charge":1.5}`))
	assert.Equal(t, plain.Pos(), world.Pos{X: 2})
}

func TestRestoreFailures(t *testing.T) {
	t.Parallel()
	block := moddedBlock(world.Pos{})
	err := Restore(block, `{"x":`)
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeMalformedText)
	err = Restore(block, `null`)
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeNullValue)
	err = Restore(block, `[1,2]`)
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeMalformedText)
	err = Restore(block, `{"owner":7}`)
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeMalformedText)
	assert.Match(t, err.Error(), `field "owner"`)
}

func TestRestoreOrder(t *testing.T) {
	t.Parallel()
	for range 20 {
		block := moddedBlock(world.Pos{})
		// "charge" and "z" are both invalid; "owner" and "x" sit between them.
		err := Restore(block, `{"charge":"full","owner":"sam","x":5,"z":"up"}`)
		assert.Equal(t, thaum.CodeOf(err), thaum.CodeMalformedText)
		assert.Match(t, err.Error(), `^field "charge"`)
		// Nothing after the failing field was applied.
		owner, getErr := modding.GetField[string](block, "owner")
		assert.Nil(t, getErr)
		assert.Equal(t, owner.Get(), "alex")
		assert.Equal(t, block.Pos(), world.Pos{})
	}
	block := moddedBlock(world.Pos{})
	err := Restore(block, `{"owner":"sam","x":5,"z":"up"}`)
	assert.Match(t, err.Error(), `^field "z"`)
	// Fields before the failing one keep their new values.
	assert.Equal(t, block.Pos(), world.Pos{X: 5})
	owner, err := modding.GetField[string](block, "owner")
	assert.Nil(t, err)
	assert.Equal(t, owner.Get(), "sam")
}

func TestBinary(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	first := moddedBlock(world.Pos{X: 1})
	second := moddedBlock(world.Pos{X: 2})
	assert.Nil(t, Encode(buf, first))
	assert.Nil(t, Encode(buf, second))

	target := moddedBlock(world.Pos{})
	assert.Nil(t, Decode(buf, target))
	assert.Equal(t, target.Pos(), world.Pos{X: 1})
	assert.Nil(t, Decode(buf, target))
	assert.Equal(t, target.Pos(), world.Pos{X: 2})

	err := Decode(buf, target)
	assert.Equal(t, thaum.CodeOf(err), thaum.CodeTruncated)
}
