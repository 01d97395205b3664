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

// Package world defines the base game's block content.
package world

import (
	"github.com/thaumaturgia/thaum"
	"github.com/thaumaturgia/thaum/modding"
	"github.com/thaumaturgia/thaum/resource"
)

// Names of the fields every Block declares.
const (
	FieldX        = "x"
	FieldY        = "y"
	FieldZ        = "z"
	FieldLocation = "location"
)

// MissingLocation identifies a decoded block whose record didn't include a
// location.
var MissingLocation = resource.MustNew(resource.DefaultNamespace, "missing")

// A Block is a moddable block. Its position and location are declared as
// serializable fields, and mods may attach more with AddField.
type Block struct {
	modding.Object

	X        *modding.SerializableField[int32]
	Y        *modding.SerializableField[int32]
	Z        *modding.SerializableField[int32]
	Location *modding.SerializableField[resource.Location]
}

// NewBlock returns a block at pos identified by location, which must not be
// the zero Location.
func NewBlock(pos Pos, location resource.Location) *Block {
	b := &Block{
		X:        modding.NewSerializableField(thaum.Int32, pos.X),
		Y:        modding.NewSerializableField(thaum.Int32, pos.Y),
		Z:        modding.NewSerializableField(thaum.Int32, pos.Z),
		Location: modding.NewSerializableField(resource.Codec, location),
	}
	b.AddField(FieldX, b.X)
	b.AddField(FieldY, b.Y)
	b.AddField(FieldZ, b.Z)
	b.AddField(FieldLocation, b.Location)
	return b
}

// Pos returns the block's position.
func (b *Block) Pos() Pos {
	return Pos{X: b.X.Get(), Y: b.Y.Get(), Z: b.Z.Get()}
}

// MoveTo sets the block's position.
func (b *Block) MoveTo(pos Pos) {
	b.X.Set(pos.X)
	b.Y.Set(pos.Y)
	b.Z.Set(pos.Z)
}

// BlockCodec serializes the fields every Block declares as a JSON object.
// Fields added by mods aren't included; persist them with package persist.
var BlockCodec = newBlockCodec()

func newBlockCodec() *thaum.FieldMapCodec[Block] {
	b := thaum.NewFieldMapBuilder(func() *Block {
		return NewBlock(Pos{}, MissingLocation)
	})
	thaum.AddField(b, FieldX, thaum.Int32,
		func(b *Block) int32 { return b.X.Get() },
		func(b *Block, v int32) { b.X.Set(v) },
	)
	thaum.AddField(b, FieldY, thaum.Int32,
		func(b *Block) int32 { return b.Y.Get() },
		func(b *Block, v int32) { b.Y.Set(v) },
	)
	thaum.AddField(b, FieldZ, thaum.Int32,
		func(b *Block) int32 { return b.Z.Get() },
		func(b *Block, v int32) { b.Z.Set(v) },
	)
	thaum.AddField(b, FieldLocation, resource.Codec,
		func(b *Block) resource.Location { return b.Location.Get() },
		func(b *Block, v resource.Location) { b.Location.Set(v) },
	)
	return b.Build()
}
