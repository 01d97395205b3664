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

package world

import (
	"fmt"
	"math"

	"github.com/thaumaturgia/thaum"
)

// A Pos is an immutable block position.
type Pos struct {
	X, Y, Z int32
}

// PosCodec serializes a Pos as the JSON array [x, y, z].
var PosCodec thaum.Codec[Pos] = thaum.NewTuple3(
	thaum.Int32,
	thaum.Int32,
	thaum.Int32,
	func(x, y, z int32) (Pos, error) { return Pos{X: x, Y: y, Z: z}, nil },
	func(p Pos) int32 { return p.X },
	func(p Pos) int32 { return p.Y },
	func(p Pos) int32 { return p.Z },
)

// DistanceTo returns the Euclidean distance between p and other.
func (p Pos) DistanceTo(other Pos) float64 {
	dx := float64(other.X) - float64(p.X)
	dy := float64(other.Y) - float64(p.Y)
	dz := float64(other.Z) - float64(p.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (p Pos) String() string {
	return fmt.Sprintf("Pos(%d, %d, %d)", p.X, p.Y, p.Z)
}
