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

	"github.com/thaumaturgia/thaum/registry"
	"github.com/thaumaturgia/thaum/resource"
)

// BlocksLocation identifies the block registry.
var BlocksLocation = resource.MustNew(resource.DefaultNamespace, "blocks")

// Blocks is the base game's block registry and the objects registered in it.
type Blocks struct {
	Registry *registry.Registry[*Block]

	Dirt  *registry.Object[*Block]
	Stone *registry.Object[*Block]
	Grass *registry.Object[*Block]
}

// RegisterBlocks creates the block registry, registers the base game's
// blocks in it, and adds it to list. Each block is located in the default
// namespace under its own name, so it's keyed by that name.
func RegisterBlocks(list *registry.List, opts ...registry.Option) (*Blocks, error) {
	blocks := &Blocks{Registry: registry.New[*Block](BlocksLocation, opts...)}
	for _, def := range []struct {
		name   string
		target **registry.Object[*Block]
	}{
		{"dirt", &blocks.Dirt},
		{"stone", &blocks.Stone},
		{"grass", &blocks.Grass},
	} {
		object, err := RegisterBlock(blocks.Registry, def.name)
		if err != nil {
			return nil, err
		}
		*def.target = object
	}
	if err := list.AddRegistry(blocks.Registry); err != nil {
		return nil, fmt.Errorf("add block registry: %w", err)
	}
	return blocks, nil
}

// RegisterBlock registers a block named name in the default namespace. Mods
// use it to add blocks of their own before the registry is sealed.
func RegisterBlock(blocks *registry.Registry[*Block], name string) (*registry.Object[*Block], error) {
	location, err := resource.Default(name)
	if err != nil {
		return nil, err
	}
	return blocks.RegisterAt(location, func() *Block {
		return NewBlock(Pos{}, location)
	})
}
