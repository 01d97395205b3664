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

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thaumaturgia/thaum"
	"github.com/thaumaturgia/thaum/internal/config"
	"github.com/thaumaturgia/thaum/registry"
	"github.com/thaumaturgia/thaum/world"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// environment is the content defined at startup plus the streams commands
// read and write.
type environment struct {
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	list   *registry.List
	// output is the default encoding for encode and decode.
	output string
}

func newEnvironment(cfg config.Config, logger *zap.Logger, stdin io.Reader, stdout io.Writer) (*environment, error) {
	opts := []registry.Option{registry.WithLogger(logger)}
	if cfg.AllowOverwrite {
		opts = append(opts, registry.AllowOverwrite())
	}
	list := registry.NewList(opts...)
	if _, err := world.RegisterBlocks(list, opts...); err != nil {
		return nil, err
	}
	list.Seal()
	return &environment{
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		list:   list,
		output: cfg.Output,
	}, nil
}

func (e *environment) blockRegistry() (*registry.Registry[*world.Block], error) {
	return registry.Lookup[*world.Block](e.list, world.BlocksLocation)
}

func (e *environment) listRegistries(*cli.Context) error {
	for _, location := range e.list.Locations() {
		entry, err := e.list.Get(location)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(e.stdout, "%s\t%d\n", location, entry.Len()); err != nil {
			return err
		}
	}
	return nil
}

func (e *environment) listBlocks(*cli.Context) error {
	blocks, err := e.blockRegistry()
	if err != nil {
		return err
	}
	for _, object := range blocks.Objects() {
		if _, err := fmt.Fprintf(e.stdout, "%s\t%s\n", object.Location().Path(), object.Location()); err != nil {
			return err
		}
	}
	return nil
}

func (e *environment) encodeBlock(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return errors.New("encode: missing block name")
	}
	blocks, err := e.blockRegistry()
	if err != nil {
		return err
	}
	object, err := blocks.Get(name)
	if err != nil {
		return err
	}
	// Encode a copy so the registered block keeps its position.
	pos := world.Pos{X: int32(c.Int("x")), Y: int32(c.Int("y")), Z: int32(c.Int("z"))}
	block := world.NewBlock(pos, object.Get().Location.Get())
	format := strings.ToLower(c.String("format"))
	var out string
	switch format {
	case config.OutputBinary:
		data, err := thaum.MarshalBinary[*world.Block](world.BlockCodec, block)
		if err != nil {
			return err
		}
		out = hex.EncodeToString(data)
	case config.OutputText:
		out, err = world.BlockCodec.SerializeText(block)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("encode: unknown format %q", format)
	}
	e.logger.Debug("encoded block",
		zap.Stringer("location", object.Location()),
		zap.Stringer("pos", pos),
		zap.String("format", format),
	)
	_, err = fmt.Fprintln(e.stdout, out)
	return err
}

func (e *environment) decodeBlock(c *cli.Context) error {
	input := c.Args().First()
	if input == "" {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return fmt.Errorf("decode: read input: %w", err)
		}
		input = string(data)
	}
	input = strings.TrimSpace(input)
	format := strings.ToLower(c.String("format"))
	var (
		block *world.Block
		err   error
	)
	switch format {
	case config.OutputBinary:
		data, hexErr := hex.DecodeString(input)
		if hexErr != nil {
			return fmt.Errorf("decode: %w", hexErr)
		}
		block, err = thaum.UnmarshalBinary[*world.Block](world.BlockCodec, data)
	case config.OutputText:
		block, err = world.BlockCodec.DeserializeText(input)
	default:
		return fmt.Errorf("decode: unknown format %q", format)
	}
	if err != nil {
		return err
	}
	blocks, err := e.blockRegistry()
	if err != nil {
		return err
	}
	location := block.Location.Get()
	object, err := blocks.Get(location.Path())
	if err != nil {
		return fmt.Errorf("decoded block %s: %w", location, err)
	}
	if object.Location() != location {
		return thaum.Errorf(thaum.CodeKeyNotFound, "decoded block %s: registered as %s", location, object.Location())
	}
	_, err = fmt.Fprintf(e.stdout, "%s at %s\n", location, block.Pos())
	return err
}
