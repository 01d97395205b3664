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

// thaumctl inspects the base game's registered content and converts blocks
// between their text and binary encodings.
//
//	thaumctl blocks
//	thaumctl encode --x 1 --y 2 --z 3 dirt
//	thaumctl encode --format binary dirt | thaumctl decode --format binary
//
// Settings are read from THAUM_* environment variables; see package
// internal/config.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/thaumaturgia/thaum/internal/config"
	"github.com/thaumaturgia/thaum/internal/observability"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "thaumctl: %v\n", err)
		return 1
	}
	logger := observability.NewLogger(cfg.Log, os.Stderr)
	defer func() { _ = logger.Sync() }()

	env, err := newEnvironment(cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("define content", zap.Error(err))
		return 1
	}
	if err := newCLI(env, os.Stdout).Run(os.Args); err != nil {
		logger.Error("command failed", zap.Error(err))
		return 1
	}
	return 0
}

func newCLI(env *environment, stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "thaumctl"
	app.Usage = "inspect and convert registered game content"
	app.Writer = stdout
	app.HideVersion = true
	formatFlag := cli.StringFlag{
		Name:  "format, f",
		Value: env.output,
		Usage: "encoding to use: text or binary (binary is hex-encoded)",
	}
	app.Commands = []cli.Command{
		{
			Name:   "registries",
			Usage:  "list registries and how many objects each holds",
			Action: env.listRegistries,
		},
		{
			Name:   "blocks",
			Usage:  "list registered blocks",
			Action: env.listBlocks,
		},
		{
			Name:      "encode",
			Usage:     "encode a registered block",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				formatFlag,
				cli.IntFlag{Name: "x", Usage: "block x position"},
				cli.IntFlag{Name: "y", Usage: "block y position"},
				cli.IntFlag{Name: "z", Usage: "block z position"},
			},
			Action: env.encodeBlock,
		},
		{
			Name:      "decode",
			Usage:     "decode a block read from the argument or standard input",
			ArgsUsage: "[encoded]",
			Flags:     []cli.Flag{formatFlag},
			Action:    env.decodeBlock,
		},
	}
	return app
}
