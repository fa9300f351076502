// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/wasm-numerics/pkg/logging"
	"github.com/NVIDIA/wasm-numerics/pkg/version"
)

const name = "numerics"

// Execute runs the CLI with os.Args and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Dispatch requests to the numeric kernels",
		Version:               version.Get().String(),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Description: `numerics drives the same dispatcher that is exported over the C ABI
and served by numericsd:

  call    - dispatch a single request and print the response
  batch   - dispatch every request in a JSON, YAML or TOML file
  kernel  - call a numeric kernel directly
  routes  - list the served endpoints
  serve   - run the HTTP host`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			callCmd(),
			batchCmd(),
			kernelCmd(),
			routesCmd(),
			serveCmd(),
		},
	}
}

// initLogger configures slog once flags are parsed so --log-level applies
// to every subcommand.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	info := version.Get()
	logging.SetDefaultStructuredLoggerWithLevel(name, info.Version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", info.Version,
		"commit", info.Commit,
		"date", info.Date,
		"logLevel", logLevel)
	return ctx, nil
}

// commandLister prints visible subcommand names for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(cmd.Root().Writer, c.Name)
	}
}
