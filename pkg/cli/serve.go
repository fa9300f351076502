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

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/wasm-numerics/pkg/api"
	"github.com/NVIDIA/wasm-numerics/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP host for the dispatcher",
		Description: `Serve the dispatcher over HTTP until interrupted. Flags take
precedence over the PORT and RATE_LIMIT environment variables.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port",
			},
			&cli.IntFlag{
				Name:  "rate-limit",
				Usage: "requests per second across all clients",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			if cmd.IsSet("address") {
				cfg.Address = cmd.String("address")
			}
			if cmd.IsSet("port") {
				cfg.Port = cmd.Int("port")
			}
			if cmd.IsSet("rate-limit") {
				cfg.RateLimit = rate.Limit(cmd.Int("rate-limit"))
			}
			return api.Run(ctx, server.WithConfig(cfg))
		},
	}
}
