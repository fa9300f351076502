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
	"net/http"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/wasm-numerics/pkg/defaults"
	"github.com/NVIDIA/wasm-numerics/pkg/header"
	"github.com/NVIDIA/wasm-numerics/pkg/response"
	"github.com/NVIDIA/wasm-numerics/pkg/router"
	"github.com/NVIDIA/wasm-numerics/pkg/version"
)

// CallResult is the document written by call when --raw is not set.
type CallResult struct {
	header.Header `json:",inline" yaml:",inline" toml:",inline"`

	Request  router.Request    `json:"request" yaml:"request" toml:"request"`
	Response response.Response `json:"response" yaml:"response" toml:"response"`
}

func callCmd() *cli.Command {
	return &cli.Command{
		Name:                  "call",
		EnableShellCompletion: true,
		Usage:                 "Dispatch a single request in-process",
		Description: `Dispatch one request through the router and print the response.

Parameters are read from --query. When --query is not set, the part of --url
after '?' is used, matching what the HTTP host does.

Examples:
  numerics call --url /add --query "a=5&b=3"
  numerics call --url "/hash?input=cloudflare" --raw
  numerics call --url /status --timestamp 2026-01-01T00:00:00Z --format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"X"},
				Value:   http.MethodGet,
				Usage:   "request method",
			},
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Required: true,
				Usage:    "request URL, path with optional query",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "raw query string, e.g. a=1&b=2",
			},
			&cli.StringFlag{
				Name:  "timestamp",
				Usage: "timestamp reported by /status",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "print the <status>|<content-type>|<body> triple",
			},
			failFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.CLICallTimeout)
			defer cancel()

			req := router.Request{
				Method:    cmd.String("method"),
				URL:       cmd.String("url"),
				Query:     cmd.String("query"),
				Timestamp: cmd.String("timestamp"),
			}
			if !cmd.IsSet("query") {
				req.Query = queryOf(req.URL)
			}

			resp := router.New().Dispatch(req)

			if err := writeResponse(ctx, cmd, req, resp); err != nil {
				return err
			}

			if cmd.Bool("fail") && resp.Status >= http.StatusBadRequest {
				return fmt.Errorf("request failed with status %d", resp.Status)
			}
			return nil
		},
	}
}

func writeResponse(ctx context.Context, cmd *cli.Command, req router.Request, resp response.Response) error {
	if cmd.Bool("raw") {
		w, done, err := rawOutput(cmd)
		if err != nil {
			return err
		}
		defer done()
		_, err = fmt.Fprintln(w, resp.Encode())
		return err
	}

	ser, err := newOutputWriter(cmd)
	if err != nil {
		return err
	}
	defer closeWriter(ser)
	return ser.Serialize(ctx, CallResult{
		Header:   header.New(header.KindCallResult, version.Get().Version),
		Request:  req,
		Response: resp,
	})
}

// queryOf returns the text after the first '?' in url.
func queryOf(url string) string {
	_, q, _ := strings.Cut(url, "?")
	return q
}
