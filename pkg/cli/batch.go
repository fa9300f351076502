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
	"net/http"
	"strconv"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/wasm-numerics/pkg/defaults"
	"github.com/NVIDIA/wasm-numerics/pkg/header"
	"github.com/NVIDIA/wasm-numerics/pkg/response"
	"github.com/NVIDIA/wasm-numerics/pkg/router"
	"github.com/NVIDIA/wasm-numerics/pkg/serializer"
	"github.com/NVIDIA/wasm-numerics/pkg/version"
)

// Metadata keys recorded on a BatchReport.
const (
	metadataInput  = "input"
	metadataFailed = "failed"
)

const defaultBatchConcurrency = 4

// BatchResult pairs a request from a batch file with its response.
type BatchResult struct {
	Request  router.Request    `json:"request" yaml:"request" toml:"request"`
	Response response.Response `json:"response" yaml:"response" toml:"response"`
}

// BatchReport is the document written by batch.
type BatchReport struct {
	header.Header `json:",inline" yaml:",inline" toml:",inline"`

	Results []BatchResult `json:"results" yaml:"results" toml:"results"`
}

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "batch",
		EnableShellCompletion: true,
		Usage:                 "Dispatch every request in a JSON, YAML or TOML file",
		Description: `Load a list of requests and dispatch each one. The input may be a local
file or an http(s) URL; the format follows the extension and a trailing .gz
is decompressed. TOML files list requests as [[requests]] tables.

Each entry has method, url, query and timestamp fields. A missing method
means GET and a missing query is taken from the url, as with call.

Example requests.yaml:
  - url: /add
    query: a=2&b=3
  - url: /factorial?n=21
  - method: POST
    url: /status

Results are written in input order inside a BatchResult document.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "path or http(s) URL of the request list",
				Sources:  cli.EnvVars("NUMERICS_BATCH_INPUT"),
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: defaultBatchConcurrency,
				Usage: "maximum requests dispatched at once",
			},
			failFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIBatchTimeout)
			defer cancel()

			input := cmd.String("input")
			reqs, err := loadRequests(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to load requests from %q: %w", input, err)
			}

			results, err := runBatch(ctx, router.New(), reqs, cmd.Int("concurrency"))
			if err != nil {
				return err
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			failed := countFailed(results)
			report := BatchReport{
				Header: header.New(header.KindBatchResult, version.Get().Version,
					header.WithMetadata(metadataInput, input),
					header.WithMetadata(metadataFailed, strconv.Itoa(failed)),
				),
				Results: results,
			}

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}

			if cmd.Bool("fail") && failed > 0 {
				return fmt.Errorf("%d of %d requests failed", failed, len(results))
			}
			return nil
		},
	}
}

// requestTable is the TOML shape of a batch file, which cannot hold a
// top-level array.
type requestTable struct {
	Requests []router.Request `toml:"requests"`
}

func loadRequests(ctx context.Context, input string) ([]router.Request, error) {
	if serializer.FormatFromPath(input) == serializer.FormatTOML {
		t, err := serializer.FromFile[requestTable](ctx, input)
		if err != nil {
			return nil, err
		}
		return t.Requests, nil
	}

	reqs, err := serializer.FromFile[[]router.Request](ctx, input)
	if err != nil {
		return nil, err
	}
	return *reqs, nil
}

// runBatch dispatches reqs with at most limit in flight and returns results
// in input order.
func runBatch(ctx context.Context, rt *router.Router, reqs []router.Request, limit int) ([]BatchResult, error) {
	if limit < 1 {
		limit = 1
	}

	results := make([]BatchResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			req = normalizeRequest(req)
			results[i] = BatchResult{
				Request:  req,
				Response: rt.Dispatch(req),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	slog.Debug("batch complete", "requests", len(results))
	return results, nil
}

func normalizeRequest(req router.Request) router.Request {
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	if req.Query == "" {
		req.Query = queryOf(req.URL)
	}
	return req
}

func countFailed(results []BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Response.Status >= http.StatusBadRequest {
			n++
		}
	}
	return n
}
