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
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/wasm-numerics/pkg/router"
)

var routeSummaries = map[string]string{
	"/":          "landing page",
	"/add":       "sum of a and b",
	"/factorial": "n! for 0 <= n <= 20",
	"/prime":     "primality of n",
	"/fibonacci": "nth Fibonacci number for 0 <= n <= 40",
	"/hash":      "djb2 hash of input",
	"/status":    "implementation status",
}

func routesCmd() *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "List the endpoints the dispatcher serves",
		Action: func(_ context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(stdout(cmd), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tPATH\tDESCRIPTION")
			for _, route := range router.New().Routes() {
				method, path, _ := strings.Cut(route, " ")
				fmt.Fprintf(tw, "%s\t%s\t%s\n", method, path, routeSummaries[path])
			}
			return tw.Flush()
		},
	}
}
