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
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/wasm-numerics/pkg/boundary"
)

func kernelCmd() *cli.Command {
	return &cli.Command{
		Name:                  "kernel",
		EnableShellCompletion: true,
		Usage:                 "Call a numeric kernel directly",
		Description: `Call the same exports the shared library publishes, bypassing the router.
Arguments are validated only for type; range limits enforced by the HTTP
endpoints do not apply here.

Examples:
  numerics kernel add 2147483647 1
  numerics kernel factorial 20
  numerics kernel prime 97
  numerics kernel hash cloudflare`,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add two 32-bit integers with wrapping",
				ArgsUsage: "A B",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if err := expectArgs(cmd, 2); err != nil {
						return err
					}
					a, err := parseInt32(cmd.Args().Get(0))
					if err != nil {
						return err
					}
					b, err := parseInt32(cmd.Args().Get(1))
					if err != nil {
						return err
					}
					return printResult(cmd, boundary.Add(a, b))
				},
			},
			{
				Name:      "factorial",
				Usage:     "Compute n! in 64 bits",
				ArgsUsage: "N",
				Action: func(_ context.Context, cmd *cli.Command) error {
					n, err := singleUint32(cmd)
					if err != nil {
						return err
					}
					return printResult(cmd, boundary.Factorial(n))
				},
			},
			{
				Name:      "prime",
				Usage:     "Print 1 when n is prime, 0 otherwise",
				ArgsUsage: "N",
				Action: func(_ context.Context, cmd *cli.Command) error {
					n, err := singleUint32(cmd)
					if err != nil {
						return err
					}
					return printResult(cmd, boundary.IsPrime(n))
				},
			},
			{
				Name:      "fibonacci",
				Usage:     "Compute the nth Fibonacci number",
				ArgsUsage: "N",
				Action: func(_ context.Context, cmd *cli.Command) error {
					n, err := singleUint32(cmd)
					if err != nil {
						return err
					}
					return printResult(cmd, boundary.Fibonacci(n))
				},
			},
			{
				Name:      "hash",
				Usage:     "Compute the djb2 hash of text or a file",
				ArgsUsage: "[TEXT]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "hash the bytes of this file instead of TEXT",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if path := cmd.String("file"); path != "" {
						b, err := os.ReadFile(path)
						if err != nil {
							return fmt.Errorf("failed to read %q: %w", path, err)
						}
						return printResult(cmd, boundary.HashBytes(b))
					}
					if err := expectArgs(cmd, 1); err != nil {
						return err
					}
					return printResult(cmd, boundary.HashBytes([]byte(cmd.Args().First())))
				},
			},
		},
	}
}

func expectArgs(cmd *cli.Command, n int) error {
	if got := cmd.Args().Len(); got != n {
		return fmt.Errorf("%s expects %d argument(s), got %d", cmd.Name, n, got)
	}
	return nil
}

func singleUint32(cmd *cli.Command) (uint32, error) {
	if err := expectArgs(cmd, 1); err != nil {
		return 0, err
	}
	return parseUint32(cmd.Args().First())
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid 32-bit integer %q: %w", s, err)
	}
	return int32(v), nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned 32-bit integer %q: %w", s, err)
	}
	return uint32(v), nil
}

func printResult[T int32 | uint32 | uint64](cmd *cli.Command, v T) error {
	_, err := fmt.Fprintln(stdout(cmd), v)
	return err
}
