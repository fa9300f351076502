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
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/wasm-numerics/pkg/serializer"
)

// Flags are built per command so parsed state never leaks between runs.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func failFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "fail",
		Usage: "exit non-zero when a response status is 400 or above",
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// newOutputWriter returns a serializer for --output and --format. Stdout
// output goes to the root command's writer so tests can capture it.
func newOutputWriter(cmd *cli.Command) (*serializer.Writer, error) {
	f, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		return serializer.NewFileWriterOrStdout(f, path)
	}
	return serializer.NewWriter(f, stdout(cmd)), nil
}

// rawOutput returns the destination for unformatted output and a close
// function.
func rawOutput(cmd *cli.Command) (io.Writer, func(), error) {
	path := strings.TrimSpace(cmd.String("output"))
	if path == "" {
		return stdout(cmd), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close output file", "path", path, "error", err)
		}
	}, nil
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}
