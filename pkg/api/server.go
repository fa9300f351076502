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

package api

import (
	"context"
	"log/slog"
	"slices"

	"github.com/NVIDIA/wasm-numerics/pkg/logging"
	"github.com/NVIDIA/wasm-numerics/pkg/router"
	"github.com/NVIDIA/wasm-numerics/pkg/server"
	"github.com/NVIDIA/wasm-numerics/pkg/version"
)

const name = "numericsd"

// Serve configures logging and runs the API server until SIGINT or SIGTERM.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version.Get().Version)
	return Run(context.Background())
}

// Run serves the dispatcher until ctx is canceled or a termination signal
// arrives. Options are applied before the name, version and handlers, so
// server.WithConfig only replaces listener, limit and timeout settings.
func Run(ctx context.Context, opts ...server.Option) error {
	info := version.Get()
	slog.Info("starting",
		"name", name,
		"version", info.Version,
		"commit", info.Commit,
		"date", info.Date,
	)

	rt := router.New(router.WithImplementation(router.DefaultImplementation))

	s := server.New(slices.Concat(opts, []server.Option{
		server.WithName(name),
		server.WithVersion(info.Version),
		server.WithHandler(Handlers(rt)),
	})...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
