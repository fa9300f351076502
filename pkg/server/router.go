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

package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
	"github.com/NVIDIA/wasm-numerics/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// System endpoint paths. Application handlers cannot claim them.
const (
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathMetrics = "/metrics"
)

func isSystemPath(p string) bool {
	switch p {
	case PathHealth, PathReady, PathMetrics:
		return true
	default:
		return false
	}
}

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc(PathHealth, s.handleHealth)
	mux.HandleFunc(PathReady, s.handleReady)
	mux.Handle(PathMetrics, promhttp.Handler())

	for pattern, h := range s.config.Handlers {
		if isSystemPath(pattern) {
			slog.Warn("ignoring handler registered on system path", "pattern", pattern)
			continue
		}
		mux.HandleFunc(pattern, s.withMiddleware(h))
	}

	return mux
}

// routes lists application and system patterns, sorted.
func (s *Server) routes() []string {
	out := []string{PathHealth, PathReady, PathMetrics}
	for pattern := range s.config.Handlers {
		if !isSystemPath(pattern) {
			out = append(out, pattern)
		}
	}
	slices.Sort(out)
	return out
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, nerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	})
}
