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
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/NVIDIA/wasm-numerics/pkg/defaults"
	"github.com/NVIDIA/wasm-numerics/pkg/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unknownRoute labels dispatches to unbound paths.
const unknownRoute = "unknown"

const timeoutBody = `{"error":"Request Timeout"}`

var dispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "numerics_dispatch_total",
		Help: "Total number of dispatcher responses by route and status",
	},
	[]string{"route", "status"},
)

// clock is replaced in tests.
var clock = time.Now

// DispatchHandler adapts HTTP requests to rt. The response status,
// content type and body are written unchanged.
func DispatchHandler(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := router.Request{
			Method:    r.Method,
			URL:       r.URL.RequestURI(),
			Query:     r.URL.RawQuery,
			Timestamp: clock().UTC().Format(time.RFC3339),
		}

		resp := rt.Dispatch(req)

		route := router.PathOf(req.URL)
		if !rt.Has(route) {
			route = unknownRoute
		}
		dispatchTotal.WithLabelValues(route, strconv.Itoa(resp.Status)).Inc()

		w.Header().Set("Content-Type", resp.ContentType)
		w.WriteHeader(resp.Status)
		if _, err := io.WriteString(w, resp.Body); err != nil {
			slog.Warn("response write failed", "error", err, "path", route)
		}
	}
}

// Handlers returns the application handler map for pkg/server, with the
// dispatcher bounded by defaults.DispatchHandlerTimeout.
func Handlers(rt *router.Router) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/": withTimeout(DispatchHandler(rt), defaults.DispatchHandlerTimeout),
	}
}

// withTimeout bounds next by d. On expiry the client gets 503 with
// timeoutBody as JSON; http.TimeoutHandler sets no content type of its own,
// and a completed dispatch overwrites the preset one.
func withTimeout(next http.Handler, d time.Duration) http.HandlerFunc {
	h := http.TimeoutHandler(next, d, timeoutBody)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		h.ServeHTTP(w, r)
	}
}
