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

// Package server provides the HTTP host used by numericsd.
//
// It owns everything around the dispatcher: listener lifecycle, middleware,
// probes and metrics. Application handlers are supplied by the caller as a
// path to handler map; pkg/api registers the numeric dispatcher at "/".
//
// # Usage
//
//	s := server.New(
//	    server.WithName("numericsd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/": api.DispatchHandler(router.New()),
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Middleware
//
// Application handlers run behind, outermost first:
//
//	metrics -> request ID -> panic recovery -> rate limit -> logging
//
// Recovery sits outside the limiter so a panicking request does not spend a
// token twice on retry.
//
// # System Endpoints
//
// These bypass the middleware chain and are never rate limited:
//
//	GET /health   liveness, always 200 {"status":"healthy"}
//	GET /ready    200 when serving, 503 before Start and during shutdown
//	GET /metrics  Prometheus exposition
//
// # Configuration
//
// NewConfig reads these environment variables:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//	RATE_LIMIT                sustained requests per second (default 100)
//	RATE_LIMIT_BURST          token bucket size (default 200)
//
// # Errors
//
// Host-level failures (rate limiting, panics, unknown routes on the default
// root) use a JSON envelope:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-01T00:00:00Z",
//	  "retryable": true
//	}
//
// Responses produced by the dispatcher itself keep their own
// {"error": "..."} bodies and are passed through untouched.
package server
