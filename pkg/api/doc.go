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

// Package api runs the numeric dispatcher behind the HTTP host.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// This package is responsible for:
//   - Configuring structured logging with application name and version
//   - Adapting *http.Request to router.Request and writing the response triple
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health, readiness and metrics endpoints
//
// # Endpoints
//
// Every path not claimed by a system endpoint is handed to the dispatcher,
// so 404 and 405 responses keep the dispatcher's {"error": "..."} bodies:
//
//	curl "http://localhost:8080/add?a=5&b=3"
//	{"operation":"add","inputs":{"a":5,"b":3},"result":8}
//
// /status reports the time the request was received.
//
// # Configuration
//
// The server reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
// RATE_LIMIT_BURST and LOG_LEVEL from the environment.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/wasm-numerics/pkg/version.version=1.0.0'"
package api
