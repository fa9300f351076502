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

// Package cli implements the numerics command-line tool.
//
// The commands drive the same router that the shared library exports and
// that numericsd serves, so a request behaves identically in all three.
//
// # Commands
//
// call - Dispatch one request:
//
//	numerics call --url /add --query "a=5&b=3"
//	numerics call --url "/hash?input=cloudflare" --raw
//
// batch - Dispatch every request in a JSON, YAML or TOML file, local or remote:
//
//	numerics batch --input requests.yaml --concurrency 8 --format yaml
//
// kernel - Call a kernel export without routing or range checks:
//
//	numerics kernel factorial 21
//
// routes - List the served endpoints.
//
// serve - Run the HTTP host:
//
//	numerics serve --port 9090
//
// # Global Flags
//
//	--log-level    debug, info, warn or error (env LOG_LEVEL)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, toml, table (default: json)
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, I/O failure, or a failed response with --fail
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/wasm-numerics/pkg/version.version=1.0.0'"
package cli
