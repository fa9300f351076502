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

// Package router maps request paths to the numeric handlers and renders
// their results through pkg/response.
//
// The router is state free: a Router only holds immutable configuration set
// at construction, so one instance may serve concurrent callers.
//
// # Endpoints
//
// Only GET is accepted; any other method yields 405 before the path is looked
// up. Unknown paths yield 404.
//
//	GET /            landing page (text/html)
//	GET /status      {"status":"ok","implementation":...,"timestamp":...,"message":...}
//	GET /add         a, b (default 0)        {"operation":"add","inputs":{"a":A,"b":B},"result":R}
//	GET /factorial   n (default 5, 0..20)    {"operation":"factorial","input":N,"result":"R"}
//	GET /prime       n (default 17)          {"operation":"is_prime","input":N,"result":BOOL}
//	GET /fibonacci   n (default 10, 0..40)   {"operation":"fibonacci","input":N,"result":"R"}
//	GET /hash        input (default "cloudflare")
//	                                         {"operation":"simple_hash","input":"S","result":R}
//
// Factorial and Fibonacci results are JSON strings so clients limited to
// 53-bit numbers keep full precision.
//
// # Usage
//
//	r := router.New(router.WithImplementation("go"))
//	out := r.Handle("GET", "/add?a=5&b=3", "a=5&b=3")
//	// 200|application/json|{"operation":"add","inputs":{"a":5,"b":3},"result":8}
//
// The path is the URL text before the first '?'. Parameters are read from
// the separate query argument only; a query embedded in the URL is ignored.
//
// # Timestamps
//
// The router never reads a clock. /status reports Request.Timestamp when the
// host supplies one and the configured default otherwise.
package router
