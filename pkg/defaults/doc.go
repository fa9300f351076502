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

// Package defaults provides shared timeout and limit constants for the
// numerics host surfaces.
//
// Kernel input caps live with the kernels in pkg/kernel; this package only
// covers the layers around them: the HTTP host, outbound HTTP fetches used
// by the CLI, and CLI command deadlines.
//
// # Usage
//
//	import "github.com/NVIDIA/wasm-numerics/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLIBatchTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// Handler timeouts must stay below the server write timeout so the host can
// still write an error response. Connect and TLS timeouts must stay below
// the total HTTP client timeout.
package defaults
