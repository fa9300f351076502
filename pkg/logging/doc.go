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

// Package logging configures log/slog for the numerics binaries.
//
// Records are JSON objects on stderr carrying the binary's module name and
// version. LOG_LEVEL (or the CLI's --log-level) selects debug, info, warn
// or error; anything else means info. Debug records include the source
// location.
//
//	logging.SetDefaultStructuredLogger("numericsd", "1.2.0")
//	slog.Info("server started", "port", 8080)
//
// produces
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"server started","module":"numericsd","version":"1.2.0","port":8080}
//
// NewLogLogger bridges code that expects a *log.Logger, such as
// http.Server.ErrorLog, onto the same handler.
package logging
