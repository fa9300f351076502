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

// Package errors provides structured error types shared by the dispatcher
// and its hosts.
//
// Every failure the router can report (bad method, unknown path, numeric
// input out of bounds, null input at the boundary) is a StructuredError whose
// Code decides the response status and whose Message is the exact text that
// appears in the {"error": ...} body. Context carries log-only detail and is
// never rendered to the client.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "Number must be between 0 and 20",
//	    map[string]any{
//	        "param": "n",
//	        "value": 21,
//	    },
//	)
package errors
