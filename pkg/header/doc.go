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

// Package header provides the common envelope for documents the numerics CLI
// writes, so saved results identify what produced them.
//
// A document embeds Header inline:
//
//	type BatchReport struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Results []BatchResult `json:"results" yaml:"results"`
//	}
//
// and is rendered as:
//
//	kind: BatchResult
//	apiVersion: numerics.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2026-01-01T00:00:00Z"
//	  version: 1.2.0
//	results: [...]
package header
