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

// Package serializer encodes and decodes host-side data in JSON, YAML, TOML
// and table form.
//
// The numeric core speaks only the pipe-delimited response triple. Everything
// around it (CLI output, batch request files, health and readiness bodies)
// goes through this package.
//
// # Formats
//
//   - json: indented JSON via encoding/json
//   - yaml: gopkg.in/yaml.v3 with two-space indentation
//   - toml: github.com/pelletier/go-toml/v2; documents must be tables
//   - table: flattened FIELD/VALUE rows for terminals, write-only
//
// A .gz suffix on a path selects gzip (github.com/klauspost/compress) on
// both the read and write side, after which the inner extension picks the
// format.
//
// # Writing
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	return w.Serialize(ctx, results)
//
// # Reading
//
// FromFile detects the format from the extension and accepts local paths as
// well as http:// and https:// URLs:
//
//	reqs, err := serializer.FromFile[[]router.Request](ctx, "requests.yaml")
//
// # HTTP
//
// RespondJSON buffers the encoding before writing headers so a failed
// encode never leaves a partial 200 on the wire.
package serializer
