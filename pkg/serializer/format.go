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

package serializer

import (
	"log/slog"
	"path"
	"strings"
)

// Format represents the output format type
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTOML outputs data in TOML format
	FormatTOML Format = "toml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

// gzipExt marks paths whose content is gzip-compressed.
const gzipExt = ".gz"

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats lists the format names accepted by --format flags.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTOML),
		string(FormatTable),
	}
}

// FormatFromPath picks a format from a file path or URL extension.
// Query strings, fragments and a trailing .gz are ignored. Unknown
// extensions yield FormatJSON.
func FormatFromPath(filePath string) Format {
	p := strings.TrimSuffix(stripURLSuffix(filePath), gzipExt)
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".table", ".txt":
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// IsCompressed reports whether filePath names gzip content.
func IsCompressed(filePath string) bool {
	return strings.HasSuffix(stripURLSuffix(filePath), gzipExt)
}

func stripURLSuffix(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}
