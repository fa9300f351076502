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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Reader decodes JSON, YAML or TOML from an io.Reader. Table is write-only.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader returns a Reader for input. If input is an io.Closer, Close
// closes it.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// Deserialize decodes the next document into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode TOML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close closes the input if it was closeable. Safe to call repeatedly.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// open returns the content source for a local path or http(s) URL,
// decompressed when the path ends in .gz.
func open(ctx context.Context, path string) (io.Reader, error) {
	src, err := openRaw(ctx, path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return src, nil
	}

	zr, err := gzip.NewReader(src)
	if err != nil {
		if c, ok := src.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}

	closers := multiCloser{zr}
	if c, ok := src.(io.Closer); ok {
		closers = append(closers, c)
	}
	return struct {
		io.Reader
		io.Closer
	}{zr, closers}, nil
}

func openRaw(ctx context.Context, path string) (io.Reader, error) {
	if isRemote(path) {
		data, err := NewHttpReader().ReadWithContext(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		return bytes.NewReader(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// FromFile loads a T from a local path or http(s) URL, picking the format
// from the extension. A trailing .gz is decompressed.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	format := FormatFromPath(path)
	if format == FormatTable {
		return nil, fmt.Errorf("failed to create serializer for %q: table format does not support deserialization", path)
	}
	slog.Debug("determined file format", "path", path, "format", format)

	src, err := open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}

	r, err := NewReader(format, src)
	if err != nil {
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			slog.Warn("failed to close reader", "error", cerr)
		}
	}()

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("loaded object from file", "path", path)
	return &out, nil
}
