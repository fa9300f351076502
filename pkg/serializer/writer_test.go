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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Status      int    `json:"status" yaml:"status" toml:"status"`
	ContentType string `json:"content_type" yaml:"content_type" toml:"content_type"`
	Body        string `json:"body" yaml:"body" toml:"body"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	in := sample{Status: 200, ContentType: "application/json", Body: `{"result":3}`}
	if err := w.Serialize(context.Background(), in); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var out sample
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented JSON")
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	in := []sample{{Status: 404, ContentType: "application/json", Body: `{"error":"Not Found"}`}}
	if err := w.Serialize(context.Background(), in); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var out []sample
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestWriter_SerializeTOML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTOML, &buf)

	in := sample{Status: 404, ContentType: "application/json", Body: `{"error":"Not Found"}`}
	if err := w.Serialize(context.Background(), in); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.Contains(buf.String(), "status = 404") {
		t.Errorf("unexpected TOML: %s", buf.String())
	}

	var out sample
	if err := toml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not TOML: %v", err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	in := sample{Status: 200, ContentType: "text/html", Body: "ok"}
	if err := w.Serialize(context.Background(), in); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "Status", "200", "ContentType", "text/html", "Body"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTable_Nested(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	in := map[string]any{
		"results": []sample{{Status: 200}},
		"count":   1,
		"missing": (*sample)(nil),
	}
	if err := w.Serialize(context.Background(), in); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"results.[0].Status", "count", "missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), uint32(177670)); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.Contains(buf.String(), "value") || !strings.Contains(buf.String(), "177670") {
		t.Errorf("unexpected scalar table: %s", buf.String())
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("got %q, want <empty>", buf.String())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, sample{}); err == nil {
		t.Error("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Error("expected no output for canceled context")
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	w := NewWriter(Format("xml"), &bytes.Buffer{})
	if w.format != FormatJSON {
		t.Errorf("expected fallback to json, got %s", w.format)
	}
}

func TestNewWriter_DefaultsToStdout(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	if w.output != os.Stdout {
		t.Error("expected stdout for nil output")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		w, err := NewFileWriterOrStdout(FormatJSON, "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.output != os.Stdout {
			t.Error("expected stdout writer")
		}
		if err := w.Close(); err != nil {
			t.Errorf("Close() on stdout writer = %v", err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		w, err := NewFileWriterOrStdout(FormatYAML, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.Serialize(context.Background(), sample{Status: 405}); err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "status: 405") {
			t.Errorf("unexpected file content: %s", data)
		}
	})

	t.Run("gzip file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json.gz")
		w, err := NewFileWriterOrStdout(FormatJSON, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.Serialize(context.Background(), sample{Status: 200, Body: "ok"}); err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		zr, err := gzip.NewReader(f)
		if err != nil {
			t.Fatalf("output is not gzip: %v", err)
		}
		var out sample
		if err := json.NewDecoder(zr).Decode(&out); err != nil {
			t.Fatalf("decompressed output is not JSON: %v", err)
		}
		if out.Status != 200 || out.Body != "ok" {
			t.Errorf("unexpected content: %+v", out)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		if _, err := NewFileWriterOrStdout(FormatJSON, "/nonexistent/dir/out.json"); err == nil {
			t.Error("expected error for invalid path")
		}
	})
}

func TestFormat(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported unknown", f)
		}
	}
	if !Format("csv").IsUnknown() {
		t.Error("csv should be unknown")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"requests.json", FormatJSON},
		{"requests.YAML", FormatYAML},
		{"dir/requests.yml", FormatYAML},
		{"out.txt", FormatTable},
		{"out.table", FormatTable},
		{"requests.toml", FormatTOML},
		{"requests.yaml.gz", FormatYAML},
		{"https://example.com/batch.toml.gz?rev=2", FormatTOML},
		{"https://example.com/batch.yaml?rev=2", FormatYAML},
		{"https://example.com/batch.json#frag", FormatJSON},
		{"noext", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsCompressed(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"requests.json", false},
		{"requests.json.gz", true},
		{"https://example.com/batch.yaml.gz?rev=2", true},
		{"https://example.com/gz?x=.gz", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsCompressed(tt.path); got != tt.want {
				t.Errorf("IsCompressed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
