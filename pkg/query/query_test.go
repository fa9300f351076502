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

package query

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		query     Values
		key       string
		wantValue string
		wantFound bool
	}{
		{"single binding", "a=5", "a", "5", true},
		{"second binding", "a=5&b=3", "b", "3", true},
		{"first occurrence wins", "n=1&n=2", "n", "1", true},
		{"empty value", "input=", "input", "", true},
		{"value keeps later equals", "k=a=b", "k", "a=b", true},
		{"binding without equals ignored", "n&n=4", "n", "4", true},
		{"bare key only", "n", "n", "", false},
		{"absent", "a=1", "b", "", false},
		{"empty query", "", "a", "", false},
		{"key is exact prefix not substring", "aa=1&a=2", "a", "2", true},
		{"empty segments", "&&a=9&", "a", "9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.query.Lookup(tt.key)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantValue, got)
			assert.Equal(t, tt.wantFound, tt.query.Has(tt.key))
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		query Values
		def   int64
		want  int64
	}{
		{"parses positive", "n=21", 5, 21},
		{"parses negative", "n=-3", 5, -3},
		{"parses explicit plus", "n=+7", 5, 7},
		{"absent uses default", "m=1", 5, 5},
		{"garbage uses default", "n=abc", 5, 5},
		{"trailing garbage uses default", "n=12x", 5, 5},
		{"empty uses default", "n=", 5, 5},
		{"float uses default", "n=1.5", 5, 5},
		{"overflow uses default", "n=99999999999999999999", 5, 5},
		{"max int64", "n=9223372036854775807", 5, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Number("n", tt.def))
		})
	}
}

func TestInt32(t *testing.T) {
	assert.Equal(t, int32(5), Values("a=5").Int32("a", 0))
	assert.Equal(t, int32(-5), Values("a=-5").Int32("a", 0))
	assert.Equal(t, int32(math.MaxInt32), Values("a=2147483647").Int32("a", 0))
	assert.Equal(t, int32(0), Values("a=2147483648").Int32("a", 0))
	assert.Equal(t, int32(1), Values("b=2").Int32("a", 1))
}

func TestUint32(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  uint32
	}{
		{"plain", "n=97", 97},
		{"max", "n=4294967295", math.MaxUint32},
		{"one past max", "n=4294967296", 17},
		{"negative", "n=-7", 17},
		{"sign prefix", "n=+7", 17},
		{"garbage", "n=seven", 17},
		{"absent", "m=3", 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Values(tt.query).Uint32("n", 17))
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		query Values
		want  string
	}{
		{"plain", "input=cloudflare", "cloudflare"},
		{"plus is space", "input=hello+world", "hello world"},
		{"percent escape", "input=a%20b%21", "a b!"},
		{"percent encoded plus", "input=1%2B1", "1+1"},
		{"utf8 escape", "input=caf%C3%A9", "café"},
		{"malformed escape", "input=%zz", ""},
		{"truncated escape", "input=abc%2", ""},
		{"empty value", "input=", ""},
		{"absent uses default", "other=x", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.String("input", "fallback"))
		})
	}
}

// FuzzValues checks that no input makes the parser panic or hang.
func FuzzValues(f *testing.F) {
	f.Add("a=5&b=3", "a")
	f.Add("", "")
	f.Add("&&&", "=")
	f.Add("input=%", "input")
	f.Add("n=-9223372036854775808", "n")
	f.Add("\xff\xfe=\x00", "\xff\xfe")

	f.Fuzz(func(t *testing.T, raw, key string) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			v := Values(raw)
			_, _ = v.Lookup(key)
			_ = v.Number(key, 0)
			_ = v.Int32(key, 0)
			_ = v.Uint32(key, 0)
			_ = v.String(key, "")
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("parser did not return for %q / %q", raw, key)
		}
	})
}
