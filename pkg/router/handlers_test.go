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

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddHandler(t *testing.T) {
	r := New()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"defaults", "", `{"operation":"add","inputs":{"a":0,"b":0},"result":0}`},
		{"negative", "a=-10&b=3", `{"operation":"add","inputs":{"a":-10,"b":3},"result":-7}`},
		{"unparseable falls back", "a=abc&b=2", `{"operation":"add","inputs":{"a":0,"b":2},"result":2}`},
		{"beyond int32 falls back", "a=2147483648&b=1", `{"operation":"add","inputs":{"a":0,"b":1},"result":1}`},
		{"wraps at int32", "a=2147483647&b=1", `{"operation":"add","inputs":{"a":2147483647,"b":1},"result":-2147483648}`},
		{"first occurrence wins", "a=1&a=9&b=1", `{"operation":"add","inputs":{"a":1,"b":1},"result":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(Request{Method: "GET", URL: "/add", Query: tt.query})
			assert.Equal(t, 200, resp.Status)
			assert.Equal(t, tt.want, resp.Body)
		})
	}
}

func TestFactorialHandler(t *testing.T) {
	r := New()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{"default is 5", "", 200, `{"operation":"factorial","input":5,"result":"120"}`},
		{"upper bound", "n=20", 200, `{"operation":"factorial","input":20,"result":"2432902008176640000"}`},
		{"above cap", "n=21", 400, `{"error":"Number must be between 0 and 20"}`},
		{"negative", "n=-1", 400, `{"error":"Number must be between 0 and 20"}`},
		{"huge", "n=9223372036854775807", 400, `{"error":"Number must be between 0 and 20"}`},
		{"garbage uses default", "n=five", 200, `{"operation":"factorial","input":5,"result":"120"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(Request{Method: "GET", URL: "/factorial", Query: tt.query})
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantBody, resp.Body)
		})
	}
}

func TestPrimeHandler(t *testing.T) {
	r := New()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"default is 17", "", `{"operation":"is_prime","input":17,"result":true}`},
		{"composite", "n=91", `{"operation":"is_prime","input":91,"result":false}`},
		{"two", "n=2", `{"operation":"is_prime","input":2,"result":true}`},
		{"one", "n=1", `{"operation":"is_prime","input":1,"result":false}`},
		{"negative uses default", "n=-7", `{"operation":"is_prime","input":17,"result":true}`},
		{"largest uint32 prime", "n=4294967291", `{"operation":"is_prime","input":4294967291,"result":true}`},
		{"beyond uint32 uses default", "n=4294967296", `{"operation":"is_prime","input":17,"result":true}`},
		{"large int64 prime uses default", "n=9223372036854775783", `{"operation":"is_prime","input":17,"result":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(Request{Method: "GET", URL: "/prime", Query: tt.query})
			assert.Equal(t, 200, resp.Status)
			assert.Equal(t, tt.want, resp.Body)
		})
	}
}

func TestFibonacciHandler(t *testing.T) {
	r := New()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{"default is 10", "", 200, `{"operation":"fibonacci","input":10,"result":"55"}`},
		{"zero", "n=0", 200, `{"operation":"fibonacci","input":0,"result":"0"}`},
		{"upper bound", "n=40", 200, `{"operation":"fibonacci","input":40,"result":"102334155"}`},
		{"above cap", "n=41", 400, `{"error":"Number must be between 0 and 40"}`},
		{"negative", "n=-2", 400, `{"error":"Number must be between 0 and 40"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(Request{Method: "GET", URL: "/fibonacci", Query: tt.query})
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantBody, resp.Body)
		})
	}
}

func TestHashHandler(t *testing.T) {
	r := New()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"default input", "", `{"operation":"simple_hash","input":"cloudflare","result":2044937254}`},
		{"empty input", "input=", `{"operation":"simple_hash","input":"","result":5381}`},
		{"malformed escape hashes empty", "input=%zz", `{"operation":"simple_hash","input":"","result":5381}`},
		{"decoded plus", "input=a+", `{"operation":"simple_hash","input":"a ","result":5863142}`},
		{"quotes escaped", "input=%22", `{"operation":"simple_hash","input":"\"","result":177607}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(Request{Method: "GET", URL: "/hash", Query: tt.query})
			assert.Equal(t, 200, resp.Status)
			assert.Equal(t, tt.want, resp.Body)
		})
	}
}

func TestBoundsMessage(t *testing.T) {
	assert.Equal(t, "Number must be between 0 and 20", BoundsMessage(20))
	assert.Equal(t, "Number must be between 0 and 40", BoundsMessage(40))
}
