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

package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
)

func TestHelpers(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "json",
			resp: JSON(`{"result":1}`),
			want: `200|application/json|{"result":1}`,
		},
		{
			name: "html",
			resp: HTML("<p>hi</p>"),
			want: "200|text/html|<p>hi</p>",
		},
		{
			name: "error",
			resp: Error(http.StatusNotFound, "Not Found"),
			want: `404|application/json|{"error":"Not Found"}`,
		},
		{
			name: "error with bounds message",
			resp: Error(http.StatusBadRequest, "Number must be between 0 and 20"),
			want: `400|application/json|{"error":"Number must be between 0 and 20"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.Encode())
			assert.Equal(t, tt.want, tt.resp.String())
		})
	}
}

func TestSplitKeepsPipesInBody(t *testing.T) {
	encoded := HTML("a|b|c").Encode()

	got, err := Split(encoded)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, got.Status)
	assert.Equal(t, ContentTypeHTML, got.ContentType)
	assert.Equal(t, "a|b|c", got.Body)
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"one field", "200"},
		{"two fields", "200|text/html"},
		{"non numeric status", "ok|text/html|body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestSplitEmptyBody(t *testing.T) {
	got, err := Split("200|application/json|")
	require.NoError(t, err)
	assert.Equal(t, "", got.Body)
}

func TestMarshal(t *testing.T) {
	body, err := Marshal(struct {
		Input  string `json:"input"`
		Result uint32 `json:"result"`
	}{Input: "<a&b>", Result: 7})
	require.NoError(t, err)
	assert.Equal(t, `{"input":"<a&b>","result":7}`, body)
}

func TestMarshalInvalidUTF8(t *testing.T) {
	body, err := Marshal(map[string]string{"input": "\xff\xfe"})
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(body))
	assert.True(t, json.Valid([]byte(body)))
}

func TestMarshalUnsupported(t *testing.T) {
	_, err := Marshal(make(chan int))
	assert.Error(t, err)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "method not allowed",
			err:  nerrors.New(nerrors.ErrCodeMethodNotAllowed, "Method Not Allowed"),
			want: `405|application/json|{"error":"Method Not Allowed"}`,
		},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("dispatch: %w", nerrors.New(nerrors.ErrCodeNotFound, "Not Found")),
			want: `404|application/json|{"error":"Not Found"}`,
		},
		{
			name: "internal",
			err:  nerrors.New(nerrors.ErrCodeInternal, "Null pointer received"),
			want: `500|application/json|{"error":"Null pointer received"}`,
		},
		{
			name: "plain error hides detail",
			err:  fmt.Errorf("boom"),
			want: `500|application/json|{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromError(tt.err).Encode())
		})
	}
}

func TestStatusFromCode(t *testing.T) {
	tests := []struct {
		code nerrors.ErrorCode
		want int
	}{
		{nerrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{nerrors.ErrCodeNotFound, http.StatusNotFound},
		{nerrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{nerrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{nerrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{nerrors.ErrCodeInternal, http.StatusInternalServerError},
		{nerrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusFromCode(tt.code); got != tt.want {
			t.Errorf("StatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
