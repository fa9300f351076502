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

// Package response builds and frames dispatcher responses.
//
// A response travels to the host as one text value with three pipe-delimited
// fields:
//
//	<status>|<content-type>|<body>
//
// The body may itself contain '|'. Hosts must split on the first two
// separators only, which is what Split does.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
)

// Content types a response can carry.
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"
)

// Separator delimits the three wire fields.
const Separator = "|"

// Response is a single dispatcher reply.
type Response struct {
	Status      int    `json:"status" yaml:"status" toml:"status"`
	ContentType string `json:"contentType" yaml:"contentType" toml:"contentType"`
	Body        string `json:"body" yaml:"body" toml:"body"`
}

// errorBody is the fixed error shape.
type errorBody struct {
	Error string `json:"error"`
}

// JSON returns a 200 response carrying a caller-built JSON document.
func JSON(body string) Response {
	return Response{Status: http.StatusOK, ContentType: ContentTypeJSON, Body: body}
}

// HTML returns a 200 response carrying an HTML document.
func HTML(body string) Response {
	return Response{Status: http.StatusOK, ContentType: ContentTypeHTML, Body: body}
}

// Error returns a JSON error response of the form {"error":"<message>"}.
func Error(status int, message string) Response {
	body, err := Marshal(errorBody{Error: message})
	if err != nil {
		// a struct with one string field cannot fail to encode
		body = `{"error":"Internal Server Error"}`
	}
	return Response{Status: status, ContentType: ContentTypeJSON, Body: body}
}

// FromError renders err as an error response. Structured errors map their
// code to a status and expose their message; anything else is a 500.
func FromError(err error) Response {
	se, ok := nerrors.As(err)
	if !ok {
		return Error(http.StatusInternalServerError, "Internal Server Error")
	}
	return Error(StatusFromCode(se.Code), se.Message)
}

// StatusFromCode maps a structured error code to an HTTP-style status.
func StatusFromCode(code nerrors.ErrorCode) int {
	switch code {
	case nerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case nerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case nerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case nerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case nerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Marshal encodes v as compact JSON without HTML escaping and without the
// trailing newline json.Encoder appends. Invalid UTF-8 in strings is
// replaced with U+FFFD by the encoder, so the result is always valid UTF-8.
func Marshal(v any) (string, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode response body: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Encode frames the response as <status>|<content-type>|<body>.
func (r Response) Encode() string {
	var b strings.Builder
	b.Grow(len(r.Body) + len(r.ContentType) + 8)
	b.WriteString(strconv.Itoa(r.Status))
	b.WriteString(Separator)
	b.WriteString(r.ContentType)
	b.WriteString(Separator)
	b.WriteString(r.Body)
	return b.String()
}

// String implements fmt.Stringer.
func (r Response) String() string {
	return r.Encode()
}

// Split parses an encoded response, splitting on the first two separators
// only so the body may contain '|'.
func Split(text string) (Response, error) {
	parts := strings.SplitN(text, Separator, 3)
	if len(parts) != 3 {
		return Response{}, fmt.Errorf("malformed response: expected 3 fields, got %d", len(parts))
	}

	status, err := strconv.Atoi(parts[0])
	if err != nil {
		return Response{}, fmt.Errorf("malformed response status %q: %w", parts[0], err)
	}

	return Response{
		Status:      status,
		ContentType: parts[1],
		Body:        parts[2],
	}, nil
}
