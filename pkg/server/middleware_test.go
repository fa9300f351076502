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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newTestServer(limit rate.Limit, burst int) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

func TestRequestIDMiddleware_GeneratesNewID(t *testing.T) {
	s := newTestServer(100, 200)

	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/add", nil))

	if _, err := uuid.Parse(captured); err != nil {
		t.Errorf("expected valid UUID, got: %q", captured)
	}
	if rec.Header().Get("X-Request-Id") != captured {
		t.Errorf("expected X-Request-Id header to be %s, got %s",
			captured, rec.Header().Get("X-Request-Id"))
	}
}

func TestRequestIDMiddleware_UsesProvidedID(t *testing.T) {
	s := newTestServer(100, 200)

	provided := uuid.New().String()
	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestID(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/add", nil)
	req.Header.Set("X-Request-Id", provided)
	handler(httptest.NewRecorder(), req)

	if captured != provided {
		t.Errorf("expected request ID %s, got %s", provided, captured)
	}
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	s := newTestServer(100, 200)

	var captured string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestID(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/add", nil)
	req.Header.Set("X-Request-Id", "not-a-valid-uuid")
	handler(httptest.NewRecorder(), req)

	if captured == "not-a-valid-uuid" {
		t.Error("expected invalid ID to be replaced")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Errorf("expected generated UUID, got %q", captured)
	}
}

func TestRequestID_OutsideChain(t *testing.T) {
	if got := RequestID(httptest.NewRequest(http.MethodGet, "/", nil)); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}

func TestRateLimitMiddleware_AllowsRequests(t *testing.T) {
	s := newTestServer(100, 200)

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/add", nil))

	if !called {
		t.Error("expected handler to be called")
	}
	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header", h)
		}
	}
}

func TestRateLimitMiddleware_RejectsWhenExceeded(t *testing.T) {
	s := newTestServer(0, 0)

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/add", nil))

	if called {
		t.Error("handler should not be called when rate limited")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header when rate limited")
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error: %v", err)
	}
	if resp.Code != "RATE_LIMIT_EXCEEDED" || !resp.Retryable {
		t.Errorf("unexpected error envelope: %+v", resp)
	}
}

func TestPanicRecoveryMiddleware_RecoversPanic(t *testing.T) {
	s := newTestServer(100, 200)

	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/factorial", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Code != "INTERNAL" || body.Message != "Internal server error" {
		t.Errorf("unexpected envelope %+v", body)
	}
	if body.Details["method"] != http.MethodGet || body.Details["path"] != "/factorial" {
		t.Errorf("expected method and path details, got %v", body.Details)
	}
	if _, leaked := body.Details["error"]; leaked {
		t.Error("panic value must not reach the response")
	}
}

func TestPanicRecoveryMiddleware_RepanicsAbort(t *testing.T) {
	s := newTestServer(100, 200)

	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestLoggingMiddleware_TracksStatusCode(t *testing.T) {
	s := newTestServer(100, 200)

	tests := []struct {
		name           string
		expectedStatus int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"NotFound", http.StatusNotFound},
		{"MethodNotAllowed", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := s.loggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.expectedStatus)
			})

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/add", nil))

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestMiddlewareChain_SetsHeadersAndContext(t *testing.T) {
	s := newTestServer(100, 200)

	var hasRequestID bool
	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		hasRequestID = RequestID(r) != ""
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/add", nil))

	if !hasRequestID {
		t.Error("expected request ID in context")
	}
	for _, header := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if rec.Header().Get(header) == "" {
			t.Errorf("expected header %s to be set", header)
		}
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte("x"))

	if rw.Status() != http.StatusNotFound || rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 to stick, got %d/%d", rw.Status(), rec.Code)
	}
	if rw.Unwrap() != rec {
		t.Error("expected Unwrap to return the underlying writer")
	}
}
