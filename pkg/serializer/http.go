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
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/wasm-numerics/pkg/defaults"
	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
)

// RespondJSON writes data as JSON with statusCode. The body is encoded
// before any header is written.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// HttpReaderUserAgent is sent with every HttpReader request.
const HttpReaderUserAgent = "numerics-serializer/1.0"

// maxRemoteBytes caps the size of a fetched input document.
const maxRemoteBytes = 16 << 20

// HttpReaderOption configures an HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches documents over HTTP.
type HttpReader struct {
	UserAgent          string
	TotalTimeout       time.Duration
	ConnectTimeout     time.Duration
	InsecureSkipVerify bool
	Client             *http.Client
}

func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.TotalTimeout = timeout
	}
}

func WithConnectTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.ConnectTimeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) HttpReaderOption {
	return func(r *HttpReader) {
		r.InsecureSkipVerify = skip
	}
}

// WithClient replaces the client entirely; timeout options are then ignored.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader returns an HttpReader with timeouts from pkg/defaults.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent:      HttpReaderUserAgent,
		TotalTimeout:   defaults.HTTPClientTimeout,
		ConnectTimeout: defaults.HTTPConnectTimeout,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.Client == nil {
		r.Client = &http.Client{
			Timeout:   r.TotalTimeout,
			Transport: r.transport(),
		}
	}
	return r
}

func (r *HttpReader) transport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   r.ConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: r.InsecureSkipVerify, //nolint:gosec // opt-in via flag
		},
	}
}

// ReadWithContext fetches url and returns the body. Non-200 responses are
// errors.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if r.Client == nil {
		return nil, fmt.Errorf("http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, nerrors.WrapWithContext(nerrors.ErrCodeUnavailable, "http request failed", err,
			map[string]any{"url": url})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nerrors.NewWithContext(nerrors.ErrCodeUnavailable, "failed to fetch data",
			map[string]any{"url": url, "status": resp.StatusCode})
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body from %s: %w", url, err)
	}
	return data, nil
}
