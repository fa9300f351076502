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
	"log/slog"
	"net/http"
	"sort"
	"strings"

	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
	"github.com/NVIDIA/wasm-numerics/pkg/query"
	"github.com/NVIDIA/wasm-numerics/pkg/response"
)

const (
	// DefaultImplementation is reported by /status.
	DefaultImplementation = "go"

	// DefaultMessage is reported by /status.
	DefaultMessage = "Numeric kernels are ready"

	// DefaultTimestamp is reported by /status when the host supplies none.
	DefaultTimestamp = "2024-01-01T00:00:00Z"
)

// Fixed error messages.
const (
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgNotFound         = "Not Found"
)

// Request is a single dispatcher invocation. URL may carry a query after
// '?'; only the part before it is used as the path. Query is the isolated
// query string without a leading '?'. Timestamp is an optional host clock
// reading reported by /status.
type Request struct {
	Method    string `json:"method" yaml:"method" toml:"method"`
	URL       string `json:"url" yaml:"url" toml:"url"`
	Query     string `json:"query,omitempty" yaml:"query,omitempty" toml:"query,omitempty"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty" toml:"timestamp,omitempty"`
}

// HandlerFunc serves one path.
type HandlerFunc func(req Request, q query.Values) (response.Response, error)

// Option configures a Router.
type Option func(*Router)

// WithImplementation sets the implementation name reported by /status.
func WithImplementation(name string) Option {
	return func(r *Router) {
		r.implementation = name
	}
}

// WithMessage sets the message reported by /status.
func WithMessage(msg string) Option {
	return func(r *Router) {
		r.message = msg
	}
}

// WithTimestamp sets the timestamp /status reports when a request carries none.
func WithTimestamp(ts string) Option {
	return func(r *Router) {
		r.timestamp = ts
	}
}

// WithLandingPage replaces the HTML served at /.
func WithLandingPage(html string) Option {
	return func(r *Router) {
		r.landing = html
	}
}

// Router dispatches requests to path handlers.
type Router struct {
	routes         map[string]HandlerFunc
	implementation string
	message        string
	timestamp      string
	landing        string
}

// New returns a Router with the standard endpoint table.
func New(opts ...Option) *Router {
	r := &Router{
		implementation: DefaultImplementation,
		message:        DefaultMessage,
		timestamp:      DefaultTimestamp,
		landing:        LandingPage,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.routes = map[string]HandlerFunc{
		"/":          r.handleLanding,
		"/status":    r.handleStatus,
		"/add":       handleAdd,
		"/factorial": handleFactorial,
		"/prime":     handlePrime,
		"/fibonacci": handleFibonacci,
		"/hash":      handleHash,
	}

	return r
}

// PathOf returns the URL text before the first '?'.
func PathOf(url string) string {
	path, _, _ := strings.Cut(url, "?")
	return path
}

// Has reports whether path is bound to a handler.
func (r *Router) Has(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Routes lists the served endpoints as "GET <path>", sorted by path.
func (r *Router) Routes() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	routes := make([]string, 0, len(paths))
	for _, p := range paths {
		routes = append(routes, http.MethodGet+" "+p)
	}
	return routes
}

// Dispatch routes req to its handler and always returns a response; handler
// errors are rendered through response.FromError.
func (r *Router) Dispatch(req Request) response.Response {
	path := PathOf(req.URL)

	resp, err := r.route(req, path)
	if err != nil {
		slog.Debug("request rejected",
			"method", req.Method,
			"path", path,
			"code", nerrors.CodeOf(err),
			"error", err,
		)
		return response.FromError(err)
	}

	slog.Debug("request handled",
		"method", req.Method,
		"path", path,
		"status", resp.Status,
	)
	return resp
}

// Handle dispatches and returns the encoded <status>|<content-type>|<body>.
func (r *Router) Handle(method, url, rawQuery string) string {
	return r.Dispatch(Request{Method: method, URL: url, Query: rawQuery}).Encode()
}

func (r *Router) route(req Request, path string) (response.Response, error) {
	if req.Method != http.MethodGet {
		return response.Response{}, nerrors.NewWithContext(nerrors.ErrCodeMethodNotAllowed,
			MsgMethodNotAllowed, map[string]any{"method": req.Method})
	}

	h, ok := r.routes[path]
	if !ok {
		return response.Response{}, nerrors.NewWithContext(nerrors.ErrCodeNotFound,
			MsgNotFound, map[string]any{"path": path})
	}

	return h(req, query.Values(req.Query))
}
