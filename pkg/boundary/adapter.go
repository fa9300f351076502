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

package boundary

import (
	"log/slog"

	"golang.org/x/text/encoding/unicode"

	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
	"github.com/NVIDIA/wasm-numerics/pkg/response"
	"github.com/NVIDIA/wasm-numerics/pkg/router"
)

// MsgNullPointer is the 500 message for a null inbound argument.
const MsgNullPointer = "Null pointer received"

// Adapter turns host arguments into router requests.
type Adapter struct {
	router *router.Router
}

// NewAdapter returns an Adapter backed by r. A nil r gets a default router.
func NewAdapter(r *router.Router) *Adapter {
	if r == nil {
		r = router.New()
	}
	return &Adapter{router: r}
}

var defaultAdapter = NewAdapter(nil)

// Default returns the process-wide adapter used by exported entry points.
func Default() *Adapter {
	return defaultAdapter
}

// Handle dispatches a request given as nullable host strings and returns the
// encoded response.
func (a *Adapter) Handle(method, url, query *string) string {
	return a.HandleAt(method, url, query, "")
}

// HandleAt is Handle with a host clock reading for /status.
func (a *Adapter) HandleAt(method, url, query *string, timestamp string) string {
	if method == nil || url == nil || query == nil {
		return nullResponse(method == nil, url == nil, query == nil)
	}
	return a.dispatch([]byte(*method), []byte(*url), []byte(*query), []byte(timestamp))
}

// HandleBytes dispatches raw host buffers. A nil slice is a null pointer; an
// empty non-nil slice is an empty string.
func (a *Adapter) HandleBytes(method, url, query []byte) string {
	return a.HandleBytesAt(method, url, query, nil)
}

// HandleBytesAt is HandleBytes with a host clock reading for /status.
func (a *Adapter) HandleBytesAt(method, url, query, timestamp []byte) string {
	if method == nil || url == nil || query == nil {
		return nullResponse(method == nil, url == nil, query == nil)
	}
	return a.dispatch(method, url, query, timestamp)
}

func (a *Adapter) dispatch(method, url, query, timestamp []byte) string {
	req := router.Request{
		Method:    DecodeText(method),
		URL:       DecodeText(url),
		Query:     DecodeText(query),
		Timestamp: DecodeText(timestamp),
	}
	return a.router.Dispatch(req).Encode()
}

func nullResponse(method, url, query bool) string {
	err := nerrors.NewWithContext(nerrors.ErrCodeInternal, MsgNullPointer, map[string]any{
		"method": method,
		"url":    url,
		"query":  query,
	})
	slog.Debug("null argument at boundary", "error", err, "context", err.Context)

	return response.FromError(err).Encode()
}

// DecodeText converts host bytes to a string, replacing invalid UTF-8 with
// U+FFFD.
func DecodeText(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// rune conversion substitutes U+FFFD as well
		return string([]rune(string(b)))
	}
	return string(out)
}
