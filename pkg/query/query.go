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

// Package query extracts named parameters from a raw, already isolated query
// string of the form key=value&key=value.
//
// The parser never fails. Missing, malformed or unparseable parameters fall
// back to the caller's default, which keeps handlers free of error plumbing
// for inputs that are recoverable by definition.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	bindingSeparator  = "&"
	keyValueSeparator = "="
)

// Values is the raw query text without a leading '?'.
type Values string

// Lookup returns the value of the first binding whose text starts with
// name followed by '='. Bindings without '=' are skipped. The value is
// everything after the first '=' and is not decoded.
func (v Values) Lookup(name string) (string, bool) {
	prefix := name + keyValueSeparator
	for binding := range strings.SplitSeq(string(v), bindingSeparator) {
		if !strings.Contains(binding, keyValueSeparator) {
			continue
		}
		if value, ok := strings.CutPrefix(binding, prefix); ok {
			return value, true
		}
	}
	return "", false
}

// Has reports whether a binding for name is present.
func (v Values) Has(name string) bool {
	_, ok := v.Lookup(name)
	return ok
}

// Number parses the named value as a signed decimal integer. Absent or
// unparseable values (including ones that overflow int64) yield def.
func (v Values) Number(name string, def int64) int64 {
	raw, ok := v.Lookup(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Int32 is Number restricted to the int32 range; values outside it are
// treated as unparseable.
func (v Values) Int32(name string, def int32) int32 {
	raw, ok := v.Lookup(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}

// Uint32 parses the named value as an unsigned decimal integer. Values
// outside the uint32 range, including negatives, are treated as
// unparseable.
func (v Values) Uint32(name string, def uint32) uint32 {
	raw, ok := v.Lookup(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return def
	}
	return uint32(n)
}

// String URL-decodes the named value ('+' becomes a space, %HH becomes the
// byte HH). A malformed percent sequence yields the empty string. An absent
// parameter yields def.
func (v Values) String(name, def string) string {
	raw, ok := v.Lookup(name)
	if !ok {
		return def
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return decoded
}
