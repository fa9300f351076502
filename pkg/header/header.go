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

package header

import (
	"time"
)

// APIVersion is the schema version of documents written by numerics.
const APIVersion = "numerics.nvidia.com/v1alpha1"

// Kind represents the type of a serialized numerics document.
type Kind string

const (
	KindCallResult  Kind = "CallResult"
	KindBatchResult Kind = "BatchResult"
)

// Metadata keys set by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCallResult, KindBatchResult:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// Header contains the kind, schema version and metadata of a document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty" toml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty" toml:"metadata,omitempty"`
}

// New returns a Header of the given kind stamped with the current UTC time
// and the producing tool's version, then applies opts.
func New(kind Kind, version string, opts ...Option) Header {
	var h Header
	h.Init(kind, version, time.Now())
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Init resets h to kind at APIVersion and records now and version in
// Metadata.
func (h *Header) Init(kind Kind, version string, now time.Time) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: now.UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}
