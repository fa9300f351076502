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

// Package version holds build information stamped in with ldflags:
//
//	go build -ldflags "-X github.com/NVIDIA/wasm-numerics/pkg/version.version=1.2.0 \
//	    -X github.com/NVIDIA/wasm-numerics/pkg/version.commit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

var (
	version = "dev"
	commit  = unknown
	date    = unknown
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version" yaml:"version" toml:"version"`
	Commit  string `json:"commit" yaml:"commit" toml:"commit"`
	Date    string `json:"date" yaml:"date" toml:"date"`
}

// Get returns the stamped build information. When the commit was not
// stamped, the VCS revision recorded by the Go toolchain is used instead.
func Get() Info {
	info := Info{Version: version, Commit: commit, Date: date}
	if info.Commit != unknown {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = shortRevision(s.Value)
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String renders Info for --version output.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
