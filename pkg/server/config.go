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
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/wasm-numerics/pkg/defaults"
	"golang.org/x/time/rate"
)

// Environment variables read by NewConfig.
const (
	EnvPort            = "PORT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Application handlers keyed by mux pattern
	Handlers map[string]http.HandlerFunc

	// Listener
	Address string
	Port    int

	// Rate limiting
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Limits and timeouts
	MaxHeaderBytes    int
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns defaults from pkg/defaults overlaid with environment
// overrides. Unparseable or non-positive overrides are ignored.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              8080,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		MaxHeaderBytes:    defaults.ServerMaxHeaderBytes,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v, ok := envInt(EnvPort); ok && v <= 65535 {
		cfg.Port = v
	}

	// Lets operators match the orchestrator's termination grace period.
	if v, ok := envInt(EnvShutdownTimeout); ok {
		cfg.ShutdownTimeout = time.Duration(v) * time.Second
	}

	if v, ok := envInt(EnvRateLimit); ok {
		cfg.RateLimit = rate.Limit(v)
	}

	if v, ok := envInt(EnvRateLimitBurst); ok {
		cfg.RateLimitBurst = v
	}

	return cfg
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("ignoring invalid environment override", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}
