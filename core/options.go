// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for bulk load (Load/LoadFile).
//
// Contract:
//   - Options are functional (type LoadOption func(*loadConfig)).
//   - Option constructors validate and PANIC on meaningless inputs (nil logger,
//     nil backend factory, non-positive sizes). Load itself never panics.
//   - Options apply left-to-right; later options override earlier ones.

package core

import (
	"io"
	"log/slog"
)

// defaultMaxLineSize bounds a single record; longer lines fail with ErrSourceRead.
const defaultMaxLineSize = 1 << 20

// initialLineBuffer is the scanner's starting buffer; it grows up to maxLineSize.
const initialLineBuffer = 64 * 1024

// LoadOption customizes a bulk load.
type LoadOption func(*loadConfig)

// loadConfig is resolved once per Load call and passed by value.
type loadConfig struct {
	logger      *slog.Logger
	newGraph    func() Graph
	maxLineSize int
}

// newLoadConfig applies opts over deterministic defaults:
// discard logger, MapGraph backing, 1 MiB line limit.
func newLoadConfig(opts ...LoadOption) loadConfig {
	cfg := loadConfig{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		newGraph:    func() Graph { return NewMapGraph() },
		maxLineSize: defaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes load diagnostics (per-record debug lines and a summary)
// to l. Panics on nil.
func WithLogger(l *slog.Logger) LoadOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *loadConfig) { c.logger = l }
}

// WithBackend selects the Graph implementation the load populates, e.g.
//
//	core.WithBackend(func() core.Graph { return core.NewIndexGraph() })
//
// The factory must return a fresh, empty graph on every call. Panics on nil.
func WithBackend(fn func() Graph) LoadOption {
	if fn == nil {
		panic("core: WithBackend(nil)")
	}
	return func(c *loadConfig) { c.newGraph = fn }
}

// WithMaxLineSize caps the length of a single record in bytes.
// Panics if n <= 0.
func WithMaxLineSize(n int) LoadOption {
	if n <= 0 {
		panic("core: WithMaxLineSize(n<=0)")
	}
	return func(c *loadConfig) { c.maxLineSize = n }
}
