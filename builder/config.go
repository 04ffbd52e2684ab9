// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// config.go - resolved builder configuration and its defaults.
//
// Defaults:
//   - idFn       = DefaultIDFn ("0","1","2",...)
//   - left/right = "L" / "R"
//   - newGraph   = core.NewMapGraph

package builder

import "github.com/katalvlaran/symgraph/core"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; constructors cannot mutate the caller's copy.
type builderConfig struct {
	idFn IDFn

	leftPrefix  string
	rightPrefix string

	// newGraph is used by BuildGraph only; Apply targets a caller's graph.
	newGraph func() core.Graph
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

func newMapGraph() core.Graph { return core.NewMapGraph() }

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		newGraph:    newMapGraph,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
