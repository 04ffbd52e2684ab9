// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Constructors themselves never panic.
//   - WithPartitionPrefix treats an empty side as "keep the default".

package builder

import "github.com/katalvlaran/symgraph/core"

// BuilderOption mutates a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex-label generator: index -> label.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix), e.g. "v0","v1".
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithPartitionPrefix sets the label prefixes for CompleteBipartite sides.
// An empty value keeps that side's default. Panics if both resolve to the same
// prefix, since the two sides would then share labels.
func WithPartitionPrefix(left, right string) BuilderOption {
	l, r := left, right
	if l == "" {
		l = defaultLeftPrefix
	}
	if r == "" {
		r = defaultRightPrefix
	}
	if l == r {
		panic("builder: WithPartitionPrefix: left and right prefixes must differ")
	}
	return func(c *builderConfig) {
		c.leftPrefix = l
		c.rightPrefix = r
	}
}

// WithBackend selects the graph implementation BuildGraph allocates.
// Panics on nil.
func WithBackend(newGraph func() core.Graph) BuilderOption {
	if newGraph == nil {
		panic("builder: WithBackend(nil)")
	}
	return func(c *builderConfig) {
		c.newGraph = newGraph
	}
}
