// SPDX-License-Identifier: MIT
// Package: symgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Implementations attach context with %w, prefixed by the method name.
//   - Constructors never panic; option constructors do on meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition
// size) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilGraph indicates Apply was handed a nil target graph.
var ErrNilGraph = errors.New("builder: nil graph")

// ErrConstructFailed indicates a malformed constructor list (a nil entry).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates FromName was given a name it does not know,
// or the wrong number of size arguments for a known one.
var ErrUnknownTopology = errors.New("builder: unknown topology")
