// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Bulk construction from delimited text (Load, LoadFile).
// Policy:
//   - Records are processed in source order; fields left to right.
//   - Any failure returns a nil Graph, never a partially built one.
//   - Reads are synchronous and sequential; no retries.

package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load builds a graph from delimited text.
//
// Record format:
//   - One record per line; fields are separated by the literal string delim.
//   - Field 0 is the hub; AddEdge(hub, f) is called for each following field.
//   - Trailing empty fields are dropped, so "A B " and "A B" are equivalent.
//   - A record with fewer than two fields adds nothing (not even the hub).
//   - CRLF line endings are accepted.
//
// Errors:
//   - ErrEmptyDelimiter: delim == "" (nothing is read).
//   - ErrSourceRead: r failed, or a line exceeded the configured maximum; the
//     message carries the 1-based line number being read.
//   - ErrLoopNotAllowed: a record pairs the hub with itself; carries the line number.
//
// On error the returned Graph is nil.
// Complexity: O(total input size) plus the backing's AddEdge cost per field.
func Load(r io.Reader, delim string, opts ...LoadOption) (Graph, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}
	cfg := newLoadConfig(opts...)
	g := cfg.newGraph()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(initialLineBuffer, cfg.maxLineSize)), cfg.maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		fields := splitRecord(sc.Text(), delim)
		if len(fields) < 2 {
			cfg.logger.Debug("record has no neighbors", "line", line, "fields", len(fields))
			continue
		}
		hub := fields[0]
		for _, w := range fields[1:] {
			if err := g.AddEdge(hub, w); err != nil {
				return nil, fmt.Errorf("core: load line %d: AddEdge(%q, %q): %w", line, hub, w, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrSourceRead, line+1, err)
	}

	cfg.logger.Debug("graph loaded",
		"lines", line,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	return g, nil
}

// LoadFile opens path and delegates to Load.
// An open failure wraps both ErrSourceRead and the underlying *fs.PathError.
func LoadFile(path, delim string, opts ...LoadOption) (Graph, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	defer f.Close()

	g, err := Load(f, delim, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// splitRecord splits line on delim and drops trailing empty fields.
func splitRecord(line, delim string) []string {
	fields := strings.Split(line, delim)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return fields
}
