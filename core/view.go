// File: view.go
// Role: Diagnostic rendering shared by every backing.
// Format:
//   - One line per vertex in Vertices() order: "label: n1 n2 ...\n".
//   - Neighbors in AdjacentTo() order.
//   - Not machine-parseable; stable only as far as the backing's order is.

package core

import "strings"

// Format renders g as human-readable text, one line per vertex.
//
// An empty graph renders as "". A nil g renders as "<nil>".
// Complexity: O(V + E) plus the backing's iteration cost.
func Format(g Graph) string {
	if g == nil {
		return "<nil>"
	}

	var sb strings.Builder
	for _, v := range g.Vertices() {
		sb.WriteString(v)
		sb.WriteByte(':')
		nbrs, err := g.AdjacentTo(v)
		if err != nil {
			// unreachable for a conforming backing
			sb.WriteString(" <")
			sb.WriteString(err.Error())
			sb.WriteString(">\n")
			continue
		}
		for _, w := range nbrs {
			sb.WriteByte(' ')
			sb.WriteString(w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer via Format.
func (g *MapGraph) String() string { return Format(g) }

// String implements fmt.Stringer via Format.
func (g *IndexGraph) String() string { return Format(g) }
