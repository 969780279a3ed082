package testgraphs

import "github.com/froseb/blossom-match/matching"

// IsValidMatching reports whether every matched edge of m is actually an
// edge of g. It checks edge membership only, not vertex-disjointness:
// Matching stores one mate slot per vertex, and Match leaves it to callers
// to pair only exposed vertices.
func IsValidMatching(g graphEdges, m *matching.Matching) bool {
	for _, e := range m.Edges() {
		if !g.HasEdge(e.From, e.To) {
			return false
		}
	}
	return true
}

// graphEdges is the sliver of core.Graph's API IsValidMatching needs,
// named separately so this file has no import-cycle risk with core.
type graphEdges interface {
	HasEdge(u, v int) bool
}
