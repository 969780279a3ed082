package blossom

import (
	"github.com/froseb/blossom-match/core"
	"github.com/froseb/blossom-match/matching"
)

// search holds every piece of mutable state a single alternating-tree
// search needs. It is built fresh by Search and discarded at the end of
// the call — nothing here outlives one root's search.
type search struct {
	g       *core.Graph
	m       *matching.Matching
	removed map[int]struct{}

	forest *pseudoForest

	// dist and pred are keyed by the raw vertex id a vertex had at the
	// moment it first entered the tree — before any later contraction
	// folded it into a pseudonode. Looking a vertex's *current* distance
	// or predecessor up always goes through forest.RootOf first (distOf,
	// predOf below), which is what lets a blossom's LCA continue to
	// stand in for every vertex the blossom absorbs.
	dist map[int]int
	pred map[int]int

	covered map[int]struct{}
	fr      *frontier

	// hist is the contraction history: hist[i] is the odd cycle folded
	// by the i-th blossom detected in this search, as the directed edges
	// cycleEdges returns. firstCycle maps a vertex to the smallest cycle index that
	// ever absorbed it; largerCycle chains a cycle index to the next
	// larger cycle that later absorbed it, if any. Both are consulted
	// only during unshrinking (augment.go).
	hist        [][]edge
	firstCycle  map[int]int
	largerCycle map[int]int
}

func (s *search) isRemoved(v int) bool {
	_, gone := s.removed[v]
	return gone
}

func (s *search) rootOf(v int) int {
	return s.forest.RootOf(v)
}

func (s *search) distOf(v int) int {
	return s.dist[s.rootOf(v)]
}

func (s *search) predOf(v int) int {
	return s.pred[s.rootOf(v)]
}

// addEdgeToTree records e as a tree edge: v's distance is one more than
// u's, v's predecessor is u, and both endpoints become covered.
//
// Grounded on add_edge_to_tree in maximum_cardinality_matching.cpp.
func (s *search) addEdgeToTree(e edge) {
	s.dist[e.v] = s.distOf(e.u) + 1
	s.pred[e.v] = e.u
	s.covered[e.u] = struct{}{}
	s.covered[e.v] = struct{}{}
}

// addAdjacentEdges scans every neighbor of the now-outer vertex u in three
// passes, queuing candidate tree edges in the frontier:
//
//  1. w already covered and outer, in a different pseudonode — a
//     blossom-closing candidate.
//  2. w not covered and matched — an ordinary two-step tree extension.
//  3. w not covered and exposed — the good edge: an augmenting path.
//
// Each pass re-walks the full neighbor list (rather than folding all three
// checks into one loop) to match the frontier ordering add_adjacent_edges
// produces in the original: later passes must always end up on top of (or,
// for the good edge, override) earlier ones.
func (s *search) addAdjacentEdges(u int) {
	if s.distOf(u)%2 != 0 {
		panic("blossom: addAdjacentEdges called on a non-outer vertex")
	}

	neighbors := s.g.Neighbors(u)
	uRoot := s.rootOf(u)

	for _, w := range neighbors {
		if s.isRemoved(w) || s.rootOf(w) == uRoot {
			continue
		}
		if _, ok := s.covered[w]; ok && s.distOf(w)%2 == 0 {
			s.fr.push(edge{u, w})
		}
	}

	for _, w := range neighbors {
		if s.isRemoved(w) || s.rootOf(w) == uRoot {
			continue
		}
		if _, ok := s.covered[w]; !ok && !s.m.IsExposed(w) {
			s.fr.push(edge{u, w})
		}
	}

	for _, w := range neighbors {
		if s.isRemoved(w) || s.rootOf(w) == uRoot {
			continue
		}
		if _, ok := s.covered[w]; !ok && s.m.IsExposed(w) {
			s.fr.pushGood(edge{u, w})
		}
	}
}
