package blossom

import (
	"github.com/froseb/blossom-match/core"
	"github.com/froseb/blossom-match/matching"
)

// Solve computes a maximum-cardinality matching of g: seed a greedy
// matching, then repeatedly call Search to extend it. A frustrated root's
// entire alternating tree is retired (excluded from future searches) so
// the rest of the graph keeps making progress; the loop ends once no
// exposed, non-removed vertex remains.
//
// Grounded on main.cpp's driver loop: the greedy first pass, the
// find_exposed_node / extend_matching / remove-frustrated-tree cycle, and
// the terminating condition of no exposed nodes left to try.
func Solve(g *core.Graph) *matching.Matching {
	m := greedySeed(g)
	removed := make(map[int]struct{})

	for {
		next, outcome, covered := Search(g, m, removed)
		switch outcome {
		case NoExposedNode:
			return m

		case Frustrated:
			for _, v := range covered {
				removed[v] = struct{}{}
			}

		case Extended:
			if next.Size() <= m.Size() {
				panic("blossom: augmenting search did not grow the matching")
			}
			m = next
		}
	}
}

// greedySeed builds an initial matching by scanning vertices in ascending
// id order and pairing each still-exposed vertex with its first still-
// exposed neighbor. It never needs to backtrack: any greedy matching is a
// valid (if not maximum) matching, and Solve's search loop brings it the
// rest of the way.
//
// Grounded on main.cpp's first pass over the graph before the main search
// loop begins.
func greedySeed(g *core.Graph) *matching.Matching {
	m := matching.New(g.NumNodes())
	for v := 0; v < g.NumNodes(); v++ {
		if !m.IsExposed(v) {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if m.IsExposed(w) {
				m.Match(v, w)
				break
			}
		}
	}
	return m
}
