package blossom

import "github.com/spakin/disjoint"

// cycleEdges reconstructs the odd cycle closed by tree edge (v1,v2) — both
// outer, in different pseudonodes — by walking each side's predecessor
// chain up toward their lowest common ancestor, always advancing whichever
// side is currently deeper. It returns the cycle as a sequence of directed
// tree edges (in a consistent walk order, not raw traversal order) and the
// LCA itself.
//
// Grounded on cycle_edges in maximum_cardinality_matching.cpp.
func (s *search) cycleEdges(v1, v2 int) ([]edge, int) {
	initialV1, initialV2 := v1, v2
	var part1, part2 []edge

	for s.rootOf(v1) != s.rootOf(v2) {
		if s.distOf(v1) > s.distOf(v2) {
			part1 = append(part1, edge{s.rootOf(v1), s.predOf(v1)})
			v1 = s.predOf(v1)
		} else {
			part2 = append(part2, edge{s.predOf(v2), s.rootOf(v2)})
			v2 = s.predOf(v2)
		}
	}
	lca := s.rootOf(v1)

	cycle := make([]edge, 0, len(part1)+len(part2)+1)
	for i := len(part2) - 1; i >= 0; i-- {
		cycle = append(cycle, part2[i])
	}
	cycle = append(cycle, edge{initialV2, initialV1})
	cycle = append(cycle, part1...)

	if len(cycle)%2 != 1 {
		panic("blossom: reconstructed cycle has even length")
	}

	return cycle, lca
}

// contract folds the odd cycle closed by (v1,v2) into a single pseudonode
// rooted at the cycle's LCA, recording the cycle in the search's
// contraction history for later unshrinking. It returns the vertices that
// were inner before the fold and are now outer, whose adjacent edges must
// be (re)scanned by the caller.
//
// Grounded on the blossom-contraction branch of extend_tree in
// maximum_cardinality_matching.cpp (the add_node_to_pseudonode /
// merge_pseudonodes loop over cycle_result.first).
func (s *search) contract(v1, v2 int) []int {
	cycle, lca := s.cycleEdges(v1, v2)
	cycleIdx := len(s.hist)
	s.hist = append(s.hist, cycle)

	var newlyOuter []int
	for _, e := range cycle {
		if s.distOf(e.u)%2 == 1 {
			newlyOuter = append(newlyOuter, e.u)
		}
	}

	var anchor *disjoint.Element
	for _, e := range cycle {
		x := e.u
		if !s.forest.has(x) {
			anchor = s.forest.addSingleton(x, anchor, lca, cycleIdx)
			s.firstCycle[x] = cycleIdx
		} else {
			prevCycle := s.forest.cycleIdxOf(x)
			s.largerCycle[prevCycle] = cycleIdx
			anchor = s.forest.merge(x, anchor, lca, cycleIdx)
		}
	}

	for _, e := range cycle {
		if s.distOf(e.u)%2 != 0 {
			panic("blossom: cycle member still odd after contraction")
		}
	}

	return newlyOuter
}
