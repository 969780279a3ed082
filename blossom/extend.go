package blossom

import (
	"sort"

	"github.com/froseb/blossom-match/core"
	"github.com/froseb/blossom-match/matching"
)

// noAugment marks "this edge did not complete an augmenting path" as the
// return value of extendTree.
const noAugment = -1

// Outcome classifies what a single Search call accomplished.
type Outcome int

const (
	// Extended means a strictly larger matching was produced.
	Extended Outcome = iota
	// Frustrated means the root's whole alternating tree was exhausted
	// with no augmenting path; every covered vertex must be retired.
	Frustrated
	// NoExposedNode means there was nothing left to search from.
	NoExposedNode
)

// extendTree handles one popped frontier edge:
//
//   - v unseen and exposed: augmenting path found, return its endpoint.
//   - v unseen and matched: extend the tree by two (v, then v's mate) and
//     scan the mate's neighbors.
//   - v seen, outer, in a different pseudonode: close and contract a
//     blossom, then rescan every vertex the contraction promoted to outer.
//   - anything else (v inner, or v already in u's own pseudonode): stale
//     frontier entry, discarded with no state change.
func (s *search) extendTree(e edge) int {
	if s.distOf(e.u)%2 != 0 {
		panic("blossom: extendTree called with a non-outer u")
	}
	if s.isRemoved(e.u) || s.isRemoved(e.v) {
		panic("blossom: extendTree touched a removed vertex")
	}

	_, seen := s.dist[e.v]
	switch {
	case !seen && s.m.IsExposed(e.v):
		s.addEdgeToTree(e)
		return e.v

	case !seen:
		s.addEdgeToTree(e)
		mateEdge := edge{e.v, s.m.Mate(e.v)}
		s.addEdgeToTree(mateEdge)
		s.addAdjacentEdges(mateEdge.v)

	case s.distOf(e.v)%2 == 0 && s.rootOf(e.u) != s.rootOf(e.v):
		for _, v := range s.contract(e.u, e.v) {
			s.addAdjacentEdges(v)
		}
	}

	return noAugment
}

// Search runs one alternating-tree search from the lowest-id exposed,
// non-removed vertex. On success it returns a matching one edge
// larger than m. On frustration it returns every vertex the search covered
// (including the root), which the driver must retire. If no exposed
// vertex remains at all, it reports NoExposedNode.
func Search(g *core.Graph, m *matching.Matching, removed map[int]struct{}) (*matching.Matching, Outcome, []int) {
	root := -1
	for v := 0; v < m.NumNodes(); v++ {
		if _, gone := removed[v]; gone {
			continue
		}
		if m.IsExposed(v) {
			root = v
			break
		}
	}
	if root == -1 {
		return nil, NoExposedNode, nil
	}

	s := &search{
		g:           g,
		m:           m,
		removed:     removed,
		forest:      newPseudoForest(g.NumNodes()),
		dist:        map[int]int{root: 0},
		pred:        map[int]int{root: root},
		covered:     map[int]struct{}{},
		fr:          newFrontier(),
		firstCycle:  map[int]int{},
		largerCycle: map[int]int{},
	}
	s.covered[root] = struct{}{}
	s.addAdjacentEdges(root)

	for !s.fr.empty() {
		elem := s.fr.next()
		e := elem.Value.(edge)
		if endpoint := s.extendTree(e); endpoint != noAugment {
			return s.augment(root, endpoint), Extended, nil
		}
		s.fr.remove(elem)
	}

	covered := make([]int, 0, len(s.covered))
	for v := range s.covered {
		covered = append(covered, v)
	}
	sort.Ints(covered)

	return nil, Frustrated, covered
}
