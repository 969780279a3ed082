package blossom

import "github.com/spakin/disjoint"

// pseudoMeta is the payload carried by the representative element of each
// contracted blossom: its root vertex (the lowest common ancestor that
// closed the cycle) and the index, into the search's contraction history,
// of the most recent cycle that folded this set of vertices together.
type pseudoMeta struct {
	rootVertex int
	cycleIdx   int
}

// pseudoForest is a union-find structure: vertices start in no pseudonode
// at all (their root is themselves), and folding an odd cycle into a
// blossom unions every vertex on that cycle into one set, stamped with the
// cycle's lowest common ancestor and index.
//
// Grounded on maximum_cardinality_matching.cpp's Pseudonode/merge_pseudonodes/
// add_node_to_pseudonode trio, reworked onto github.com/spakin/disjoint — a
// real union-find library in place of a hand-rolled one.
type pseudoForest struct {
	elems []*disjoint.Element // nil until v joins a pseudonode
}

func newPseudoForest(n int) *pseudoForest {
	return &pseudoForest{elems: make([]*disjoint.Element, n)}
}

func (f *pseudoForest) has(v int) bool {
	return f.elems[v] != nil
}

// RootOf returns the lowest common ancestor of v's enclosing pseudonode, or
// v itself if v has never been folded into one.
func (f *pseudoForest) RootOf(v int) int {
	if f.elems[v] == nil {
		return v
	}
	return f.elems[v].Find().Payload.(*pseudoMeta).rootVertex
}

// cycleIdxOf returns the index of the most recent cycle that absorbed v, or
// -1 if v has never been folded into a pseudonode.
func (f *pseudoForest) cycleIdxOf(v int) int {
	if f.elems[v] == nil {
		return -1
	}
	return f.elems[v].Find().Payload.(*pseudoMeta).cycleIdx
}

// addSingleton makes v a first-time pseudonode member. anchor is the
// element accumulated so far while folding the current cycle (nil the
// first time a fresh vertex is seen); the returned element becomes the new
// anchor for subsequent calls against the same cycle.
func (f *pseudoForest) addSingleton(v int, anchor *disjoint.Element, rootVertex, cycleIdx int) *disjoint.Element {
	e := disjoint.NewElement()
	e.Payload = &pseudoMeta{rootVertex: rootVertex, cycleIdx: cycleIdx}
	f.elems[v] = e

	if anchor == nil {
		return e
	}
	disjoint.Union(anchor, e)
	joined := anchor.Find()
	joined.Payload = &pseudoMeta{rootVertex: rootVertex, cycleIdx: cycleIdx}
	return joined
}

// merge folds the existing pseudonode containing v into anchor, re-stamping
// the surviving representative with the new root and cycle index. Like
// addSingleton, it returns the anchor to use for the rest of the cycle.
func (f *pseudoForest) merge(v int, anchor *disjoint.Element, rootVertex, cycleIdx int) *disjoint.Element {
	existing := f.elems[v].Find()

	if anchor == nil {
		anchor = existing
	} else if anchor != existing {
		disjoint.Union(anchor, existing)
		anchor = anchor.Find()
	}
	anchor.Payload = &pseudoMeta{rootVertex: rootVertex, cycleIdx: cycleIdx}
	return anchor
}
