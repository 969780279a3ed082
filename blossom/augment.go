package blossom

import "github.com/froseb/blossom-match/matching"

// augment walks the augmenting path found from root to endpoint and builds
// the next matching: a fresh copy with every matched edge along that path
// flipped, every nested blossom it passes through unshrunk, and every
// untouched edge of the old matching carried over.
//
// Grounded on the augmenting-path branch of extend_matching in
// maximum_cardinality_matching.cpp.
func (s *search) augment(root, endpoint int) *matching.Matching {
	out := matching.New(s.m.NumNodes())

	current := endpoint
	for {
		if s.distOf(current)%2 != 1 {
			panic("blossom: augmenting walk reached a non-inner vertex")
		}
		p := s.predOf(current)
		out.Match(s.rootOf(current), p)
		s.unshrinkSubcycles(p, len(s.hist), out)

		if s.rootOf(p) == root {
			break
		}
		current = s.predOf(current)
		current = s.predOf(current)
	}

	// Carry over every edge of the old matching neither endpoint of
	// which the augmenting path touched. Per the design's resolution of
	// the open question on this step: skip a pair unless BOTH endpoints
	// are still exposed in out, rather than trusting that an exposed v
	// implies its old mate is too.
	for v := 0; v < s.m.NumNodes(); v++ {
		mv := s.m.Mate(v)
		if mv <= v {
			continue
		}
		if out.IsExposed(v) && out.IsExposed(mv) {
			out.Match(v, mv)
		}
	}

	return out
}

// unshrinkSubcycles walks, from v, the chain of pseudonodes that absorbed
// it — every cycle index strictly smaller than k (the cycle currently
// being unshrunk, or len(hist) for the top-level call from augment) — and
// unshrinks each in turn, from smallest (innermost, contracted first) to
// largest.
//
// Grounded on unshrink_subcycles in maximum_cardinality_matching.cpp.
func (s *search) unshrinkSubcycles(v, k int, out *matching.Matching) {
	cur, ok := s.firstCycle[v]
	if !ok {
		return
	}
	for cur < k {
		s.unshrinkCycle(cur, out)
		next, ok := s.largerCycle[cur]
		if !ok {
			break
		}
		cur = next
	}
}

// unshrinkCycle expands the cycle at hist[idx] back into matched edges.
// Exactly one cycle vertex is already matched outside the cycle (the
// pivot, found as the first vertex with a non-exposed endpoint); starting
// from it, every second edge around the cycle becomes a matched edge, which
// is always possible for an odd cycle.
//
// Grounded on unshrink_cycle in maximum_cardinality_matching.cpp.
func (s *search) unshrinkCycle(idx int, out *matching.Matching) {
	cyc := s.hist[idx]
	n := len(cyc)

	pivot := -1
	for i, e := range cyc {
		if !out.IsExposed(e.u) {
			pivot = i
			break
		}
		if !out.IsExposed(e.v) {
			pivot = (i + 1) % n
			break
		}
	}
	if pivot < 0 {
		panic("blossom: no already-matched vertex found while unshrinking cycle")
	}

	match := func(e edge) {
		if !out.IsExposed(e.u) || !out.IsExposed(e.v) {
			panic("blossom: unshrink tried to rematch an already-matched vertex")
		}
		out.Match(e.u, e.v)
		s.unshrinkSubcycles(e.u, idx, out)
		s.unshrinkSubcycles(e.v, idx, out)
	}

	for i := pivot % 2; i < pivot; i += 2 {
		match(cyc[i])
	}
	for i := pivot + 1; i < n; i += 2 {
		match(cyc[i])
	}
}
