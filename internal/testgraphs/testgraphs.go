// Package testgraphs builds the fixed graph fixtures the test scenarios
// name, used by the blossom test suite.
//
// Grounded in style on buildTriangle/buildMediumGraph from
// prim_kruskal_test.go: small, explicit AddEdge calls with a doc comment
// naming the shape, rather than a generic graph-builder package.
package testgraphs

import "github.com/froseb/blossom-match/core"

func must(g *core.Graph, err error) *core.Graph {
	if err != nil {
		panic(err)
	}
	return g
}

func addEdges(g *core.Graph, pairs [][2]int) *core.Graph {
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			panic(err)
		}
	}
	return g
}

// FiveCycle builds S1: a bare 5-cycle, 0-1-2-3-4-0. Its maximum matching
// has size 2, leaving exactly one vertex exposed — the minimal graph that
// forces a blossom contraction.
func FiveCycle() *core.Graph {
	g := must(core.NewGraph(5))
	return addEdges(g, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
}

// FiveCycleWithPendant builds S2: `p edge 6 7` — a 5-cycle (0-1-2-3-4-0)
// with pendant vertex 5 attached to both 0 and 2, i.e. the pendant hangs
// off the cycle through two spokes rather than one. Expected |M|=3
// (perfect): e.g. {0,5},{1,2},{3,4} covers every vertex.
func FiveCycleWithPendant() *core.Graph {
	g := must(core.NewGraph(6))
	return addEdges(g, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 5}, {2, 5}})
}

// NestedBlossoms builds S3: `p edge 7 8` on 7 vertices — a 6-cycle
// 1-2-3-4-5-6-1 with pendant vertex 0 attached to 1, plus the chord (2,6),
// which splits the 6-cycle into two odd cycles sharing that chord: the
// triangle 1-2-6 and the 5-cycle 2-3-4-5-6. Expected |M|=3 with exactly
// one exposed vertex. Solve's greedy seed already reaches size 3 here; the
// search from the remaining exposed vertex 6 contracts the 5-cycle once
// and then ends frustrated.
func NestedBlossoms() *core.Graph {
	g := must(core.NewGraph(7))
	return addEdges(g, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1}, {2, 6},
	})
}

// Petersen builds S4: the Petersen graph, a 3-regular graph on 10 vertices
// with a perfect matching (size 5). Solve's greedy seed already finds a
// perfect matching on this edge order, so no blossom search runs.
func Petersen() *core.Graph {
	g := must(core.NewGraph(10))
	return addEdges(g, [][2]int{
		// outer 5-cycle
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		// inner 5-point star (pentagram)
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		// spokes
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	})
}

// TwoDisjointTriangles builds S5: two vertex-disjoint triangles, {0,1,2}
// and {3,4,5}. Each triangle has a maximum matching of size 1 (one vertex
// always exposed), so the whole graph's maximum matching is size 2 — this
// is the scenario that forces the driver loop's frustrated-vertex
// retirement, since each triangle's remaining exposed vertex must be
// recognized as unmatchable without starving the other triangle's search.
func TwoDisjointTriangles() *core.Graph {
	g := must(core.NewGraph(6))
	return addEdges(g, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
}

// BipartiteK33 builds S6: the complete bipartite graph K3,3 with parts
// {0,1,2} and {3,4,5}. Bipartite graphs never contain an odd cycle, so
// this scenario exercises the engine with blossom contraction never
// triggering at all; the maximum matching is a perfect matching of size 3.
func BipartiteK33() *core.Graph {
	g := must(core.NewGraph(6))
	return addEdges(g, [][2]int{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	})
}
