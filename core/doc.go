// Package core provides the fundamental in-memory Graph container used by the
// blossom matching engine.
//
// Unlike lvlath's original string-keyed, multi-purpose Graph, this Graph is
// deliberately narrow: vertices are dense, zero-based integer ids in [0,n),
// edges are undirected, unweighted, and simple (no self-loops, no parallel
// edges), and neighbor lists preserve insertion order. The ordering guarantee
// matters here in a way it never did for lvlath's traversal algorithms: the
// blossom engine's frontier discipline (see package blossom) is only
// deterministic if Neighbors(v) always replays edges in the order the input
// file presented them.
//
// Graph offers thread-safe methods to mutate and query vertices and edges,
// guarded by a single sync.RWMutex, in keeping with lvlath's core.Graph
// locking convention. The blossom search itself never runs concurrently, but
// a caller is free to inspect a Graph (print it, count its edges) while a
// solve is in flight on another goroutine without racing AddEdge.
package core
