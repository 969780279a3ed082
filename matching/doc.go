// Package matching defines Matching, the vertex-disjoint edge set produced
// by the blossom engine (package blossom).
//
// A matching is a partial involution on [0,n): every vertex has at most
// one mate. Rather than modeling that as a second adjacency-list Graph, it
// is represented here as a dense mate array (mate[v] == v meaning "v is
// exposed"). This gives O(1) Mate/IsExposed lookups, which the blossom
// engine's frontier scan leans on heavily, without giving up any of the
// semantics: Size, Edges, and the degree-at-most-one invariant all still
// hold.
package matching
