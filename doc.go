// Package blossommatch computes maximum-cardinality matchings on simple,
// undirected, unweighted graphs using Edmonds' blossom algorithm.
//
// What is blossom-match?
//
//	A from-scratch Go port of the classic Edmonds' blossom (cardinality)
//	algorithm, extended with a Gallai–Edmonds style outer loop: exposed
//	vertices that sit at the root of a "frustrated" alternating tree (no
//	augmenting path exists from them) are retired, along with their whole
//	tree, so the remaining graph keeps making progress.
//
// Package layout:
//
//	core/      — the dense-integer-id Graph container (adjacency, neighbor
//	             iteration in input order).
//	matching/  — the Matching type (a vertex→mate array); a pure leaf type
//	             with no algorithm logic of its own.
//	blossom/   — the actual engine: alternating-tree growth, blossom
//	             (odd-cycle) detection via a union-find pseudonode forest,
//	             path augmentation / nested-blossom unshrinking, and the
//	             driver loop (C7, blossom.Solve) that repeats the search
//	             until no exposed, non-retired vertex remains.
//	dimacs/    — the DIMACS-style text format reader/writer.
//	cmd/blossom-match/ — the command-line driver.
//
// Quick ASCII example — a 5-cycle has a maximum matching of size 2, leaving
// exactly one vertex exposed:
//
//	  1───2
//	 /     \
//	5       3
//	 \     /
//	  ──4──
//
// See the package docs under blossom/ for how the search is organized.
// The engine computes unweighted cardinality matchings only: it has no
// weighted matching, no bipartite specialization and no incremental
// maintenance.
package blossommatch
