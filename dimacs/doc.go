// Package dimacs reads and writes the DIMACS-style edge-list format the
// command-line driver uses, per the external interface: a header line
// `p edge n m` followed by m `e u v` edge lines, `c`-prefixed comment
// lines ignored, vertices 1-indexed in the file and mapped to 0-indexed
// internally.
package dimacs
