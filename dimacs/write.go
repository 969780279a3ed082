package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/froseb/blossom-match/matching"
)

// Write serializes m as a DIMACS-style edge list over n vertices: header
// `p edge n k` (k = |m|), then k `e u v` lines, 1-indexed with u<v, in
// ascending order by the smaller endpoint.
func Write(w io.Writer, n int, m *matching.Matching) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", n, m.Size()); err != nil {
		return err
	}
	for _, e := range m.Edges() {
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e.From+1, e.To+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
