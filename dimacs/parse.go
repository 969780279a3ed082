package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/froseb/blossom-match/core"
)

// Parse reads a DIMACS-style edge-list graph from r: `c` lines are
// comments, exactly one `p edge n m` line declares the vertex and edge
// counts, and m `e u v` lines (1-indexed in the file) declare edges.
// Self-loops and duplicate edges are tolerated (core.Graph already ignores
// them); only a structurally malformed file is an error.
func Parse(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var g *core.Graph
	var wantEdges int
	gotEdges := 0
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "c":
			continue

		case "p":
			if g != nil {
				return nil, ErrDuplicateHeader
			}
			n, m, err := parseHeader(line, fields)
			if err != nil {
				return nil, err
			}
			g, err = core.NewGraph(n)
			if err != nil {
				return nil, formatErrorf(line, "invalid vertex count: %v", err)
			}
			wantEdges = m

		case "e":
			if g == nil {
				return nil, ErrNoHeader
			}
			u, v, err := parseEdge(line, fields, g.NumNodes())
			if err != nil {
				return nil, err
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, formatErrorf(line, "%v", err)
			}
			gotEdges++

		default:
			return nil, formatErrorf(line, "unrecognized line type %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if g == nil {
		return nil, ErrNoHeader
	}
	if gotEdges != wantEdges {
		return nil, ErrEdgeCountMismatch
	}

	return g, nil
}

func parseHeader(line int, fields []string) (n, m int, err error) {
	if len(fields) < 4 || fields[1] != "edge" {
		return 0, 0, formatErrorf(line, "expected \"p edge n m\", got %q", strings.Join(fields, " "))
	}
	n, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, formatErrorf(line, "vertex count %q is not an integer", fields[2])
	}
	m, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, formatErrorf(line, "edge count %q is not an integer", fields[3])
	}
	return n, m, nil
}

func parseEdge(line int, fields []string, n int) (u, v int, err error) {
	if len(fields) < 3 {
		return 0, 0, formatErrorf(line, "expected \"e u v\", got %q", strings.Join(fields, " "))
	}
	u1, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, formatErrorf(line, "endpoint %q is not an integer", fields[1])
	}
	v1, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, formatErrorf(line, "endpoint %q is not an integer", fields[2])
	}
	if u1 < 1 || u1 > n || v1 < 1 || v1 > n {
		return 0, 0, formatErrorf(line, "edge (%d,%d) has an endpoint outside [1,%d]", u1, v1, n)
	}
	return u1 - 1, v1 - 1, nil
}
