package dimacs

import (
	"errors"
	"fmt"
)

// ErrNoHeader indicates the input ended (or the edge lines began) without
// ever declaring a `p edge n m` header line.
var ErrNoHeader = errors.New("dimacs: missing \"p edge n m\" header line")

// ErrDuplicateHeader indicates a second `p` line appeared; exactly one is
// allowed.
var ErrDuplicateHeader = errors.New("dimacs: duplicate \"p\" header line")

// ErrEdgeCountMismatch indicates the header's declared edge count m did not
// match the number of `e` lines actually present before EOF.
var ErrEdgeCountMismatch = errors.New("dimacs: declared edge count does not match the number of edge lines")

// FormatError reports a malformed line, naming the 1-indexed source line it
// occurred on so a diagnostic can point the caller at the exact spot.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

func formatErrorf(line int, format string, args ...any) error {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
