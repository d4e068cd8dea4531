package dlx

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Verbosity dials how much diagnostic output the core emits. It never
// alters observable behavior, only what gets written to stderr.
//
//	0 silent
//	1 per-search summary (column/row/node counts, per-column populations)
//	2 implementation-defined superset of 1
//	3 per-row construction trace
type Verbosity uint

const (
	Silent  Verbosity = 0
	Summary Verbosity = 1
	Trace   Verbosity = 3
)

func (m *Matrix) logRowAdded(tag Tag, columns []uint) {
	if m.verbosity < 3 {
		return
	}
	fmt.Fprintf(os.Stderr, "%s row %d: tag=%d cols=%v\n",
		color.HiBlackString("dlx:"), m.rowCount-1, tag, columns)
}

func (m *Matrix) logSearchStart() {
	if m.verbosity < 1 {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %d cols, %d rows, %d nodes\n",
		color.HiCyanString("dlx: matrix"), m.colCount, m.rowCount, m.nodeCount)
	fmt.Fprint(os.Stderr, color.HiBlackString("dlx: column populations:"))
	for _, h := range m.cols {
		fmt.Fprintf(os.Stderr, " %d", h.value)
	}
	fmt.Fprintln(os.Stderr)
}
