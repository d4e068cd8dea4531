package dlx

// Matrix owns the toroidal quad-linked mesh: the root sentinel, every
// column header ever referenced, and every row node, together with the
// dense column-index table used to find a header by column number. A
// Matrix is single-owner: exactly one Search may run against it at a
// time, and no row may be added while a search is in progress.
type Matrix struct {
	root *node
	cols []*node // dense column index -> header, grown by AddRow

	colCount  int
	rowCount  int
	nodeCount int

	verbosity Verbosity
}

// NewMatrix returns an empty Matrix ready to accept rows.
func NewMatrix(verbosity Verbosity) *Matrix {
	m := &Matrix{}
	m.Reset(verbosity)
	return m
}

// Reset releases all storage and returns the Matrix to an empty state
// with a fresh root sentinel, recording verbosity for diagnostics. It is
// idempotent: calling Reset twice with nothing added in between leaves
// the Matrix in the same empty state both times.
func (m *Matrix) Reset(verbosity Verbosity) {
	root := &node{}
	loopSelf(root)
	m.root = root
	m.cols = nil
	m.colCount = 0
	m.rowCount = 0
	m.nodeCount = 0
	m.verbosity = verbosity
}

// Free releases all storage held by the Matrix and returns it to the same
// empty state as a freshly reset Matrix with verbosity 0. Free is
// idempotent: calling it on an already-empty Matrix is a no-op beyond
// re-establishing the empty invariants.
func (m *Matrix) Free() {
	m.Reset(Silent)
}

// ensureColumn returns the header for column index idx, growing the
// column-index table and appending fresh headers to the horizontal list
// as needed so that every index from 0 up to idx exists.
func (m *Matrix) ensureColumn(idx uint) *node {
	needed := int(idx) + 1
	if needed > cap(m.cols) {
		grown := needed
		if grown < 2*cap(m.cols) {
			grown = 2 * cap(m.cols)
		}
		next := make([]*node, len(m.cols), grown)
		copy(next, m.cols)
		m.cols = next
	}
	for len(m.cols) < needed {
		h := &node{}
		loopSelf(h)
		linkLR(m.root.left, h)
		linkLR(h, m.root)
		m.cols = append(m.cols, h)
		m.colCount++
	}
	return m.cols[idx]
}

// AddRow appends a row tagged with tag to the matrix. columns must be a
// strictly increasing sequence of column indices; this lets callers build
// a row without an interior sort, and violating monotonicity is a
// programming error that aborts the process. An empty columns list is a
// no-op: AddRow never allocates a zero-width row.
func (m *Matrix) AddRow(tag Tag, columns []uint) {
	if len(columns) == 0 {
		return
	}

	var prevCol int = -1
	for _, c := range columns {
		if int(c) <= prevCol {
			contractViolation("non-monotonic column list: %v", columns)
		}
		prevCol = int(c)
	}

	anchor := &node{}
	// Thread the row's anchor onto the row-allocation list via the root's
	// up/down links, independent of the root's horizontal column list.
	linkTB(anchor, m.root.down)
	linkTB(m.root, anchor)

	var first *node
	last := anchor
	for _, c := range columns {
		h := m.ensureColumn(c)
		rn := &node{header: h, value: tag}
		// Append to the tail of the column's vertical list, preserving
		// insertion order within the column.
		linkTB(h.up, rn)
		linkTB(rn, h)
		h.value++ // column header's value doubles as its live row-count
		if first == nil {
			first = rn
		}
		linkLR(last, rn)
		last = rn
	}
	// Close the row's horizontal circle over the real row-nodes only; the
	// anchor itself is never part of it.
	linkLR(last, first)

	m.rowCount++
	m.nodeCount += len(columns)
	m.logRowAdded(tag, columns)
}

// Columns returns the number of column headers ever referenced, including
// any currently covered by an in-progress search.
func (m *Matrix) Columns() int {
	return m.colCount
}

// Rows returns the number of rows added to the matrix.
func (m *Matrix) Rows() int {
	return m.rowCount
}

// Nodes returns the total number of row-nodes (1-bits) across every row
// added to the matrix.
func (m *Matrix) Nodes() int {
	return m.nodeCount
}

// ColumnPopulation returns the live row-count of column idx. It is meant
// for diagnostics and tests; during a search the value fluctuates as
// columns are covered and uncovered.
func (m *Matrix) ColumnPopulation(idx uint) int {
	return int(m.cols[idx].value)
}
