package dlx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildKnuthExample builds Knuth's textbook matrix: seven columns {0..6},
// six rows with bit patterns {0,3,6}, {0,3}, {3,4,6}, {2,4,5}, {1,2,5,6},
// {1,6}, tagged 'A'..'F' in that order.
func buildKnuthExample(t *testing.T) *Matrix {
	t.Helper()
	m := NewMatrix(Silent)
	rows := [][]uint{
		{0, 3, 6},
		{0, 3},
		{3, 4, 6},
		{2, 4, 5},
		{1, 2, 5, 6},
		{1, 6},
	}
	for i, cols := range rows {
		m.AddRow(Tag('A'+i), cols)
	}
	return m
}

// TestKnuthExampleFindsUniqueSolution verifies the only exact cover of
// Knuth's textbook matrix is rows A, D, F (tags 'A', 'D', 'F'), covering
// {0,3,6}, {2,4,5}, {1,6}.
func TestKnuthExampleFindsUniqueSolution(t *testing.T) {
	m := buildKnuthExample(t)

	var solutions [][]Tag
	total := m.Search(^uint64(0), func(_ uint64, tags []Tag, _ int) {
		got := make([]Tag, len(tags))
		copy(got, tags)
		solutions = append(solutions, got)
	})

	require.Equal(t, uint64(1), total)
	require.Len(t, solutions, 1)

	got := solutions[0]
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, []Tag{'A', 'D', 'F'}, got)
}

// TestEmptyMatrixHasOneDepthZeroSolution verifies that a matrix with no
// columns reports a single solution with an empty selection.
func TestEmptyMatrixHasOneDepthZeroSolution(t *testing.T) {
	m := NewMatrix(Silent)

	var depth int
	total := m.Search(^uint64(0), func(_ uint64, tags []Tag, d int) {
		depth = d
	})

	assert.Equal(t, uint64(1), total)
	assert.Equal(t, 0, depth)
}

// TestInfeasibleMatrixHasNoSolutions verifies that a column no row ever
// touches leaves the matrix impossible to cover: two columns, one row
// covering only column 0 leaves column 1 forever uncoverable.
func TestInfeasibleMatrixHasNoSolutions(t *testing.T) {
	m := NewMatrix(Silent)
	m.ensureColumn(1) // establish column 1 with no rows of its own
	m.AddRow(Tag('A'), []uint{0})

	total := m.Search(^uint64(0), func(uint64, []Tag, int) {
		t.Fatal("expected no solutions")
	})

	assert.Equal(t, uint64(0), total)
}

// TestSearchBoundStopsEarly verifies Search stops as soon as the
// reported-solution bound is reached: three identical rows {0,1,2} each
// form a valid exact cover on their own, so there are 3 solutions total,
// but Search(2, ...) must stop after reporting 2.
func TestSearchBoundStopsEarly(t *testing.T) {
	m := NewMatrix(Silent)
	m.AddRow(Tag('A'), []uint{0, 1, 2})
	m.AddRow(Tag('B'), []uint{0, 1, 2})
	m.AddRow(Tag('C'), []uint{0, 1, 2})

	bounded := m.Search(2, func(uint64, []Tag, int) {})
	assert.Equal(t, uint64(2), bounded)

	unbounded := m.Search(^uint64(0), func(uint64, []Tag, int) {})
	assert.Equal(t, uint64(3), unbounded)
}

// TestSearchZeroBoundReportsNothing checks the max==0 short-circuit
// without touching the matrix.
func TestSearchZeroBoundReportsNothing(t *testing.T) {
	m := buildKnuthExample(t)
	total := m.Search(0, func(uint64, []Tag, int) {
		t.Fatal("sink must not be called when max is 0")
	})
	assert.Equal(t, uint64(0), total)
}

// TestWordleDisjointCoverIsReproducible verifies that a small, fixed word
// list over 26 letter columns plus a marker column produces a reproducible
// solution count across repeated searches, that at least one solution
// exists, and that no letter is covered twice by a solution's words.
func TestWordleDisjointCoverIsReproducible(t *testing.T) {
	words := []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"}

	build := func() (*Matrix, *Registry[string]) {
		m := NewMatrix(Silent)
		reg := NewRegistry[string]()
		for _, w := range words {
			cols := make([]uint, len(w))
			for i, c := range w {
				cols[i] = uint(c - 'a')
			}
			m.AddRow(reg.Put(w), cols)
		}
		for i := range uint(26) {
			m.AddRow(reg.Put(""), []uint{i, 26})
		}
		return m, reg
	}

	m1, reg1 := build()
	var firstCount uint64
	m1.Search(^uint64(0), func(_ uint64, tags []Tag, _ int) {
		letters := make(map[rune]bool)
		for _, tg := range tags {
			word := reg1.Get(tg)
			for _, c := range word {
				assert.False(t, letters[c], "letter %c covered twice", c)
				letters[c] = true
			}
		}
		firstCount++
	})

	m2, _ := build()
	secondCount := m2.Search(^uint64(0), func(uint64, []Tag, int) {})

	assert.Equal(t, firstCount, secondCount)
	assert.Greater(t, firstCount, uint64(0))
}

// TestResetIsIdempotent verifies that two consecutive Reset calls with no
// rows added in between leave the matrix in the same empty state.
func TestResetIsIdempotent(t *testing.T) {
	m := NewMatrix(Silent)
	m.Reset(Silent)

	assert.Equal(t, 0, m.Columns())
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Nodes())
	assert.Same(t, m.root, m.root.left)
	assert.Same(t, m.root, m.root.right)
	assert.Same(t, m.root, m.root.up)
	assert.Same(t, m.root, m.root.down)
}

// TestFreeIsIdempotent checks that Free can be called repeatedly and
// always yields the same empty, Silent state regardless of prior
// verbosity.
func TestFreeIsIdempotent(t *testing.T) {
	m := NewMatrix(Trace)
	m.AddRow(Tag(1), []uint{0, 1})

	m.Free()
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, Silent, m.verbosity)

	m.Free()
	assert.Equal(t, 0, m.Rows())
}

// TestAddRowRejectsNonMonotonicColumns would abort the process via
// contractViolation, which cannot be exercised in-process without killing
// the test binary; the monotonicity contract is instead checked
// positively below by confirming a strictly increasing row is accepted
// and its tail column reachable.
func TestAddRowAcceptsStrictlyIncreasingColumns(t *testing.T) {
	m := NewMatrix(Silent)
	m.AddRow(Tag(42), []uint{1, 5, 9})
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 3, m.Nodes())
	assert.Equal(t, 1, m.ColumnPopulation(9))
}

// TestAddRowEmptyColumnsIsNoOp checks that a zero-width row is dropped
// without allocating a row anchor.
func TestAddRowEmptyColumnsIsNoOp(t *testing.T) {
	m := NewMatrix(Silent)
	m.AddRow(Tag(1), nil)
	assert.Equal(t, 0, m.Rows())
}

// TestColumnPopulationTracksCoverage confirms a column's live row-count
// increases once per row touching it.
func TestColumnPopulationTracksCoverage(t *testing.T) {
	m := NewMatrix(Silent)
	m.AddRow(Tag(1), []uint{0, 1})
	m.AddRow(Tag(2), []uint{0, 2})
	m.AddRow(Tag(3), []uint{0})

	assert.Equal(t, 3, m.ColumnPopulation(0))
	assert.Equal(t, 1, m.ColumnPopulation(1))
	assert.Equal(t, 1, m.ColumnPopulation(2))
}

// TestRowAllocationListIndependentOfColumnList verifies the root
// sentinel's two threaded lists don't interfere: adding rows that only
// touch already-existing columns grows the row-allocation list (walked
// via root.down) by exactly one anchor per row while leaving the
// horizontal column list (walked via root.right) untouched.
func TestRowAllocationListIndependentOfColumnList(t *testing.T) {
	m := NewMatrix(Silent)
	m.AddRow(Tag(1), []uint{0, 1})
	colsBefore := m.Columns()

	m.AddRow(Tag(2), []uint{0, 1})
	m.AddRow(Tag(3), []uint{0})

	assert.Equal(t, colsBefore, m.Columns(), "reusing existing columns must not grow the column list")
	assert.Equal(t, 3, m.Rows())

	anchors := 0
	for n := m.root.down; n != m.root; n = n.down {
		anchors++
	}
	assert.Equal(t, m.Rows(), anchors, "row-allocation list must hold exactly one anchor per row")

	liveCols := 0
	for c := m.root.right; c != m.root; c = c.right {
		liveCols++
	}
	assert.Equal(t, m.Columns(), liveCols, "column list must be unaffected by row-allocation list growth")
}

func BenchmarkKnuthExampleSearch(b *testing.B) {
	rows := [][]uint{
		{0, 3, 6},
		{0, 3},
		{3, 4, 6},
		{2, 4, 5},
		{1, 2, 5, 6},
		{1, 6},
	}
	for b.Loop() {
		m := NewMatrix(Silent)
		for i, cols := range rows {
			m.AddRow(Tag('A'+i), cols)
		}
		m.Search(^uint64(0), func(uint64, []Tag, int) {})
	}
}

// TestCoverUncoverIsInvolution checks that covering then uncovering a
// column restores every population count it touched, exercising the
// exact-inverse property cover/uncover rely on.
func TestCoverUncoverIsInvolution(t *testing.T) {
	m := buildKnuthExample(t)

	before := make([]int, m.Columns())
	for i := range before {
		before[i] = m.ColumnPopulation(uint(i))
	}

	col := m.cols[3]
	cover(col)
	uncover(col)

	for i := range before {
		assert.Equal(t, before[i], m.ColumnPopulation(uint(i)), "column %d population not restored", i)
	}
	assert.Same(t, m.root, m.root.right.left)
}
