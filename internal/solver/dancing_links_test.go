package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpitt/dlx/internal/puzzle"
)

func easyPuzzle() [][]int {
	return [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

func givenPuzzle(grid [][]int) *puzzle.Puzzle {
	p := puzzle.NewPuzzle()
	for r := range 9 {
		for c := range 9 {
			if grid[r][c] != 0 {
				p.GivenValue(r, c, grid[r][c])
			}
		}
	}
	return p
}

func TestDancingLinksBuildsFullColumnSet(t *testing.T) {
	p := givenPuzzle(easyPuzzle())
	dl := NewDancingLinks(p)
	assert.Equal(t, totalColumns, dl.matrix.Columns())
}

func TestDancingLinksEmptyPuzzleHas729Rows(t *testing.T) {
	p := puzzle.NewPuzzle()
	dl := NewDancingLinks(p)
	assert.Equal(t, 9*9*9, dl.matrix.Rows())
}

func TestDancingLinksFullyGivenPuzzleHas81Rows(t *testing.T) {
	solution := [][]int{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	p := givenPuzzle(solution)
	dl := NewDancingLinks(p)
	assert.Equal(t, 81, dl.matrix.Rows())
}

func TestDancingLinksSolvesEasyPuzzle(t *testing.T) {
	p := givenPuzzle(easyPuzzle())
	dl := NewDancingLinks(p)

	require.True(t, dl.Solve())
	require.NoError(t, dl.ValidateSolution())
}

func TestSolveDancingLinksMatchesSolver(t *testing.T) {
	p := givenPuzzle(easyPuzzle())
	s := NewSolver(p)

	require.True(t, s.SolveDancingLinks())
	assert.True(t, p.IsSolved())
}

func TestCountSolutionsOnUniquePuzzleIsOne(t *testing.T) {
	p := givenPuzzle(easyPuzzle())
	dl := NewDancingLinks(p)
	assert.Equal(t, uint64(1), dl.CountSolutions(2))
}

func TestValidateSolutionRejectsIncompletePuzzle(t *testing.T) {
	p := givenPuzzle(easyPuzzle())
	dl := NewDancingLinks(p)
	err := dl.ValidateSolution()
	assert.Error(t, err)
}

func TestSolveWithDancingLinksReportsStats(t *testing.T) {
	solved, stats, err := SolveWithDancingLinks(givenPuzzle(easyPuzzle()), nil)
	require.True(t, solved)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.SolutionsFound)
	assert.Equal(t, totalColumns, stats.MatrixSize.Columns)
}

func BenchmarkDancingLinksBuildMatrix(b *testing.B) {
	p := givenPuzzle(easyPuzzle())
	for b.Loop() {
		_ = NewDancingLinks(p)
	}
}

func BenchmarkDancingLinksSolve(b *testing.B) {
	for b.Loop() {
		dl := NewDancingLinks(givenPuzzle(easyPuzzle()))
		dl.Solve()
	}
}

// ExampleSolver shows the common case: wrap a puzzle and solve it in place.
func ExampleSolver() {
	p := givenPuzzle(easyPuzzle())
	s := NewSolver(p)
	s.Solve()
	// p now holds the completed grid.
}
