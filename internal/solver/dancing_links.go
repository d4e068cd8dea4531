package solver

import (
	"fmt"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/puzzle"
)

// Candidate is the payload carried by one row of the Sudoku exact-cover
// matrix: placing digit Value into cell (Row, Col).
type Candidate struct {
	Row, Col, Value int
}

// DancingLinks builds and solves the exact-cover encoding of a Sudoku
// puzzle on top of the generic dlx core. A 9x9 Sudoku has 324 constraint
// columns (81 cell + 81 row + 81 column + 81 box constraints) and up to
// 729 candidate rows (one per (row, col, value) combination): a solved
// cell contributes only the row for its value, and an unsolved cell one row
// per value left in its own candidate set (candidates are not pruned by the
// givens of other cells).
type DancingLinks struct {
	matrix   *dlx.Matrix
	registry *dlx.Registry[Candidate]
	puzzle   *puzzle.Puzzle
}

const (
	cellConstraints = 81
	rowConstraints  = 81
	colConstraints  = 81
	boxConstraints  = 81
	totalColumns    = cellConstraints + rowConstraints + colConstraints + boxConstraints
)

// NewDancingLinks builds the exact-cover matrix for p's current state.
func NewDancingLinks(p *puzzle.Puzzle) *DancingLinks {
	dl := &DancingLinks{
		matrix:   dlx.NewMatrix(dlx.Silent),
		registry: dlx.NewRegistry[Candidate](),
		puzzle:   p,
	}
	dl.buildMatrix()
	return dl
}

// buildMatrix adds one row per still-possible (row, col, value) candidate.
// Columns within a row are added in the fixed order cell < row < column <
// box, which the column numbering guarantees is already strictly
// increasing, satisfying the core's row-addition contract without a sort.
func (dl *DancingLinks) buildMatrix() {
	printProgress("Building exact-cover matrix for Sudoku")
	for r := range 9 {
		for c := range 9 {
			cell := dl.puzzle.Grid[r][c]
			if cell.IsSolved() {
				dl.addCandidateRow(r, c, int(cell.Value()))
				continue
			}
			for _, val := range cell.CandidateValues() {
				dl.addCandidateRow(r, c, int(val))
			}
		}
	}
}

func (dl *DancingLinks) addCandidateRow(r, c, val int) {
	box := r/3*3 + c/3
	cols := []uint{
		uint(r*9 + c),
		uint(cellConstraints + r*9 + (val - 1)),
		uint(cellConstraints+rowConstraints) + uint(c*9+(val-1)),
		uint(cellConstraints+rowConstraints+colConstraints) + uint(box*9+(val-1)),
	}
	tag := dl.registry.Put(Candidate{Row: r, Col: c, Value: val})
	dl.matrix.AddRow(tag, cols)
}

// Solve searches for the first exact cover and, if found, applies it to
// the puzzle grid. It reports whether a solution was found.
func (dl *DancingLinks) Solve() bool {
	solved := false
	dl.matrix.Search(1, func(_ uint64, tags []dlx.Tag, _ int) {
		dl.apply(tags)
		solved = true
	})
	return solved
}

func (dl *DancingLinks) apply(tags []dlx.Tag) {
	for _, t := range tags {
		can := dl.registry.Get(t)
		cell := dl.puzzle.Grid[can.Row][can.Col]
		if !cell.IsSolved() {
			dl.puzzle.PlaceValue(can.Row, can.Col, can.Value)
		}
	}
}

// Columns returns the number of constraint columns in the exact-cover
// matrix built for the wrapped puzzle.
func (dl *DancingLinks) Columns() int {
	return dl.matrix.Columns()
}

// Rows returns the number of candidate rows in the exact-cover matrix
// built for the wrapped puzzle.
func (dl *DancingLinks) Rows() int {
	return dl.matrix.Rows()
}

// CountSolutions returns the number of distinct exact covers of the
// current matrix, up to max. It does not mutate the puzzle.
func (dl *DancingLinks) CountSolutions(max uint64) uint64 {
	return dl.matrix.Search(max, func(uint64, []dlx.Tag, int) {})
}

// ValidateSolution checks that the wrapped puzzle is a complete and
// correct Sudoku solution.
func (dl *DancingLinks) ValidateSolution() error {
	p := dl.puzzle

	for r := range 9 {
		for c := range 9 {
			if !p.Grid[r][c].IsSolved() {
				return fmt.Errorf("cell (%d,%d) is not filled", r, c)
			}
		}
	}

	for r := range 9 {
		if err := checkHouse(func(i int) int8 { return p.Grid[r][i].Value() }); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}
	for c := range 9 {
		if err := checkHouse(func(i int) int8 { return p.Grid[i][c].Value() }); err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
	}
	for box := range 9 {
		boxRow, boxCol := box/3, box%3
		if err := checkHouse(func(i int) int8 {
			r, c := boxRow*3+i/3, boxCol*3+i%3
			return p.Grid[r][c].Value()
		}); err != nil {
			return fmt.Errorf("box %d: %w", box, err)
		}
	}
	return nil
}

func checkHouse(valueAt func(int) int8) error {
	seen := make(map[int8]bool, 9)
	for i := range 9 {
		v := valueAt(i)
		if v < 1 || v > 9 {
			return fmt.Errorf("invalid value %d", v)
		}
		if seen[v] {
			return fmt.Errorf("duplicate value %d", v)
		}
		seen[v] = true
	}
	return nil
}
