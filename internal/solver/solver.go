// Package solver solves a Sudoku puzzle by encoding it as an exact-cover
// problem and handing it to the generic dlx solver.
package solver

import (
	"github.com/kpitt/dlx/internal/puzzle"
)

// Solver wraps a puzzle and solves it with Dancing Links.
type Solver struct {
	puzzle *puzzle.Puzzle
}

// NewSolver creates a Solver for the given puzzle. The puzzle's givens are
// fixed in the exact-cover encoding; everything else is left for the
// search to decide.
func NewSolver(p *puzzle.Puzzle) *Solver {
	return &Solver{puzzle: p}
}

// Solve attempts to solve the wrapped puzzle in place using Dancing Links,
// and reports whether a solution was found.
func (s *Solver) Solve() bool {
	return s.SolveDancingLinks()
}

// SolveDancingLinks solves the wrapped puzzle using the generic exact-cover
// core, applying the first solution found (if any) to the puzzle grid.
func (s *Solver) SolveDancingLinks() bool {
	dl := NewDancingLinks(s.puzzle)
	return dl.Solve()
}
