package solver

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/puzzle"
)

// DancingLinksOptions configures SolveWithDancingLinks.
type DancingLinksOptions struct {
	MaxSolutions uint64
}

// DefaultDancingLinksOptions returns sensible default options: stop at the
// first solution.
func DefaultDancingLinksOptions() *DancingLinksOptions {
	return &DancingLinksOptions{MaxSolutions: 1}
}

// DancingLinksStats reports the size of the exact-cover encoding and how
// long the search over it took. The core's Search has no node- or
// backtrack-level instrumentation hook: exposing one would mean every
// search paid for bookkeeping nobody asked for, so stats here are limited
// to what can be measured from outside the call.
type DancingLinksStats struct {
	SolutionsFound uint64
	TimeElapsed    time.Duration
	MatrixSize     MatrixInfo
}

// MatrixInfo describes the size of the constraint matrix built for a
// puzzle.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of non-zero entries
}

func (dl *DancingLinks) matrixInfo() MatrixInfo {
	info := MatrixInfo{
		Columns:    dl.matrix.Columns(),
		Rows:       dl.matrix.Rows(),
		TotalNodes: dl.matrix.Nodes(),
	}
	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// SolveWithStats solves using Dancing Links and returns detailed
// statistics alongside the usual solved flag.
func (dl *DancingLinks) SolveWithStats(options *DancingLinksOptions) (bool, *DancingLinksStats) {
	if options == nil {
		options = DefaultDancingLinksOptions()
	}

	stats := &DancingLinksStats{MatrixSize: dl.matrixInfo()}

	start := time.Now()
	solved := false
	dl.matrix.Search(options.MaxSolutions, func(_ uint64, tags []dlx.Tag, _ int) {
		if !solved {
			dl.apply(tags)
			solved = true
		}
		stats.SolutionsFound++
	})
	stats.TimeElapsed = time.Since(start)

	return solved, stats
}

// PrintStats displays solving statistics in a formatted way.
func (stats *DancingLinksStats) PrintStats() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("========================"))

	fmt.Printf("Matrix Info:\n")
	fmt.Printf("  Columns:     %s\n", color.HiYellowString("%d", stats.MatrixSize.Columns))
	fmt.Printf("  Rows:        %s\n", color.HiYellowString("%d", stats.MatrixSize.Rows))
	fmt.Printf("  Total Nodes: %s\n", color.HiYellowString("%d", stats.MatrixSize.TotalNodes))
	fmt.Printf("  Density:     %s\n", color.HiYellowString("%.2f%%", stats.MatrixSize.Density))

	fmt.Printf("\nSearch Statistics:\n")
	fmt.Printf("  Solutions Found: %s\n", color.HiGreenString("%d", stats.SolutionsFound))
	fmt.Printf("  Time Elapsed:    %s\n", color.HiBlueString("%v", stats.TimeElapsed))
}

// SolveWithDancingLinks solves p using Dancing Links and validates the
// result if a solution was found.
func SolveWithDancingLinks(p *puzzle.Puzzle, options *DancingLinksOptions) (bool, *DancingLinksStats, error) {
	if options == nil {
		options = DefaultDancingLinksOptions()
	}

	dl := NewDancingLinks(p)
	solved, stats := dl.SolveWithStats(options)

	var err error
	if solved {
		err = dl.ValidateSolution()
	}

	return solved, stats, err
}
