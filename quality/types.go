// Package quality defines the metrics snapshot and sentinel errors for
// structural maze analysis.
package quality

import (
	"errors"
)

// ErrNilMaze indicates that a nil *maze.Maze was passed to Analyze.
var ErrNilMaze = errors.New("quality: maze is nil")

// Weights of the quality index. They sum the four normalized metrics into
// one scalar; see Index for the exact formula.
const (
	wDeadEnds    = 0.25
	wLongestPath = 0.30
	wAvgPath     = 0.25
	wBranching   = 0.20
)

// Metrics is a read-only snapshot of structural maze quality, computed
// once after generation and never mutated.
//
// Fields:
//
//	DeadEnds        — cells with exactly one open passage (three walls).
//	LongestPath     — longest simple path (in edges) from any start cell.
//	AvgPathLength   — mean length over every (start, fully-extended end)
//	                  path enumeration across all start cells.
//	BranchingFactor — mean number of open passages per cell.
type Metrics struct {
	DeadEnds        int
	LongestPath     int
	AvgPathLength   float64
	BranchingFactor float64
}
