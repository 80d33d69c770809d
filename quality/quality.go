// Package quality computes structural metrics over a generated maze: dead
// ends, exhaustive longest/average simple-path lengths, branching factor,
// and a weighted scalar quality index.
package quality

import (
	"github.com/katalvlaran/mazegrid/maze"
)

// Analyze computes the full Metrics snapshot for m.
//
// Error Conditions:
//   - ErrNilMaze : m is nil.
//
// Complexity: dominated by MeasurePaths; see its note on tree-bounded
// exhaustive search.
func Analyze(m *maze.Maze) (Metrics, error) {
	if m == nil {
		return Metrics{}, ErrNilMaze
	}

	longest, totalLength, totalPaths := MeasurePaths(m)
	var avg float64
	if totalPaths > 0 {
		avg = float64(totalLength) / float64(totalPaths)
	}

	return Metrics{
		DeadEnds:        CountDeadEnds(m),
		LongestPath:     longest,
		AvgPathLength:   avg,
		BranchingFactor: BranchingFactor(m),
	}, nil
}

// CountDeadEnds returns the number of cells with exactly three walls, i.e.
// exactly one open passage. A 1×1 maze has a cell with four walls, which
// by this rule is not a dead end.
// Complexity: O(W×H).
func CountDeadEnds(m *maze.Maze) int {
	var count int
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.OpenPassages(x, y) == 1 {
				count++
			}
		}
	}

	return count
}

// MeasurePaths runs an exhaustive depth-first enumeration of simple paths
// over open passages from every start cell. A leaf of the search (no
// unvisited open neighbor) terminates one path of the current length.
//
// Returns:
//
//	longest     — maximum terminal-path length seen from any start.
//	totalLength — sum of all terminal-path lengths across all starts.
//	totalPaths  — count of all terminal paths across all starts.
//
// The visited marking is local to the call and unwound on backtrack, so
// every simple path starting at each cell is enumerated. Because a perfect
// maze is a tree, the path count is bounded by the leaf count; recursion
// depth is bounded by the longest simple path, which is the package's
// known scaling limit on very large mazes.
func MeasurePaths(m *maze.Maze) (longest, totalLength, totalPaths int) {
	visited := make([]bool, len(m.Cells))

	var walk func(x, y, length int)
	walk = func(x, y, length int) {
		visited[m.Index(x, y)] = true
		extended := false
		for d := maze.North; d <= maze.West; d++ {
			if m.HasWall(x, y, d) {
				continue
			}
			dx, dy := d.Delta()
			nx, ny := x+dx, y+dy
			if !m.InBounds(nx, ny) || visited[m.Index(nx, ny)] {
				continue
			}
			extended = true
			walk(nx, ny, length+1)
		}
		if !extended {
			// Terminal path: the current path cannot be extended further.
			if length > longest {
				longest = length
			}
			totalLength += length
			totalPaths++
		}
		visited[m.Index(x, y)] = false
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			walk(x, y, 0)
		}
	}

	return longest, totalLength, totalPaths
}

// BranchingFactor returns the mean number of open passages per cell. For a
// perfect maze this equals 2·(W·H-1)/(W·H) exactly, since a spanning tree
// has W·H-1 edges and each contributes one open passage to both endpoints.
// Complexity: O(W×H).
func BranchingFactor(m *maze.Maze) float64 {
	var total int
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			total += m.OpenPassages(x, y)
		}
	}

	return float64(total) / float64(m.Width*m.Height)
}

// Index combines a Metrics snapshot into one scalar score:
//
//	index = 0.25·(1 - deadEnds/size)
//	      + 0.30·(longestPath/size)
//	      + 0.25·(avgPathLength/size)
//	      + 0.20·branchingFactor
//
// size is the cell count Width×Height and must be positive (guaranteed by
// maze.New). Pure and deterministic: identical metrics yield the identical
// index to floating-point equality. Complexity: O(1).
func Index(q Metrics, size int) float64 {
	deadEndRatio := float64(q.DeadEnds) / float64(size)
	pathLengthRatio := float64(q.LongestPath) / float64(size)
	normalizedAvgPath := q.AvgPathLength / float64(size)

	return wDeadEnds*(1-deadEndRatio) +
		wLongestPath*pathLengthRatio +
		wAvgPath*normalizedAvgPath +
		wBranching*q.BranchingFactor
}
