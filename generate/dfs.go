// Package generate provides an implementation of the randomized
// backtracker: depth-first carving with an explicit stack.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/maze"
)

// DFS carves a perfect maze into m using the randomized backtracker.
//
// Steps:
//  1. Mark (0,0) visited and push it onto an explicit stack.
//  2. While the stack is non-empty, inspect the top cell's unvisited
//     grid-adjacent neighbors:
//     a. If any exist, pick one uniformly at random, remove the wall to
//     it, mark it visited and push it (descend).
//     b. Otherwise pop (backtrack).
//
// The explicit stack keeps memory at O(V) without recursion, so grid size
// is bounded by heap, not goroutine stack depth. Each cell is pushed and
// popped exactly once.
//
// A nil rng selects the deterministic default stream.
//
// Error Conditions:
//   - ErrNilMaze : m is nil.
//
// Complexity: O(V) time, O(V) memory.
func DFS(m *maze.Maze, rng *rand.Rand) error {
	if m == nil {
		return ErrNilMaze
	}
	rng = ensureRNG(rng)

	m.Cells[0].Visited = true
	stack := make([]cellPos, 0, m.Width*m.Height)
	stack = append(stack, cellPos{0, 0})

	// candidates is reused across iterations; at most four neighbors.
	candidates := make([]cellPos, 0, 4)

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// Collect unvisited neighbors of the top cell.
		candidates = candidates[:0]
		for d := maze.North; d <= maze.West; d++ {
			dx, dy := d.Delta()
			nx, ny := top.x+dx, top.y+dy
			if !m.InBounds(nx, ny) {
				continue
			}
			if !m.Cells[m.Index(nx, ny)].Visited {
				candidates = append(candidates, cellPos{nx, ny})
			}
		}

		// Dead end: backtrack.
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// Descend into a uniformly random unvisited neighbor.
		next := candidates[rng.Intn(len(candidates))]
		if err := m.RemoveWall(top.x, top.y, next.x, next.y); err != nil {
			return err
		}
		m.Cells[m.Index(next.x, next.y)].Visited = true
		stack = append(stack, next)
	}

	return nil
}
