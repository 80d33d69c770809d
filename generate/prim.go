// Package generate provides an implementation of randomized Prim maze
// generation: uniform random expansion of a frontier of visited cells.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/maze"
)

// cellPos is a cell coordinate pair carried through frontier and stack
// collections during generation.
type cellPos struct {
	x, y int
}

// Prim carves a perfect maze into m using randomized-order cell expansion.
//
// Steps:
//  1. Pick a uniformly random start cell, mark it visited, seed the
//     frontier with it.
//  2. While the frontier is non-empty: swap-remove a uniformly random
//     frontier cell, then connect and enqueue ALL of its still-unvisited
//     neighbors (remove the wall, mark visited, push onto the frontier).
//
// This is not weighted/lazy Prim: there is no priority queue, and one pop
// may add several edges. Textbook randomized Prim rewires a single edge per
// iteration; the multi-edge-per-pop behavior here is intentional and yields
// mazes with shorter corridors and denser branching.
//
// A nil rng selects the deterministic default stream.
//
// Error Conditions:
//   - ErrNilMaze : m is nil.
//
// Complexity: O(V) time (each cell enters the frontier once), O(V) memory.
func Prim(m *maze.Maze, rng *rand.Rand) error {
	if m == nil {
		return ErrNilMaze
	}
	rng = ensureRNG(rng)

	// 1. Seed the frontier with a random start cell.
	startX := rng.Intn(m.Width)
	startY := rng.Intn(m.Height)
	m.Cells[m.Index(startX, startY)].Visited = true
	frontier := make([]cellPos, 0, m.Width*m.Height)
	frontier = append(frontier, cellPos{startX, startY})

	// 2. Expand until the frontier drains.
	for len(frontier) > 0 {
		// Uniform random pick; order does not matter, so swap-remove.
		i := rng.Intn(len(frontier))
		c := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		// Connect every unvisited neighbor of the popped cell.
		for d := maze.North; d <= maze.West; d++ {
			dx, dy := d.Delta()
			nx, ny := c.x+dx, c.y+dy
			if !m.InBounds(nx, ny) {
				continue
			}
			neighbor := &m.Cells[m.Index(nx, ny)]
			if neighbor.Visited {
				continue
			}
			if err := m.RemoveWall(c.x, c.y, nx, ny); err != nil {
				return err
			}
			neighbor.Visited = true
			frontier = append(frontier, cellPos{nx, ny})
		}
	}

	return nil
}
