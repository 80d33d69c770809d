// Package generate provides an implementation of randomized Kruskal maze
// generation: a uniformly shuffled edge list filtered through union-find.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/maze"
)

// wallEdge identifies one internal wall of the grid graph by the two
// adjacent cells it separates.
type wallEdge struct {
	x1, y1 int
	x2, y2 int
}

// internalEdges enumerates every internal edge of the grid graph exactly
// once: each cell contributes its East and its South neighbor edge, so no
// wall appears twice. Complexity: O(W×H) time and memory.
func internalEdges(m *maze.Maze) []wallEdge {
	edges := make([]wallEdge, 0, 2*m.Width*m.Height-m.Width-m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if x < m.Width-1 {
				edges = append(edges, wallEdge{x, y, x + 1, y})
			}
			if y < m.Height-1 {
				edges = append(edges, wallEdge{x, y, x, y + 1})
			}
		}
	}

	return edges
}

// Kruskal carves a perfect maze into m using randomized Kruskal.
//
// Steps:
//  1. Enumerate every internal wall once (East and South neighbor per cell).
//  2. Shuffle the edge list uniformly (Fisher–Yates).
//  3. Initialize union-find with one singleton set per cell.
//  4. Iterate the shuffled edges: when the endpoints are in different sets,
//     remove the wall between them and union the sets.
//
// The grid graph of any rectangular maze is connected, so once the list is
// exhausted exactly Width×Height-1 walls have been removed (tree property).
//
// A nil rng selects the deterministic default stream.
//
// Error Conditions:
//   - ErrNilMaze : m is nil.
//
// Complexity: O(E·α(V)) time, O(E + V) memory, E = internal edges, V = cells.
func Kruskal(m *maze.Maze, rng *rand.Rand) error {
	if m == nil {
		return ErrNilMaze
	}
	rng = ensureRNG(rng)

	edges := internalEdges(m)
	shuffleEdgesInPlace(edges, rng)

	sets := newUnionFind(m.Width * m.Height)
	for _, e := range edges {
		// union reports whether the endpoints were still disconnected;
		// only then does removing the wall keep the passage graph acyclic.
		if sets.union(m.Index(e.x1, e.y1), m.Index(e.x2, e.y2)) {
			if err := m.RemoveWall(e.x1, e.y1, e.x2, e.y2); err != nil {
				return err
			}
		}
	}

	return nil
}
