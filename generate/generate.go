package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegrid/maze"
)

// Generate runs the generator selected by opts on m, carving a perfect
// maze in place: when it returns nil, the removed walls form a spanning
// tree of the grid graph (every cell reachable, no cycles).
//
//	– Algorithm == AlgorithmKruskal: calls Kruskal(m, rng).
//	– Algorithm == AlgorithmPrim:    calls Prim(m, rng).
//	– Algorithm == AlgorithmDFS:     calls DFS(m, rng).
//	– Otherwise:                     returns ErrUnknownAlgorithm.
//
// The random stream is derived from Options.Seed (0 ⇒ fixed default), so a
// fixed seed reproduces the same maze for each algorithm.
//
// Note: this is optional scaffolding—Kruskal, Prim and DFS can still be
// called directly with a caller-owned *rand.Rand.
func Generate(m *maze.Maze, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}

	// Apply options over defaults.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	rng := rngFromSeed(o.Seed)

	// Dispatch by algorithm name.
	switch o.Algorithm {
	case AlgorithmKruskal:
		return Kruskal(m, rng)
	case AlgorithmPrim:
		return Prim(m, rng)
	case AlgorithmDFS:
		return DFS(m, rng)
	default:
		return fmt.Errorf("generate: %q: %w", o.Algorithm, ErrUnknownAlgorithm)
	}
}

// ensureRNG returns rng, or the deterministic default stream when rng is nil.
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rngFromSeed(0)
	}

	return rng
}
