// Package generate carves perfect mazes into a maze.Maze using one of
// three classic spanning-tree algorithms.
//
// What:
//
//   - Kruskal: shuffle the internal-edge list, union-find filters cycles.
//   - Prim: uniform random frontier-cell expansion (no priority queue; one
//     pop connects ALL unvisited neighbors, a deliberate deviation from
//     textbook randomized Prim that the package preserves verbatim).
//   - DFS: randomized backtracker on an explicit stack, start at (0,0).
//   - Generate: name-based dispatch over the three, driven by Options.
//
// Why:
//
//   - Every algorithm yields a spanning tree — exactly Width×Height-1
//     removed walls, every cell reachable, no cycles — but each has a
//     distinct structural fingerprint: Kruskal scatters short branches,
//     Prim grows bushy regions, DFS digs long winding corridors. The
//     quality package quantifies those differences.
//
// Determinism:
//
//   - All randomness flows through one seeded *rand.Rand (see rng.go).
//     Seed 0 selects a fixed library default, so identical Options always
//     reproduce the identical maze — the basis of the regression tests.
//
// Complexity:
//
//   - Kruskal: O(E·α(V)) time, O(E+V) memory.
//   - Prim:    O(V) time, O(V) memory.
//   - DFS:     O(V) time, O(V) memory.
//
// Options:
//
//   - WithAlgorithm(name): AlgorithmKruskal, AlgorithmPrim or AlgorithmDFS.
//   - WithSeed(seed):      deterministic stream; 0 keeps the fixed default.
//
// Errors:
//
//   - ErrNilMaze:          nil maze passed to a generator.
//   - ErrUnknownAlgorithm: Options.Algorithm matches no known name.
package generate
