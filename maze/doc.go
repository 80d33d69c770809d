// Package maze provides the rectangular grid-and-walls data model that the
// rest of the module operates on.
//
// What:
//
//   - Maze owns a flat row-major []Cell buffer of Width×Height cells.
//   - Cell keeps four wall flags indexed by Direction (N, E, S, W).
//   - RemoveWall clears both facing flags of one physical wall atomically.
//   - Render draws the grid as fixed-width text with +, - and | characters.
//
// Why:
//
//   - Spanning-tree maze generation: generators carve passages in place.
//   - Structural analysis: wall flags double as the adjacency of the
//     passage graph, so metrics need no separate graph representation.
//
// Invariants:
//
//   - A wall between two adjacent cells is stored twice, once per cell, and
//     the two flags always agree (RemoveWall is the only mutator).
//   - Border walls are never removed; every cell keeps a closed outer edge.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - RemoveWall: O(1).
//   - Render:     O(W×H).
//
// Errors:
//
//   - ErrZeroDimension: requested grid has no rows or no columns.
//   - ErrOutOfBounds:   coordinates outside the grid.
//   - ErrNotAdjacent:   cells passed to RemoveWall share no wall.
package maze
