// Package quality measures how "good" a perfect maze is, structurally.
//
// What:
//
//   - CountDeadEnds: cells with exactly one open passage.
//   - MeasurePaths: exhaustive per-start DFS enumeration of simple paths,
//     yielding the longest path and the average terminal-path length.
//   - BranchingFactor: mean open passages per cell.
//   - Index: weighted scalar combining the four metrics
//     (0.25 dead ends, 0.30 longest path, 0.25 avg path, 0.20 branching).
//
// Why:
//
//   - The three generators all produce spanning trees, yet feel very
//     different to walk: long-corridor DFS mazes versus scattered Kruskal
//     branches. These metrics make that difference measurable and
//     comparable across algorithms and seeds.
//
// Complexity:
//
//   - CountDeadEnds, BranchingFactor: O(W×H).
//   - MeasurePaths: exhaustive search over simple paths from every start.
//     On a tree the enumeration is bounded by leaf count per start, which
//     is practical for small-to-moderate mazes; recursion depth follows
//     the longest simple path and is the known scaling limit on very
//     large grids.
//
// Errors:
//
//   - ErrNilMaze: nil maze passed to Analyze.
package quality
