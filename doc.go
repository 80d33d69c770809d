// Package mazegrid generates rectangular perfect mazes and measures their
// structural quality.
//
// 🚀 What is mazegrid?
//
//	A small, pure-Go toolkit that brings together:
//		• Grid model: cells, paired wall flags, fixed-width text rendering
//		• Generators: randomized Kruskal (union-find), randomized Prim
//		  (frontier expansion), randomized DFS backtracker
//		• Quality analysis: dead ends, exhaustive longest/average simple
//		  paths, branching factor, weighted quality index
//
// ✨ Why choose mazegrid?
//
//   - Perfect mazes, guaranteed – every generator yields a spanning tree:
//     one simple path between any two cells, no cycles, no islands
//   - Deterministic – all randomness flows through one seedable stream,
//     so a fixed seed reproduces the identical maze
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages plus one command:
//
//	maze/        — Maze, Cell, Direction: the grid-and-walls data model
//	generate/    — Kruskal, Prim, DFS generators and the Generate dispatcher
//	quality/     — dead ends, path metrics, branching factor, quality index
//	cmd/mazectl/ — CLI: generate, render, time, and score a maze
//
// Quick ASCII example (a 3×2 DFS maze):
//
//	+---+---+---+
//	|       |   |
//	+---+   +   +
//	|           |
//	+---+---+---+
//
//	go get github.com/katalvlaran/mazegrid
package mazegrid
