// Package generate defines configuration options and sentinel errors for
// maze generation. It supports selecting between the Kruskal, Prim and DFS
// algorithms via Options.
package generate

import (
	"errors"
)

// ErrNilMaze indicates that a nil *maze.Maze was passed to a generator.
var ErrNilMaze = errors.New("generate: maze is nil")

// ErrUnknownAlgorithm indicates that Options.Algorithm matches none of the
// supported algorithm names.
var ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

// AlgorithmKruskal selects randomized Kruskal (shuffled edge list and union-find).
const AlgorithmKruskal = "kruskal"

// AlgorithmPrim selects randomized Prim (random frontier-cell expansion).
const AlgorithmPrim = "prim"

// AlgorithmDFS selects the randomized backtracker (explicit-stack DFS).
const AlgorithmDFS = "dfs"

// Options configures which generator Generate runs and which seed its
// random stream starts from. Use DefaultOptions() to get a default setup
// (Kruskal, deterministic default seed).
//
// Fields:
//
//	Algorithm string — one of AlgorithmKruskal, AlgorithmPrim, AlgorithmDFS.
//	Seed      int64  — random seed; 0 selects the fixed library default, so
//	                   the same Options always reproduce the same maze.
//
// See: generate.Generate, generate.Kruskal, generate.Prim, generate.DFS.
type Options struct {
	// Algorithm to run: AlgorithmKruskal, AlgorithmPrim or AlgorithmDFS.
	Algorithm string

	// Seed for the deterministic random stream; 0 means the library default.
	Seed int64
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithAlgorithm returns an Option that sets the generation Algorithm.
// Allowed values: AlgorithmKruskal, AlgorithmPrim, AlgorithmDFS.
func WithAlgorithm(name string) Option {
	return func(o *Options) {
		o.Algorithm = name
	}
}

// WithSeed returns an Option that sets the random seed. A seed of 0 keeps
// the fixed library default stream (reproducible runs).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns Options initialized for Kruskal by default:
//
//	– Algorithm = AlgorithmKruskal
//	– Seed      = 0 (fixed default stream).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgorithmKruskal,
		Seed:      0,
	}
}
