package quality_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazegrid/generate" // generators for property tests
	"github.com/katalvlaran/mazegrid/maze"     // grid model
	"github.com/katalvlaran/mazegrid/quality"  // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor builds a 1×n horizontal corridor: every internal wall removed.
func corridor(t *testing.T, n int) *maze.Maze {
	t.Helper()
	m, err := maze.New(n, 1)
	require.NoError(t, err)
	for x := 0; x < n-1; x++ {
		require.NoError(t, m.RemoveWall(x, 0, x+1, 0))
	}

	return m
}

// TestAnalyze_NilMaze verifies the nil guard.
func TestAnalyze_NilMaze(t *testing.T) {
	_, err := quality.Analyze(nil)
	assert.ErrorIs(t, err, quality.ErrNilMaze)
}

// TestCountDeadEnds_SingleCell pins the 1×1 edge case: the lone cell keeps
// all four walls, degree 0, and the exactly-three-walls rule does NOT count
// it as a dead end.
func TestCountDeadEnds_SingleCell(t *testing.T) {
	m, err := maze.New(1, 1)
	require.NoError(t, err)

	q, err := quality.Analyze(m)
	require.NoError(t, err)

	assert.Equal(t, 0, q.DeadEnds)
	assert.Equal(t, 0, q.LongestPath)
	assert.InDelta(t, 0.0, q.AvgPathLength, 1e-15)
	assert.InDelta(t, 0.0, q.BranchingFactor, 1e-15)
}

// TestAnalyze_TwoByOne pins the concrete 2×1 scenario: one removed wall,
// both cells dead ends, longest path 1, branching factor 1.0.
func TestAnalyze_TwoByOne(t *testing.T) {
	m := corridor(t, 2)

	q, err := quality.Analyze(m)
	require.NoError(t, err)

	assert.Equal(t, 2, q.DeadEnds)
	assert.Equal(t, 1, q.LongestPath)
	assert.InDelta(t, 1.0, q.AvgPathLength, 1e-15)
	assert.InDelta(t, 1.0, q.BranchingFactor, 1e-15)
}

// TestAnalyze_Corridor4 walks the path accounting on a 4-cell corridor by
// hand: the two end starts each yield one terminal path of length 3; the
// two middle starts each yield two terminal paths (lengths 1 and 2).
// Totals: 6 terminal paths of summed length 12, average 2.0.
func TestAnalyze_Corridor4(t *testing.T) {
	m := corridor(t, 4)

	longest, totalLength, totalPaths := quality.MeasurePaths(m)
	assert.Equal(t, 3, longest)
	assert.Equal(t, 12, totalLength)
	assert.Equal(t, 6, totalPaths)

	q, err := quality.Analyze(m)
	require.NoError(t, err)
	assert.Equal(t, 2, q.DeadEnds)
	assert.Equal(t, 3, q.LongestPath)
	assert.InDelta(t, 2.0, q.AvgPathLength, 1e-15)
	// 3 removed walls over 4 cells: 2·3/4.
	assert.InDelta(t, 1.5, q.BranchingFactor, 1e-15)
}

// TestBranchingFactor_GeneratedTree verifies the exact tree identity
// 2·(n-1)/n for mazes carved by each generator, plus the dead-end bound
// and branching-factor range on the same mazes.
func TestBranchingFactor_GeneratedTree(t *testing.T) {
	algorithms := []struct {
		name string
		run  func(*maze.Maze, *rand.Rand) error
	}{
		{generate.AlgorithmKruskal, generate.Kruskal},
		{generate.AlgorithmPrim, generate.Prim},
		{generate.AlgorithmDFS, generate.DFS},
	}
	sizes := []struct{ w, h int }{{1, 1}, {2, 3}, {6, 6}, {10, 4}}

	for _, alg := range algorithms {
		for _, sz := range sizes {
			t.Run(alg.name, func(t *testing.T) {
				m, err := maze.New(sz.w, sz.h)
				require.NoError(t, err)
				require.NoError(t, alg.run(m, rand.New(rand.NewSource(5))))

				n := sz.w * sz.h
				q, err := quality.Analyze(m)
				require.NoError(t, err)

				want := 2.0 * float64(n-1) / float64(n)
				assert.InDelta(t, want, q.BranchingFactor, 1e-12,
					"%s %dx%d: spanning tree branching factor", alg.name, sz.w, sz.h)
				assert.GreaterOrEqual(t, q.BranchingFactor, 0.0)
				assert.LessOrEqual(t, q.BranchingFactor, 4.0)
				assert.LessOrEqual(t, q.DeadEnds, n, "dead ends bounded by cell count")
			})
		}
	}
}

// TestIndex_KnownValue pins the weighted sum on the 2×1 metrics:
// 0.25·(1-1) + 0.30·0.5 + 0.25·0.5 + 0.20·1.0 = 0.475.
func TestIndex_KnownValue(t *testing.T) {
	q := quality.Metrics{
		DeadEnds:        2,
		LongestPath:     1,
		AvgPathLength:   1.0,
		BranchingFactor: 1.0,
	}
	assert.InDelta(t, 0.475, quality.Index(q, 2), 1e-15)
}

// TestIndex_Deterministic verifies that identical metrics produce the
// identical index to floating-point equality, and that the index stays
// non-negative for valid mazes.
func TestIndex_Deterministic(t *testing.T) {
	m, err := maze.New(6, 5)
	require.NoError(t, err)
	require.NoError(t, generate.Kruskal(m, rand.New(rand.NewSource(99))))

	q, err := quality.Analyze(m)
	require.NoError(t, err)

	first := quality.Index(q, 30)
	second := quality.Index(q, 30)
	assert.Equal(t, first, second, "pure function: same metrics in, same index out")
	assert.GreaterOrEqual(t, first, 0.0)
}

// TestMeasurePaths_LeavesVisitedClean verifies the per-call visited marking
// is recursion-local: the persistent Visited flags are untouched.
func TestMeasurePaths_LeavesVisitedClean(t *testing.T) {
	m := corridor(t, 3)
	quality.MeasurePaths(m)
	for i := range m.Cells {
		assert.False(t, m.Cells[i].Visited, "cell %d Visited flag mutated by analysis", i)
	}
}
