// Package maze defines core types and sentinel errors for the rectangular
// grid model used by the generators and analyzers of
// github.com/katalvlaran/mazegrid.
package maze

import (
	"errors"
)

// Sentinel errors for maze operations.
var (
	// ErrZeroDimension indicates a requested grid with no rows or no columns.
	ErrZeroDimension = errors.New("maze: width and height must be at least 1")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinates outside the grid")
	// ErrNotAdjacent indicates two cells that do not share a wall.
	ErrNotAdjacent = errors.New("maze: cells are not grid-adjacent")
)

// Direction identifies one side of a cell. It doubles as the index into
// Cell.Walls, so the four constants must stay in N, E, S, W order.
type Direction int

const (
	// North is the side facing row y-1.
	North Direction = iota
	// East is the side facing column x+1.
	East
	// South is the side facing row y+1.
	South
	// West is the side facing column x-1.
	West
)

// Opposite returns the side that faces d from the neighboring cell,
// e.g. North.Opposite() == South. Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Delta returns the grid offset (dx, dy) of the neighbor on side d.
// Complexity: O(1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}

	return "unknown"
}

// Cell is a single grid cell. Walls[d] == true means a wall is present on
// side d and there is no passage. Visited is scratch state for the
// generators; it carries no meaning once generation has finished.
type Cell struct {
	X, Y    int
	Visited bool
	Walls   [4]bool
}

// Maze owns a flat, row-major buffer of Width*Height cells. The buffer is
// the sole storage for wall state; callers must go through RemoveWall so
// that the two flags describing one physical wall never disagree.
type Maze struct {
	Width, Height int
	Cells         []Cell
}
