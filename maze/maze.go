// Package maze models a rectangular grid of cells separated by walls.
// A freshly constructed Maze has every wall in place; the generators in
// the generate package carve passages by removing walls until the open
// passages form a spanning tree of the grid graph.
package maze

// New constructs a width×height grid with all four walls present on every
// cell and Visited cleared. Returns ErrZeroDimension when either dimension
// is smaller than 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, ErrZeroDimension
	}
	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = Cell{
				X:     x,
				Y:     y,
				Walls: [4]bool{true, true, true, true},
			}
		}
	}

	return &Maze{Width: width, Height: height, Cells: cells}, nil
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Precondition: (x,y) is in bounds. Complexity: O(1).
func (m *Maze) Index(x, y int) int {
	return y*m.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (m *Maze) Coordinate(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// CellAt returns a pointer to the cell at (x,y).
// Precondition: (x,y) is in bounds. Complexity: O(1).
func (m *Maze) CellAt(x, y int) *Cell {
	return &m.Cells[m.Index(x, y)]
}

// HasWall reports whether the cell at (x,y) has a wall on side d.
// Precondition: (x,y) is in bounds. Complexity: O(1).
func (m *Maze) HasWall(x, y int, d Direction) bool {
	return m.Cells[m.Index(x, y)].Walls[d]
}

// OpenPassages returns the number of missing walls of the cell at (x,y),
// i.e. the degree of the cell in the passage graph.
// Precondition: (x,y) is in bounds. Complexity: O(1).
func (m *Maze) OpenPassages(x, y int) int {
	var n int
	for _, wall := range m.Cells[m.Index(x, y)].Walls {
		if !wall {
			n++
		}
	}

	return n
}

// RemoveWall removes the wall between the two grid-adjacent cells (x1,y1)
// and (x2,y2), clearing the flag on both facing sides in one step so the
// pairwise wall state never disagrees.
//
// Error Conditions:
//   - ErrOutOfBounds : either coordinate lies outside the grid.
//   - ErrNotAdjacent : the cells do not differ by exactly 1 in exactly one axis.
//
// Complexity: O(1).
func (m *Maze) RemoveWall(x1, y1, x2, y2 int) error {
	if !m.InBounds(x1, y1) || !m.InBounds(x2, y2) {
		return ErrOutOfBounds
	}
	dx, dy := x2-x1, y2-y1
	if dx*dx+dy*dy != 1 {
		return ErrNotAdjacent
	}

	idx1 := m.Index(x1, y1)
	idx2 := m.Index(x2, y2)
	switch {
	case y1 < y2: // (x2,y2) lies south of (x1,y1)
		m.Cells[idx1].Walls[South] = false
		m.Cells[idx2].Walls[North] = false
	case y1 > y2:
		m.Cells[idx1].Walls[North] = false
		m.Cells[idx2].Walls[South] = false
	case x1 < x2:
		m.Cells[idx1].Walls[East] = false
		m.Cells[idx2].Walls[West] = false
	default:
		m.Cells[idx1].Walls[West] = false
		m.Cells[idx2].Walls[East] = false
	}

	return nil
}
