package maze

import "strings"

// Cell rendering fragments. Each cell occupies 4 columns: a corner or wall
// edge plus a 3-wide opening.
const (
	cellTopWall   = "---"
	cellTopOpen   = "   "
	cellSideWall  = "|"
	cellSideOpen  = " "
	cellInterior  = "   "
	cornerMark    = "+"
	closedSegment = "+---"
)

// Render produces a fixed-width text picture of the maze: for every maze
// row a north-wall line and a west-wall line, then one fully closed south
// border line. The east border is always closed because border walls are
// never removed.
// Complexity: O(W×H) time, O(W×H) memory for the output.
func (m *Maze) Render() string {
	var b strings.Builder
	b.Grow((m.Height*2 + 1) * (m.Width*4 + 2))

	for y := 0; y < m.Height; y++ {
		// North walls of row y.
		for x := 0; x < m.Width; x++ {
			if x == 0 {
				b.WriteString(cornerMark)
			}
			if m.HasWall(x, y, North) {
				b.WriteString(cellTopWall)
			} else {
				b.WriteString(cellTopOpen)
			}
			b.WriteString(cornerMark)
		}
		b.WriteByte('\n')

		// West walls of row y, closed on the far east side.
		for x := 0; x < m.Width; x++ {
			if m.HasWall(x, y, West) {
				b.WriteString(cellSideWall)
			} else {
				b.WriteString(cellSideOpen)
			}
			b.WriteString(cellInterior)
		}
		b.WriteString(cellSideWall)
		b.WriteByte('\n')
	}

	// Closing south border.
	for x := 0; x < m.Width; x++ {
		b.WriteString(closedSegment)
	}
	b.WriteString(cornerMark)
	b.WriteByte('\n')

	return b.String()
}
