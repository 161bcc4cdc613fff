package core

// Cell is one grid unit with four independent wall flags. A true flag means
// the wall is present. Wall state is mirrored on both sides of every shared
// boundary and never changes after generation.
type Cell struct {
	North bool
	East  bool
	South bool
	West  bool
}

// Hole is a hazard trigger placed in a cell. The offsets shift its center
// away from the cell midpoint by a fraction of the cell size, keeping the
// trigger circle clear of the surrounding walls.
type Hole struct {
	X, Y             int
	OffsetX, OffsetY float64
}

// Maze is an immutable spanning-tree maze: Size×Size cells with exactly
// Size²−1 open wall pairs, a list of holes, and the goal cell at the
// far corner. Built once per session, read-only afterward.
type Maze struct {
	Size  int
	Cells [][]Cell // indexed [y][x]
	Holes []Hole
	Goal  Hole
}

// At returns the cell at (x, y). Callers must stay in bounds.
func (m *Maze) At(x, y int) *Cell {
	return &m.Cells[y][x]
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Size && y >= 0 && y < m.Size
}

// OpenBetween reports whether two cells share an open passage. Cells that
// are not orthogonal grid neighbors never do.
func (m *Maze) OpenBetween(x1, y1, x2, y2 int) bool {
	if !m.InBounds(x1, y1) || !m.InBounds(x2, y2) {
		return false
	}
	dx, dy := x2-x1, y2-y1
	switch {
	case dx == 1 && dy == 0:
		return !m.Cells[y1][x1].East
	case dx == -1 && dy == 0:
		return !m.Cells[y1][x1].West
	case dx == 0 && dy == 1:
		return !m.Cells[y1][x1].South
	case dx == 0 && dy == -1:
		return !m.Cells[y1][x1].North
	}
	return false
}

// VWallClosed reports whether the vertical grid line x=k is a wall at the
// given row, i.e. the boundary between columns k-1 and k. The outer frame
// (k=0 and k=Size) is always closed.
func (m *Maze) VWallClosed(k, row int) bool {
	if row < 0 || row >= m.Size {
		return true
	}
	if k <= 0 || k >= m.Size {
		return true
	}
	return m.Cells[row][k].West
}

// HWallClosed reports whether the horizontal grid line y=k is a wall at the
// given column, i.e. the boundary between rows k-1 and k.
func (m *Maze) HWallClosed(k, col int) bool {
	if col < 0 || col >= m.Size {
		return true
	}
	if k <= 0 || k >= m.Size {
		return true
	}
	return m.Cells[k][col].North
}

// OpenWallPairs counts the open shared boundaries across the whole grid.
// A spanning-tree maze has exactly Size²−1 of them.
func (m *Maze) OpenWallPairs() int {
	open := 0
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if x+1 < m.Size && !m.Cells[y][x].East {
				open++
			}
			if y+1 < m.Size && !m.Cells[y][x].South {
				open++
			}
		}
	}
	return open
}

// HoleCenter returns the world-space center of a hole for the given cell size.
func HoleCenter(h Hole, cellSize float64) (float64, float64) {
	x := (float64(h.X) + 0.5 + h.OffsetX) * cellSize
	y := (float64(h.Y) + 0.5 + h.OffsetY) * cellSize
	return x, y
}
