package core

import (
	"errors"
	"fmt"
)

// ErrHolePlacement is returned when hole placement cannot satisfy the
// adjacency constraint within the attempt budget.
var ErrHolePlacement = errors.New("maze: could not place holes under adjacency constraint")

// Generate builds the maze for a seed: a randomized depth-first spanning
// tree over a size×size grid, followed by rejection-sampled hole placement.
// The RNG call order is part of the contract — it is what makes the daily
// maze identical across clients.
//
// holeCount must leave room for the start and goal cells; beyond that the
// adjacency constraint can still make dense configurations infeasible, in
// which case Generate gives up after a bounded number of attempts instead
// of looping forever.
func Generate(seed int32, size, holeCount int) (*Maze, error) {
	if size < 2 {
		return nil, fmt.Errorf("maze: size %d too small", size)
	}
	if holeCount < 0 || holeCount > size*size-2 {
		return nil, fmt.Errorf("maze: hole count %d infeasible for size %d", holeCount, size)
	}

	rng := NewRNG(seed)
	m := &Maze{
		Size:  size,
		Cells: make([][]Cell, size),
	}
	for y := range m.Cells {
		m.Cells[y] = make([]Cell, size)
		for x := range m.Cells[y] {
			m.Cells[y][x] = Cell{North: true, East: true, South: true, West: true}
		}
	}

	carve(m, rng)

	if err := placeHoles(m, rng, holeCount); err != nil {
		return nil, err
	}

	m.Goal = Hole{X: size - 1, Y: size - 1}
	return m, nil
}

// carve runs the recursive backtracker with an explicit stack, opening one
// wall pair per newly visited cell. Total pushes equal size², so exactly
// size²−1 walls open and every cell joins the tree.
func carve(m *Maze, rng *RNG) {
	type pos struct{ x, y int }

	visited := make([][]bool, m.Size)
	for y := range visited {
		visited[y] = make([]bool, m.Size)
	}

	stack := []pos{{0, 0}}
	visited[0][0] = true

	// Neighbor probe order is fixed (N, E, S, W) so the uniform pick below
	// stays reproducible.
	dirs := []pos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates := make([]pos, 0, 4)
		for _, d := range dirs {
			nx, ny := cur.x+d.x, cur.y+d.y
			if m.InBounds(nx, ny) && !visited[ny][nx] {
				candidates = append(candidates, pos{nx, ny})
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		openWall(m, cur.x, cur.y, next.x, next.y)
		visited[next.y][next.x] = true
		stack = append(stack, next)
	}
}

// openWall removes the shared wall between two adjacent cells on both sides.
func openWall(m *Maze, x1, y1, x2, y2 int) {
	switch {
	case x2 == x1+1:
		m.Cells[y1][x1].East = false
		m.Cells[y2][x2].West = false
	case x2 == x1-1:
		m.Cells[y1][x1].West = false
		m.Cells[y2][x2].East = false
	case y2 == y1+1:
		m.Cells[y1][x1].South = false
		m.Cells[y2][x2].North = false
	case y2 == y1-1:
		m.Cells[y1][x1].North = false
		m.Cells[y2][x2].South = false
	}
}

// placeHoles rejection-samples hole cells. A candidate is rejected if the
// cell is taken, is the start or goal cell, or is reachable from an existing
// hole through a single open passage (two hazards in a row would make the
// maze unwinnable in practice). Accepted holes get a sub-cell offset in
// [-0.3, 0.3] per axis.
//
// The attempt cap only bounds the loop; accepted samples keep the plain
// rejection-sampling distribution.
func placeHoles(m *Maze, rng *RNG, holeCount int) error {
	size := m.Size
	used := make(map[[2]int]bool, holeCount+2)
	used[[2]int{0, 0}] = true
	used[[2]int{size - 1, size - 1}] = true

	maxAttempts := 200 * size * size

	for placed := 0; placed < holeCount; {
		if maxAttempts--; maxAttempts < 0 {
			return fmt.Errorf("%w: %d of %d placed (size %d)", ErrHolePlacement, placed, holeCount, size)
		}

		hx := rng.Intn(size)
		hy := rng.Intn(size)
		if used[[2]int{hx, hy}] {
			continue
		}
		if adjacentThroughOpenWall(m, hx, hy) {
			continue
		}

		m.Holes = append(m.Holes, Hole{
			X:       hx,
			Y:       hy,
			OffsetX: rng.Range(-0.3, 0.3),
			OffsetY: rng.Range(-0.3, 0.3),
		})
		used[[2]int{hx, hy}] = true
		placed++
	}
	return nil
}

// adjacentThroughOpenWall reports whether (x, y) neighbors an already placed
// hole with the wall between them open.
func adjacentThroughOpenWall(m *Maze, x, y int) bool {
	for _, h := range m.Holes {
		if m.OpenBetween(x, y, h.X, h.Y) {
			return true
		}
	}
	return false
}
