package core

import "math"

// Step advances the ball by one tick of at most dt seconds and resolves
// collisions against the maze walls. Collision handling is two-pass: an
// axis sweep that catches fast motion across full-length wall boundaries,
// then a circle-vs-segment penetration pass that catches wall ends and
// corners the sweep cannot see. The pass order (X sweep, Y sweep, bounds
// clamp, penetration) is fixed; changing it changes diagonal-approach
// behavior.
//
// Callers supply dt pre-clamped (≈0.1s ceiling) so a single step never
// leaps an entire cell; the sweep only inspects boundaries adjacent to the
// travelled span.
func Step(b *Ball, tilt Tilt, m *Maze, p Params, cellSize, dt float64) Outcome {
	r := p.BallRadiusRatio * cellSize

	// Integrate. Friction is a flat per-tick decay, not scaled by dt: the
	// original game shipped with frame-rate dependent damping and replays
	// depend on it, so it stays.
	b.VX += tilt.X * p.Gravity * dt
	b.VY += tilt.Y * p.Gravity * dt
	b.VX *= p.Friction
	b.VY *= p.Friction

	sweepX(b, m, cellSize, r, dt)
	sweepY(b, m, cellSize, r, dt)
	clampToWorld(b, m, cellSize, r)
	resolvePenetration(b, m, cellSize, r)

	return detectHazard(b, m, p, cellSize)
}

// sweepX moves the ball horizontally and stops it at the first closed
// vertical wall its swept extent crosses in the ball's current row.
func sweepX(b *Ball, m *Maze, cellSize, r, dt float64) {
	row := cellIndex(b.Y, cellSize, m.Size)
	oldX := b.X
	newX := b.X + b.VX*dt

	lo := math.Min(oldX, newX) - r
	hi := math.Max(oldX, newX) + r
	for k := int(math.Floor(lo / cellSize)); k <= int(math.Ceil(hi/cellSize)); k++ {
		if !m.VWallClosed(k, row) {
			continue
		}
		wx := float64(k) * cellSize
		if b.VX > 0 && oldX <= wx && newX+r > wx {
			newX = wx - r
			b.VX = 0
		} else if b.VX < 0 && oldX >= wx && newX-r < wx {
			newX = wx + r
			b.VX = 0
		}
	}
	b.X = newX
}

// sweepY mirrors sweepX for vertical motion, using the column the ball ends
// up in after the X pass.
func sweepY(b *Ball, m *Maze, cellSize, r, dt float64) {
	col := cellIndex(b.X, cellSize, m.Size)
	oldY := b.Y
	newY := b.Y + b.VY*dt

	lo := math.Min(oldY, newY) - r
	hi := math.Max(oldY, newY) + r
	for k := int(math.Floor(lo / cellSize)); k <= int(math.Ceil(hi/cellSize)); k++ {
		if !m.HWallClosed(k, col) {
			continue
		}
		wy := float64(k) * cellSize
		if b.VY > 0 && oldY <= wy && newY+r > wy {
			newY = wy - r
			b.VY = 0
		} else if b.VY < 0 && oldY >= wy && newY-r < wy {
			newY = wy + r
			b.VY = 0
		}
	}
	b.Y = newY
}

// clampToWorld keeps the ball's extent inside [0, size·cellSize] on both
// axes, zeroing the velocity component that pushed it out.
func clampToWorld(b *Ball, m *Maze, cellSize, r float64) {
	world := float64(m.Size) * cellSize
	if b.X-r < 0 {
		b.X = r
		b.VX = 0
	} else if b.X+r > world {
		b.X = world - r
		b.VX = 0
	}
	if b.Y-r < 0 {
		b.Y = r
		b.VY = 0
	} else if b.Y+r > world {
		b.Y = world - r
		b.VY = 0
	}
}

// resolvePenetration tests the ball's circle against every closed wall
// segment of the cells under its bounding box and pushes it out of any
// overlap. The segments are finite, so this is what stops the ball at wall
// ends and corners. Runs last; it is the final authority on position.
func resolvePenetration(b *Ball, m *Maze, cellSize, r float64) {
	minCX := int(math.Floor((b.X - r) / cellSize))
	maxCX := int(math.Floor((b.X + r) / cellSize))
	minCY := int(math.Floor((b.Y - r) / cellSize))
	maxCY := int(math.Floor((b.Y + r) / cellSize))

	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			if !m.InBounds(cx, cy) {
				continue
			}
			c := m.Cells[cy][cx]
			x0 := float64(cx) * cellSize
			y0 := float64(cy) * cellSize
			x1 := x0 + cellSize
			y1 := y0 + cellSize

			if c.North {
				pushOut(b, x0, y0, x1, y0, r, false)
			}
			if c.South {
				pushOut(b, x0, y1, x1, y1, r, false)
			}
			if c.West {
				pushOut(b, x0, y0, x0, y1, r, true)
			}
			if c.East {
				pushOut(b, x1, y0, x1, y1, r, true)
			}
		}
	}
}

// pushOut resolves one circle-vs-segment overlap. The ball is displaced
// along the direction from the closest segment point to its center, and the
// velocity axis perpendicular to the wall is zeroed (vx for a vertical
// segment, vy for a horizontal one).
func pushOut(b *Ball, sx0, sy0, sx1, sy1, r float64, vertical bool) {
	px, py := closestOnSegment(b.X, b.Y, sx0, sy0, sx1, sy1)
	dx := b.X - px
	dy := b.Y - py
	dist := math.Hypot(dx, dy)
	if dist >= r {
		return
	}

	overlap := r - dist
	if dist > 1e-9 {
		b.X += dx / dist * overlap
		b.Y += dy / dist * overlap
	} else {
		// Center exactly on the segment. Eject along the wall normal,
		// opposing the incoming velocity so the ball backs out the way
		// it came.
		if vertical {
			if b.VX > 0 {
				b.X = sx0 - r
			} else {
				b.X = sx0 + r
			}
		} else {
			if b.VY > 0 {
				b.Y = sy0 - r
			} else {
				b.Y = sy0 + r
			}
		}
	}

	if vertical {
		b.VX = 0
	} else {
		b.VY = 0
	}
}

// closestOnSegment returns the point on segment (x0,y0)-(x1,y1) nearest to
// (px, py).
func closestOnSegment(px, py, x0, y0, x1, y1 float64) (float64, float64) {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return x0, y0
	}
	t := ((px-x0)*dx + (py-y0)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return x0 + t*dx, y0 + t*dy
}

// detectHazard checks the goal first — reaching it while grazing a hole
// still wins — then scans holes in placement order.
func detectHazard(b *Ball, m *Maze, p Params, cellSize float64) Outcome {
	gx, gy := HoleCenter(m.Goal, cellSize)
	if math.Hypot(b.X-gx, b.Y-gy) <= p.GoalRadiusRatio*cellSize {
		return OutcomeReachedGoal
	}

	for _, h := range m.Holes {
		hx, hy := HoleCenter(h, cellSize)
		if math.Hypot(b.X-hx, b.Y-hy) <= p.HoleRadiusRatio*cellSize {
			return OutcomeFellInHole
		}
	}
	return OutcomeNone
}

// cellIndex maps a world coordinate to a cell index, clamped to the grid.
func cellIndex(v, cellSize float64, size int) int {
	idx := int(math.Floor(v / cellSize))
	if idx < 0 {
		return 0
	}
	if idx >= size {
		return size - 1
	}
	return idx
}
