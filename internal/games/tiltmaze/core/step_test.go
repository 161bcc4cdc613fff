package core

import (
	"math"
	"testing"
)

// testParams matches the reference tuning used by the collision tests:
// a deliberately large ball so wall clearances are tight.
func testParams() Params {
	p := DefaultParams()
	p.BallRadiusRatio = 0.4
	return p
}

// openMaze builds a size×size maze with every interior wall open and the
// outer frame closed — a big empty room for physics tests.
func openMaze(size int) *Maze {
	m := &Maze{Size: size, Cells: make([][]Cell, size)}
	for y := range m.Cells {
		m.Cells[y] = make([]Cell, size)
		for x := range m.Cells[y] {
			m.Cells[y][x] = Cell{
				North: y == 0,
				South: y == size-1,
				West:  x == 0,
				East:  x == size-1,
			}
		}
	}
	m.Goal = Hole{X: size - 1, Y: size - 1}
	return m
}

// closeEastWall closes the wall pair between (x,y) and (x+1,y).
func closeEastWall(m *Maze, x, y int) {
	m.Cells[y][x].East = true
	m.Cells[y][x+1].West = true
}

func TestStraightWallStop(t *testing.T) {
	m := openMaze(3)
	closeEastWall(m, 0, 0)

	b := &Ball{X: 50, Y: 50, VX: 500}
	out := Step(b, Tilt{X: 1}, m, testParams(), 100, 0.1)

	if out != OutcomeNone {
		t.Fatalf("outcome = %v, want None", out)
	}
	// Wall at x=100, radius 40: surface contact at x=60.
	if b.X > 60+1e-9 {
		t.Errorf("ball passed wall: x = %v, want ≤ 60", b.X)
	}
	if b.VX != 0 {
		t.Errorf("vx = %v, want 0 after wall hit", b.VX)
	}
}

func TestOpenPassagePassthrough(t *testing.T) {
	m := openMaze(3)

	b := &Ball{X: 80, Y: 50, VX: 100}
	Step(b, Tilt{}, m, testParams(), 100, 0.016)

	if b.X <= 80 {
		t.Errorf("ball stopped at open boundary: x = %v", b.X)
	}
	if b.VX == 0 {
		t.Error("vx zeroed with no wall in the way")
	}
}

func TestFastBallDoesNotTunnel(t *testing.T) {
	m := openMaze(3)
	closeEastWall(m, 1, 0) // wall at x=200

	b := &Ball{X: 50, Y: 50, VX: 5000}
	Step(b, Tilt{X: 1}, m, testParams(), 100, 0.1)

	if b.X > 160+1e-9 {
		t.Errorf("fast ball tunneled: x = %v, want ≤ 160", b.X)
	}
	if b.VX != 0 {
		t.Errorf("vx = %v, want 0", b.VX)
	}
}

func TestWorldBoundsClamp(t *testing.T) {
	m := openMaze(3)
	p := testParams()
	r := p.BallRadiusRatio * 100

	b := &Ball{X: 50, Y: 50, VX: -500}
	for i := 0; i < 10; i++ {
		Step(b, Tilt{X: -1}, m, p, 100, 0.05)
		if b.X-r < -1e-9 {
			t.Fatalf("ball extent left the world: x = %v", b.X)
		}
	}
	if b.X != r {
		t.Errorf("x = %v, want resting edge at boundary (x = %v)", b.X, r)
	}
	if b.VX != 0 {
		t.Errorf("vx = %v, want 0 at boundary", b.VX)
	}

	// And the far side.
	b = &Ball{X: 250, Y: 150, VX: 500}
	for i := 0; i < 10; i++ {
		Step(b, Tilt{X: 1}, m, p, 100, 0.05)
		if b.X+r > 300+1e-9 {
			t.Fatalf("ball extent beyond far boundary: x = %v", b.X)
		}
	}
	if b.X != 300-r {
		t.Errorf("x = %v, want %v", b.X, 300-r)
	}
}

// A wall one cell long: the axis sweep only sees full boundary crossings at
// the ball's row, so containment at the wall's end depends entirely on the
// penetration pass treating walls as finite segments.
func TestWallEndContainment(t *testing.T) {
	m := openMaze(3)
	closeEastWall(m, 0, 0) // segment x=100, y ∈ [0,100]

	p := testParams()
	r := p.BallRadiusRatio * 100

	b := &Ball{X: 150, Y: 50}
	for i := 0; i < 600; i++ {
		Step(b, Tilt{X: -1, Y: 1}, m, p, 100, 0.016)

		// While beside the wall span the ball must stay on its own side,
		// pressed against the surface at worst.
		if b.Y <= 100 && b.X < 100+r-1e-6 {
			t.Fatalf("tick %d: ball slipped past wall: (%v, %v)", i, b.X, b.Y)
		}
		// And it may never overlap the segment itself, including its end.
		if d := segmentDist(b.X, b.Y, 100, 0, 100, 100); d < r-1e-6 {
			t.Fatalf("tick %d: ball overlaps wall segment by %v", i, r-d)
		}
	}

	// Under down-left tilt the ball must eventually round the corner into
	// the left column rather than stick forever.
	if b.X > 100 {
		t.Errorf("ball never rounded the wall end: (%v, %v)", b.X, b.Y)
	}
}

func TestGoalPriorityOverHole(t *testing.T) {
	m := openMaze(3)
	// A hole sharing the goal cell: both triggers cover the cell center.
	m.Holes = []Hole{{X: 2, Y: 2}}

	b := &Ball{X: 250, Y: 250}
	out := Step(b, Tilt{}, m, DefaultParams(), 100, 0.016)

	if out != OutcomeReachedGoal {
		t.Errorf("outcome = %v, want ReachedGoal when both triggers overlap", out)
	}
}

func TestGoalExactCenter(t *testing.T) {
	m := openMaze(3)
	b := &Ball{X: 250, Y: 250}

	if out := Step(b, Tilt{}, m, DefaultParams(), 100, 0.016); out != OutcomeReachedGoal {
		t.Errorf("outcome = %v, want ReachedGoal at goal center", out)
	}
}

func TestHoleExactCenter(t *testing.T) {
	m := openMaze(3)
	m.Holes = []Hole{{X: 1, Y: 0, OffsetX: 0.1, OffsetY: -0.2}}

	hx, hy := HoleCenter(m.Holes[0], 100)
	b := &Ball{X: hx, Y: hy}

	if out := Step(b, Tilt{}, m, DefaultParams(), 100, 0.016); out != OutcomeFellInHole {
		t.Errorf("outcome = %v, want FellInHole at hole center", out)
	}
}

func TestNoHazardFarFromTriggers(t *testing.T) {
	m := openMaze(3)
	m.Holes = []Hole{{X: 2, Y: 0}}

	b := &Ball{X: 150, Y: 150}
	if out := Step(b, Tilt{}, m, DefaultParams(), 100, 0.016); out != OutcomeNone {
		t.Errorf("outcome = %v, want None", out)
	}
}

func TestFrictionAppliedPerCall(t *testing.T) {
	m := openMaze(3)
	p := DefaultParams()

	b := &Ball{X: 150, Y: 150, VX: 100}
	Step(b, Tilt{}, m, p, 100, 0.016)

	// No tilt: velocity only decays by the flat per-call factor.
	if want := 100 * p.Friction; math.Abs(b.VX-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", b.VX, want)
	}
}

func TestIntegrationAppliesTilt(t *testing.T) {
	m := openMaze(3)
	p := DefaultParams()

	b := &Ball{X: 150, Y: 150}
	Step(b, Tilt{X: 0.5, Y: -0.25}, m, p, 100, 0.016)

	wantVX := 0.5 * p.Gravity * 0.016 * p.Friction
	wantVY := -0.25 * p.Gravity * 0.016 * p.Friction
	if math.Abs(b.VX-wantVX) > 1e-9 || math.Abs(b.VY-wantVY) > 1e-9 {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", b.VX, b.VY, wantVX, wantVY)
	}
	if b.X <= 150 || b.Y >= 150 {
		t.Errorf("position = (%v, %v), expected movement right and up", b.X, b.Y)
	}
}

func TestResetBall(t *testing.T) {
	b := &Ball{X: 250, Y: 250, VX: 12, VY: -3}
	ResetBall(b, 100)

	if b.X != 50 || b.Y != 50 {
		t.Errorf("position = (%v, %v), want start cell center (50, 50)", b.X, b.Y)
	}
	if b.VX != 0 || b.VY != 0 {
		t.Errorf("velocity = (%v, %v), want zero", b.VX, b.VY)
	}
}

// The generated maze and the physics together: a ball resting in the start
// cell of a real maze must not report any hazard.
func TestStepOnGeneratedMaze(t *testing.T) {
	m, err := Generate(20260823, 8, 6)
	if err != nil {
		t.Fatal(err)
	}

	b := &Ball{}
	ResetBall(b, 100)

	for i := 0; i < 60; i++ {
		if out := Step(b, Tilt{}, m, DefaultParams(), 100, 0.016); out != OutcomeNone {
			t.Fatalf("tick %d: outcome %v with no tilt from start cell", i, out)
		}
	}
}

func segmentDist(px, py, x0, y0, x1, y1 float64) float64 {
	cx, cy := closestOnSegment(px, py, x0, y0, x1, y1)
	return math.Hypot(px-cx, py-cy)
}
