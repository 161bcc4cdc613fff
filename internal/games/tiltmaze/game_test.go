package tiltmaze

import (
	"testing"
	"time"

	platformcore "github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze/core"
)

func testRuntime(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// openRoom replaces the generated maze with an empty size×size room so
// tests can place the ball precisely. Interior walls open, frame closed.
func openRoom(g *Game, size int) *core.Maze {
	m := &core.Maze{Size: size, Cells: make([][]core.Cell, size)}
	for y := range m.Cells {
		m.Cells[y] = make([]core.Cell, size)
		for x := range m.Cells[y] {
			m.Cells[y][x] = core.Cell{
				North: y == 0,
				South: y == size-1,
				West:  x == 0,
				East:  x == size-1,
			}
		}
	}
	m.Goal = core.Hole{X: size - 1, Y: size - 1}
	g.maze = m
	g.cfg.Maze.Size = size
	return m
}

func TestDeterminism(t *testing.T) {
	// Two free-play games with the same seed and input script must stay in
	// lockstep down to the float bits.
	cfg := testRuntime(4242)

	g1 := NewFree()
	g1.Reset(cfg)
	g2 := NewFree()
	g2.Reset(cfg)

	input := platformcore.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i >= 10 && i < 40 {
			input.Set(platformcore.ActionTiltRight)
		}
		if i >= 60 && i < 120 {
			input.Set(platformcore.ActionTiltDown)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestDailySeed(t *testing.T) {
	d := time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)
	if got := DailySeed(d); got != 20260823 {
		t.Errorf("DailySeed = %d, want 20260823", got)
	}

	// Non-UTC wall clocks fold into the UTC date.
	loc := time.FixedZone("UTC+5", 5*3600)
	early := time.Date(2026, time.January, 1, 3, 0, 0, 0, loc) // 22:00 Dec 31 UTC
	if got := DailySeed(early); got != 20251231 {
		t.Errorf("DailySeed across zones = %d, want 20251231", got)
	}
}

func TestDailyModeUsesDate(t *testing.T) {
	g := New()
	g.now = func() time.Time {
		return time.Date(2026, time.August, 23, 9, 30, 0, 0, time.UTC)
	}
	g.Reset(testRuntime(999)) // runtime seed must be ignored in daily mode

	if g.seed != 20260823 {
		t.Errorf("daily seed = %d, want 20260823", g.seed)
	}
}

func TestTiltClampAndDecay(t *testing.T) {
	g := NewFree()
	g.Reset(testRuntime(7))
	openRoom(g, 3) // no holes: the ball just pins against the east wall

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionTiltRight)
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	if g.tilt.X > 1 || g.tilt.X < 0.9 {
		t.Errorf("held tilt = %v, want near full right within [0.9, 1]", g.tilt.X)
	}

	// Released, the board levels out.
	input.Clear()
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	if g.tilt.X != 0 {
		t.Errorf("tilt after release = %v, want 0", g.tilt.X)
	}
}

func TestHoleFallRespawn(t *testing.T) {
	g := NewFree()
	g.Reset(testRuntime(7))

	m := openRoom(g, 3)
	m.Holes = []core.Hole{{X: 1, Y: 1}}
	hx, hy := core.HoleCenter(m.Holes[0], cellSize)
	g.ball = core.Ball{X: hx, Y: hy}

	input := platformcore.NewInputFrame()
	g.Step(input)

	if g.deaths != 1 {
		t.Fatalf("deaths = %d, want 1 after falling in", g.deaths)
	}
	if g.Snapshot().State != StateRespawning {
		t.Fatalf("state = %v, want respawning", g.Snapshot().State)
	}

	// The ball stays frozen through the respawn delay, then snaps home.
	for i := 0; i < 60 && g.resetDelay > 0; i++ {
		g.Step(input)
	}
	if g.ball.X != cellSize/2 || g.ball.Y != cellSize/2 {
		t.Errorf("ball = (%v, %v), want start cell center", g.ball.X, g.ball.Y)
	}
	if g.deaths != 1 {
		t.Errorf("deaths = %d, want still 1", g.deaths)
	}
}

func TestWinAndScore(t *testing.T) {
	g := NewFree()
	g.Reset(testRuntime(7))

	openRoom(g, 3)
	gx, gy := core.HoleCenter(g.maze.Goal, cellSize)
	g.ball = core.Ball{X: gx, Y: gy}

	g.Step(platformcore.NewInputFrame())

	if !g.won {
		t.Fatal("game not won at goal center")
	}
	st := g.State()
	if !st.GameOver {
		t.Error("State().GameOver = false after win")
	}
	if st.Score < 1 {
		t.Errorf("score = %d, want ≥ 1", st.Score)
	}
}

func TestRestartReplaysSameBoard(t *testing.T) {
	g := NewFree()
	g.Reset(testRuntime(4242))
	seed := g.seed

	openRoom(g, 3)
	gx, gy := core.HoleCenter(g.maze.Goal, cellSize)
	g.ball = core.Ball{X: gx, Y: gy}
	g.Step(platformcore.NewInputFrame())
	if !g.won {
		t.Fatal("setup: game not won")
	}

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionRestart)
	g.Step(input)

	if g.won || g.tick != 0 {
		t.Errorf("restart did not reset: won=%v tick=%d", g.won, g.tick)
	}
	if g.seed != seed {
		t.Errorf("restart changed seed: %d -> %d", seed, g.seed)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := NewFree()
	g.Reset(testRuntime(7))

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionPause)
	g.Step(input)

	before := g.Snapshot()
	input.Clear()
	input.Set(platformcore.ActionTiltRight)
	for i := 0; i < 30; i++ {
		g.Step(input)
	}

	after := g.Snapshot()
	if before.Tick != after.Tick || before.BallX != after.BallX {
		t.Error("simulation advanced while paused")
	}
	if !g.State().Paused {
		t.Error("State().Paused = false")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewFree()
	g.Reset(platformcore.RuntimeConfig{Seed: 7, ScreenW: 20, ScreenH: 10, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("20x10 screen accepted for an 8x8 board")
	}
	g.Step(platformcore.NewInputFrame())
	if g.tick != 0 {
		t.Error("simulation advanced on a too-small screen")
	}

	// Rendering must still work and show the notice.
	s := platformcore.NewScreen(20, 10)
	g.Render(s)
}

func TestRenderPlacesGlyphs(t *testing.T) {
	g := NewFree()
	g.Reset(testRuntime(4242))

	s := platformcore.NewScreen(80, 24)
	g.Render(s)

	var ball, goal int
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			switch s.Get(x, y) {
			case '●':
				ball++
			case '◎':
				goal++
			}
		}
	}
	if ball != 1 {
		t.Errorf("rendered %d balls, want 1", ball)
	}
	if goal != 1 {
		t.Errorf("rendered %d goals, want 1", goal)
	}
}
