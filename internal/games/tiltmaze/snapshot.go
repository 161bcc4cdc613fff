package tiltmaze

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateRespawning  GameStateType = "respawning"
	StateWon         GameStateType = "won"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Seed   int32
	BallX  float64
	BallY  float64
	VX     float64
	VY     float64
	TiltX  float64
	TiltY  float64
	Deaths int
	Score  int
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.resetDelay > 0:
		state = StateRespawning
	}

	return Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Seed:   g.seed,
		BallX:  g.ball.X,
		BallY:  g.ball.Y,
		VX:     g.ball.VX,
		VY:     g.ball.VY,
		TiltX:  g.tilt.X,
		TiltY:  g.tilt.Y,
		Deaths: g.deaths,
		Score:  g.score,
		State:  state,
	}
}
