// Package tiltmaze provides the tilt-controlled maze game: tip the board
// with the arrow keys and roll the ball to the goal without falling into a
// hole. The daily mode generates one shared maze per calendar date.
package tiltmaze

import (
	"time"

	"github.com/vovakirdan/tilt-maze/internal/config"
	platformcore "github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze/core"
	"github.com/vovakirdan/tilt-maze/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeDaily Mode = "daily"
	ModeFree  Mode = "free"
)

// cellSize is the world-space edge length of one maze cell. The simulation
// runs in world units; Render maps them to terminal cells.
const cellSize = 100.0

// maxDT caps a single simulation step so a slow tick rate cannot make the
// ball leap across a cell between collision checks.
const maxDT = 0.1

// deathPenalty is the score cost of each hole fall.
const deathPenalty = 250

// Game implements the tilt maze.
type Game struct {
	mode   Mode
	cfg    config.TiltmazeConfig
	params core.Params

	maze   *core.Maze
	genErr error
	ball   core.Ball
	tilt   core.Tilt
	seed   int32

	tick     uint64
	dt       float64
	tickRate int
	deaths   int
	score    int

	// resetDelay freezes the simulation for a beat after a hole fall so the
	// death reads on screen before the ball snaps back to the start.
	resetDelay int

	message      string
	messageUntil uint64

	won      bool
	paused   bool
	tooSmall bool

	// Board layout in terminal cells, recomputed on Reset.
	cellW, cellH     int
	offsetX, offsetY int
	screenW, screenH int

	// now is stubbed in tests; daily mode derives its seed from it.
	now func() time.Time
}

// Package-level variables for config/difficulty (like breakout pattern)
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates the daily puzzle game.
func New() *Game {
	return &Game{mode: ModeDaily, now: time.Now}
}

// NewFree creates a free-play game seeded from the runtime config.
func NewFree() *Game {
	return &Game{mode: ModeFree, now: time.Now}
}

func init() {
	registry.Register("tiltmaze", func() registry.Game {
		return New()
	})
	registry.Register("tiltmaze_free", func() registry.Game {
		return NewFree()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFree {
		return "tiltmaze_free"
	}
	return "tiltmaze"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFree {
		return "Tilt Maze (Free Play)"
	}
	return "Tilt Maze (Daily)"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	c, err := config.LoadTiltmaze(configPath)
	if err != nil {
		c = config.DefaultTiltmazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTiltmazePreset(&c, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = c
	g.params = core.Params{
		Gravity:         c.Physics.Gravity,
		Friction:        c.Physics.Friction,
		BallRadiusRatio: c.Physics.BallRadiusRatio,
		HoleRadiusRatio: c.Physics.HoleRadiusRatio,
		GoalRadiusRatio: c.Physics.GoalRadiusRatio,
	}

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.dt = 1.0 / float64(g.tickRate)
	if g.dt > maxDT {
		g.dt = maxDT
	}

	if g.mode == ModeDaily {
		g.seed = DailySeed(g.now())
	} else {
		g.seed = int32(cfg.Seed)
	}

	g.maze, g.genErr = core.Generate(g.seed, c.Maze.Size, c.Maze.Holes)
	if g.genErr == nil {
		core.ResetBall(&g.ball, cellSize)
	}

	g.tilt = core.Tilt{}
	g.tick = 0
	g.deaths = 0
	g.score = 0
	g.resetDelay = 0
	g.message = ""
	g.messageUntil = 0
	g.won = false
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()
}

// layout centers the board on screen and checks it fits.
func (g *Game) layout() {
	g.cellW, g.cellH = 4, 2

	size := g.cfg.Maze.Size
	boardW := size*g.cellW + 1
	boardH := size*g.cellH + 1
	if g.screenW < boardW || g.screenH < boardH+hudHeight+1 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (g.screenW - boardW) / 2
	g.offsetY = hudHeight + (g.screenH-hudHeight-boardH)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	// Handle restart: replay the same board.
	if input.Has(platformcore.ActionRestart) && g.won {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     int64(g.seed),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall || g.genErr != nil {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	g.updateTilt(input)

	// Freeze the ball briefly after a death.
	if g.resetDelay > 0 {
		g.resetDelay--
		if g.resetDelay == 0 {
			core.ResetBall(&g.ball, cellSize)
			g.tilt = core.Tilt{}
		}
		return platformcore.StepResult{State: g.State()}
	}

	switch core.Step(&g.ball, g.tilt, g.maze, g.params, cellSize, g.dt) {
	case core.OutcomeFellInHole:
		g.deaths++
		g.resetDelay = g.tickRate / 2
		g.say("Swallowed! Back to the start.", g.tickRate)
	case core.OutcomeReachedGoal:
		g.won = true
		g.score = g.finalScore()
	}

	return platformcore.StepResult{State: g.State()}
}

// updateTilt decays the board toward level and applies held directions.
// The tilt, not the ball, is what the player controls.
func (g *Game) updateTilt(input platformcore.InputFrame) {
	decay := g.cfg.Input.TiltDecay
	step := g.cfg.Input.TiltStep

	g.tilt.X *= decay
	g.tilt.Y *= decay

	if input.Has(platformcore.ActionTiltLeft) {
		g.tilt.X -= step
	}
	if input.Has(platformcore.ActionTiltRight) {
		g.tilt.X += step
	}
	if input.Has(platformcore.ActionTiltUp) {
		g.tilt.Y -= step
	}
	if input.Has(platformcore.ActionTiltDown) {
		g.tilt.Y += step
	}

	g.tilt.X = clampTilt(g.tilt.X)
	g.tilt.Y = clampTilt(g.tilt.Y)
}

func clampTilt(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	// Snap near-level tilt to zero so the ball can actually come to rest.
	if v > -0.005 && v < 0.005 {
		return 0
	}
	return v
}

// finalScore rewards finishing fast on a big board. Never below 1: a win
// always beats no entry on the scoreboard.
func (g *Game) finalScore() int {
	size := g.cfg.Maze.Size
	s := size*size*100 - int(g.tick) - g.deaths*deathPenalty
	if s < 1 {
		s = 1
	}
	return s
}

// say shows a transient HUD message for the given number of ticks.
func (g *Game) say(msg string, ticks int) {
	g.message = msg
	g.messageUntil = g.tick + uint64(ticks)
}

// elapsedSeconds returns play time derived from the tick counter.
func (g *Game) elapsedSeconds() float64 {
	return float64(g.tick) / float64(g.tickRate)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
	}
}
