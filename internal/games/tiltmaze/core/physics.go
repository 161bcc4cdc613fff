package core

// Ball is the rolling ball: continuous world-space position and velocity in
// the same units as wall coordinates (cell index × cell size). Mutated in
// place by Step; owned by a single caller.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Tilt is the per-tick input vector, each axis in [-1, 1].
type Tilt struct {
	X, Y float64
}

// Params holds the simulation constants. Radii are fractions of the cell
// size so the physics is independent of the render scale.
type Params struct {
	Gravity         float64 // acceleration applied per unit of tilt
	Friction        float64 // per-tick velocity decay factor in (0, 1]
	BallRadiusRatio float64
	HoleRadiusRatio float64
	GoalRadiusRatio float64
}

// DefaultParams returns the tuning used by the shipped game.
func DefaultParams() Params {
	return Params{
		Gravity:         900,
		Friction:        0.975,
		BallRadiusRatio: 0.3,
		HoleRadiusRatio: 0.28,
		GoalRadiusRatio: 0.42,
	}
}

// Outcome is the result of one physics step.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFellInHole
	OutcomeReachedGoal
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeFellInHole:
		return "FellInHole"
	case OutcomeReachedGoal:
		return "ReachedGoal"
	default:
		return "Unknown"
	}
}

// ResetBall places the ball at the center of the start cell with zero
// velocity. Called by the game layer after a hole event, not by Step.
func ResetBall(b *Ball, cellSize float64) {
	b.X = cellSize / 2
	b.Y = cellSize / 2
	b.VX = 0
	b.VY = 0
}
