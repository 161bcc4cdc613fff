// Package config provides YAML-based game configuration loading and
// difficulty presets for the tilt maze.
package config

// TiltmazeConfig contains all configuration for the tilt maze game.
type TiltmazeConfig struct {
	Maze    MazeConfig    `yaml:"maze"`
	Physics PhysicsConfig `yaml:"physics"`
	Input   InputConfig   `yaml:"input"`
}

// MazeConfig defines the board layout parameters.
type MazeConfig struct {
	Size  int `yaml:"size"`  // grid is size×size cells
	Holes int `yaml:"holes"` // hazards placed besides start and goal
}

// PhysicsConfig defines the simulation constants. Radii are fractions of
// the cell size.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	BallRadiusRatio float64 `yaml:"ball_radius_ratio"`
	HoleRadiusRatio float64 `yaml:"hole_radius_ratio"`
	GoalRadiusRatio float64 `yaml:"goal_radius_ratio"`
}

// InputConfig defines how key presses translate into board tilt.
type InputConfig struct {
	TiltStep  float64 `yaml:"tilt_step"`  // tilt added per held direction per tick
	TiltDecay float64 `yaml:"tilt_decay"` // per-tick decay toward level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyTiltmazePreset adjusts the board for a difficulty preset. Unknown
// presets leave the config untouched.
func ApplyTiltmazePreset(cfg *TiltmazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Maze.Size = 6
		cfg.Maze.Holes = 3
	case DifficultyNormal:
		cfg.Maze.Size = 8
		cfg.Maze.Holes = 6
	case DifficultyHard:
		cfg.Maze.Size = 10
		cfg.Maze.Holes = 10
	}
}
