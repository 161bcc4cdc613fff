package config

import (
	_ "embed"
)

//go:embed defaults/tiltmaze.yaml
var defaultTiltmazeYAML []byte

// DefaultTiltmazeConfig returns the default tilt maze configuration.
func DefaultTiltmazeConfig() TiltmazeConfig {
	return TiltmazeConfig{
		Maze: MazeConfig{
			Size:  8,
			Holes: 6,
		},
		Physics: PhysicsConfig{
			Gravity:         900,
			Friction:        0.975,
			BallRadiusRatio: 0.3,
			HoleRadiusRatio: 0.28,
			GoalRadiusRatio: 0.42,
		},
		Input: InputConfig{
			TiltStep:  0.35,
			TiltDecay: 0.9,
		},
	}
}
