package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricks returns the built-in configuration.
// Brick cells are 160x60 with a 12px ball; speeds start at 17/17/25 and
// grow by 2/2/3 per level.
func DefaultBricks() Bricks {
	return Bricks{
		Arena: ArenaConfig{
			CellWidth:  16,
			CellHeight: 30,
			HUDRows:    2,
		},
		Layout: LayoutConfig{
			CellWidth:  160,
			CellHeight: 60,
			Top:        60,
		},
		Ball: BallConfig{
			Size:         12,
			LaunchOffset: 40,
		},
		Paddle: PaddleConfig{
			Width:        160,
			Height:       20,
			BottomOffset: 60,
		},
		Modifiers: Modifiers{
			BallX: 17,
			BallY: 17,
			PlatX: 25,
		},
		Progression: Modifiers{
			BallX: 2,
			BallY: 2,
			PlatX: 3,
		},
		Physics: PhysicsConfig{
			DeflectionDivisor: 10,
		},
		Input: InputConfig{
			ReleaseAfterMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `bricks config`.
func DefaultYAML() []byte {
	return defaultBricksYAML
}
