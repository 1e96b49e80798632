// Package config provides YAML-based game configuration loading,
// difficulty presets and environment overrides for the brick breaker.
package config

import (
	"errors"
	"fmt"
)

// Bricks contains all configuration for the brick breaker simulation.
// Distances are arena pixels, speeds are pixels per frame.
type Bricks struct {
	Arena       ArenaConfig   `yaml:"arena"`
	Layout      LayoutConfig  `yaml:"layout"`
	Ball        BallConfig    `yaml:"ball"`
	Paddle      PaddleConfig  `yaml:"paddle"`
	Modifiers   Modifiers     `yaml:"modifiers"`   // Base speeds at level 0
	Progression Modifiers     `yaml:"progression"` // Added on every round won
	Physics     PhysicsConfig `yaml:"physics"`
	Input       InputConfig   `yaml:"input"`
}

// ArenaConfig defines how terminal cells map to arena pixels.
type ArenaConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight int `yaml:"cell_height"` // Pixels per terminal row
	HUDRows    int `yaml:"hud_rows"`    // Rows reserved above the arena
}

// LayoutConfig defines the brick cell grid.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Top        int `yaml:"top"` // Y offset of the first brick row
}

// BallConfig defines ball geometry.
type BallConfig struct {
	Size         int `yaml:"size"`
	LaunchOffset int `yaml:"launch_offset"` // Distance above the paddle top at launch
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from the arena bottom to the paddle top
}

// Modifiers holds per-axis speeds for the ball and the paddle ("platform").
type Modifiers struct {
	BallX int `yaml:"ball_x"`
	BallY int `yaml:"ball_y"`
	PlatX int `yaml:"plat_x"`
}

// Add returns the component-wise sum of two modifier sets.
func (m Modifiers) Add(o Modifiers) Modifiers {
	return Modifiers{BallX: m.BallX + o.BallX, BallY: m.BallY + o.BallY, PlatX: m.PlatX + o.PlatX}
}

// PhysicsConfig defines collision tuning.
type PhysicsConfig struct {
	DeflectionDivisor int `yaml:"deflection_divisor"` // Paddle spin: vx = offset / divisor
}

// InputConfig defines host input handling.
type InputConfig struct {
	// ReleaseAfterMS synthesizes a key release when no repeat arrives in time.
	// Terminals report presses only.
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every size and speed is usable.
func (c Bricks) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"arena.cell_width", c.Arena.CellWidth},
		{"arena.cell_height", c.Arena.CellHeight},
		{"layout.cell_width", c.Layout.CellWidth},
		{"layout.cell_height", c.Layout.CellHeight},
		{"ball.size", c.Ball.Size},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"modifiers.ball_x", c.Modifiers.BallX},
		{"modifiers.ball_y", c.Modifiers.BallY},
		{"modifiers.plat_x", c.Modifiers.PlatX},
		{"physics.deflection_divisor", c.Physics.DeflectionDivisor},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.val)
		}
	}

	nonNegative := []struct {
		name string
		val  int
	}{
		{"arena.hud_rows", c.Arena.HUDRows},
		{"layout.top", c.Layout.Top},
		{"ball.launch_offset", c.Ball.LaunchOffset},
		{"paddle.bottom_offset", c.Paddle.BottomOffset},
		{"progression.ball_x", c.Progression.BallX},
		{"progression.ball_y", c.Progression.BallY},
		{"progression.plat_x", c.Progression.PlatX},
		{"input.release_after_ms", c.Input.ReleaseAfterMS},
	}
	for _, p := range nonNegative {
		if p.val < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, p.name, p.val)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts base speeds and paddle width for a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyPreset(cfg *Bricks, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Modifiers.BallX -= 4
		cfg.Modifiers.BallY -= 4
		cfg.Paddle.Width += 40
		cfg.Progression.PlatX = 2
	case DifficultyHard:
		cfg.Modifiers.BallX += 4
		cfg.Modifiers.BallY += 4
		cfg.Paddle.Width -= 40
		cfg.Progression = cfg.Progression.Add(Modifiers{BallX: 1, BallY: 1})
	}
}
