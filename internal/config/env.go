package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that may be supplied through the environment.
// Empty values mean "not set"; CLI flags win over the environment.
type Env struct {
	ConfigPath string `env:"BRICKS_CONFIG"`
	LevelsPath string `env:"BRICKS_LEVELS"`
	DBPath     string `env:"BRICKS_DB"`
	FPS        int    `env:"BRICKS_FPS"`
	LogLevel   string `env:"BRICKS_LOG_LEVEL"`
	LogFile    string `env:"BRICKS_LOG_FILE"`
	Difficulty string `env:"BRICKS_DIFFICULTY"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
