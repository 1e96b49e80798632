// bricks is a terminal brick breaker.
//
// Usage:
//
//	bricks play              - Play in the terminal
//	bricks simulate          - Run a headless game driven by the autopilot
//	bricks levels            - List the levels of a level pack
//	bricks history           - Show finished runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set autopilot seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.bricks/history.db)
//	--config <path>      - Game config YAML
//	--levels <path>      - Level pack YAML (default: built-in pack)
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file used while the game owns the terminal
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/bricks"
	"github.com/vovakirdan/bricks/internal/bricks/levels"
	"github.com/vovakirdan/bricks/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - break bricks in your terminal",
	Long: `Bricks is a brick breaker for the terminal.

Clear every Normal and Strong brick to win a round. Strong bricks take two
hits, invulnerable ones never break. Miss the ball and the game starts over.

Available commands:
  play      - Play in the terminal
  simulate  - Headless game driven by the autopilot
  levels    - Show the levels of a level pack
  history   - Show finished runs

Environment:
  BRICKS_CONFIG, BRICKS_LEVELS, BRICKS_DB, BRICKS_FPS,
  BRICKS_DIFFICULTY, BRICKS_LOG_LEVEL, BRICKS_LOG_FILE

Examples:
  bricks play
  bricks play --difficulty hard --levels ./my-pack.yaml
  bricks simulate --ticks 20000 --seed 7
  bricks history --plain`,
	PersistentPreRunE: applyEnv,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Autopilot seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.bricks/history.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLevels, "levels", "", "Path to level pack YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.bricks/bricks.log", "Log file used while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(historyCmd)
}

// applyEnv fills flags the user did not set from BRICKS_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	setString := func(name, value string, dst *string) {
		if value != "" && !flags.Changed(name) {
			*dst = value
		}
	}
	setString("config", e.ConfigPath, &flagConfig)
	setString("levels", e.LevelsPath, &flagLevels)
	setString("db", e.DBPath, &flagDBPath)
	setString("difficulty", e.Difficulty, &flagDifficulty)
	setString("log-level", e.LogLevel, &flagLogLevel)
	setString("log-file", e.LogFile, &flagLogFile)
	if e.FPS > 0 && !flags.Changed("fps") {
		flagFPS = e.FPS
	}

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if flagDifficulty != "" && config.ParseDifficulty(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	return nil
}

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig() (config.Bricks, error) {
	cfg, err := config.LoadBricks(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset := config.ParseDifficulty(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("difficulty %s: %w", preset, err)
		}
	}
	return cfg, nil
}

// loadCatalog loads the selected level pack and returns it with its name.
func loadCatalog() (*bricks.Catalog, string, error) {
	path, err := config.ExpandHome(flagLevels)
	if err != nil {
		return nil, "", err
	}
	catalog, err := levels.Load(path)
	if err != nil {
		return nil, "", err
	}
	return catalog, packName(path), nil
}

// packName derives the pack name recorded with runs from its file name.
func packName(path string) string {
	if path == "" {
		return "classic"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
