package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/autopilot"
	"github.com/vovakirdan/bricks/internal/bricks"
	"github.com/vovakirdan/bricks/internal/logging"
	"github.com/vovakirdan/bricks/internal/platform/tui"
	"github.com/vovakirdan/bricks/internal/storage"
)

var (
	simTicks  int
	simRuns   int
	simJitter int
	simCols   int
	simRows   int
	simRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run the game without a terminal UI. The autopilot launches the ball and
chases it with the paddle, aiming at a random offset on each descent.

The same seed, config and level pack always produce the same run, and the
final state hash printed at the end can be compared across machines.

Examples:
  bricks simulate --seed 42
  bricks simulate --ticks 100000 --runs 5 --record
  bricks simulate --cols 120 --rows 40 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&simTicks, "ticks", 36000, "Maximum number of ticks to simulate")
	f.IntVar(&simRuns, "runs", 0, "Stop after this many finished runs (0 = no limit)")
	f.IntVar(&simJitter, "jitter", 24, "Autopilot aim spread in pixels")
	f.IntVar(&simCols, "cols", 80, "Virtual terminal columns")
	f.IntVar(&simRows, "rows", 24, "Virtual terminal rows")
	f.BoolVar(&simRecord, "record", false, "Save finished runs to the history database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if simTicks <= 0 {
		fail("--ticks must be positive")
	}
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	catalog, pack, err := loadCatalog()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := logging.New(logging.Options{Level: flagLogLevel, Writer: os.Stderr})
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	_, arenaW, arenaH := tui.ArenaFor(cfg.Arena, simCols, simRows)
	session := bricks.NewSession(catalog, bricks.SettingsFromConfig(cfg, arenaW, arenaH))
	pilot := autopilot.New(seed, simJitter)

	var store *storage.Store
	if simRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fail("opening history database: %v", err)
		}
		defer store.Close()
	}

	hooks := autopilot.Hooks{
		OnTransition: func(tr bricks.Transition) {
			logger.Debug("transition", "from", tr.From, "to", tr.To, "round", tr.Level+1)
		},
		OnRunEnd: func(end bricks.RunEnd) {
			logger.Info("run finished", "outcome", end.Outcome, "round", end.LevelReached, "ticks", end.Ticks)
			if store == nil {
				return
			}
			run, saveErr := store.SaveRun(tui.RunRecord(end, pack))
			if saveErr != nil {
				logger.Error("cannot save run", "err", saveErr)
				return
			}
			logger.Debug("run saved", "run_id", run.RunID)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "seed", seed, "pack", pack, "arena_w", arenaW, "arena_h", arenaH, "max_ticks", simTicks)
	sum, err := autopilot.Run(ctx, session, pilot, simTicks, simRuns, hooks)
	if err != nil {
		logger.Warn("simulation interrupted", "err", err)
	}

	printSummary(sum, seed)
}

func printSummary(sum autopilot.Summary, seed int64) {
	final := sum.Final
	fmt.Printf("Simulation - seed %d\n", seed)
	fmt.Println()
	fmt.Printf("  %-10s  %d\n", "Ticks", sum.Ticks)
	fmt.Printf("  %-10s  %d\n", "Launches", sum.Launches)
	fmt.Printf("  %-10s  %d (%d won)\n", "Runs", len(sum.Runs), sum.Wins())
	fmt.Printf("  %-10s  %s\n", "State", final.State)
	fmt.Printf("  %-10s  %d/%d %s\n", "Level", final.Level+1, final.LevelCount, final.LevelName)
	fmt.Printf("  %-10s  %d\n", "Bricks", final.Active)
	fmt.Printf("  %-10s  %016x\n", "Hash", final.Hash())

	if len(sum.Runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Run", "Outcome", "Level", "Ticks")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "---", "-------", "-----", "-----")
	for i, end := range sum.Runs {
		fmt.Printf("  %-4d  %-8s  %-6d  %d\n", i+1, end.Outcome, end.LevelReached, end.Ticks)
	}
}
