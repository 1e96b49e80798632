package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricks/internal/platform/tui"
	"github.com/vovakirdan/bricks/internal/storage"
)

var (
	historyLimit int
	historyPlain bool
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished runs",
	Long: `Display finished runs, most recent first, with aggregated stats.

Examples:
  bricks history
  bricks history --plain --limit 5
  bricks history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.IntVar(&historyLimit, "limit", 10, "Number of runs to show in plain mode")
	f.BoolVar(&historyPlain, "plain", false, "Print a plain-text table instead of the interactive view")
	f.BoolVar(&historyClear, "clear", false, "Delete every recorded run")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if historyClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if !historyPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fail("running history view: %v", err)
		}
		return
	}

	runs, err := store.RecentRuns(historyLimit)
	if err != nil {
		store.Close()
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bricks play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-3s  %-7s  %-5s  %-8s  %-16s  %s\n", "#", "Outcome", "Level", "Ticks", "Date", "Pack")
	fmt.Printf("  %-3s  %-7s  %-5s  %-8s  %-16s  %s\n", "-", "-------", "-----", "-----", "----", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-3d  %-7s  %-5d  %-8d  %-16s  %s\n", i+1, run.Outcome, run.LevelReached, run.Ticks, dateStr, run.Pack)
	}

	// Show totals
	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Total: %d runs, %d won, %d lost. Best level: %d\n", stats.Runs, stats.Wins, stats.Losses, stats.BestLevel)
	}
}
