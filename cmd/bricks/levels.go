package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/bricks"
	"github.com/vovakirdan/bricks/internal/bricks/levels"
)

var (
	levelsShow bool
	levelsDump bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of a level pack",
	Long: `Shows the levels of the selected level pack in play order.

Use --dump to print the built-in pack as a starting point for your own.

Examples:
  bricks levels
  bricks levels --show
  bricks levels --levels ./my-pack.yaml
  bricks levels --dump > my-pack.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&levelsShow, "show", false, "Draw each level as an ASCII map")
	levelsCmd.Flags().BoolVar(&levelsDump, "dump", false, "Print the built-in level pack YAML")
}

func runLevels(cmd *cobra.Command, args []string) {
	if levelsDump {
		_, _ = os.Stdout.Write(levels.DefaultYAML())
		return
	}

	catalog, pack, err := loadCatalog()
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Levels - %s\n", pack)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, lvl := range catalog.Levels() {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-*s  %-4s  %s\n", "#", maxIDLen, "ID", maxNameLen, "Name", "Rows", "Bricks")
	fmt.Printf("  %-3s  %-*s  %-*s  %-4s  %s\n", "-", maxIDLen, "--", maxNameLen, "----", "----", "------")

	for i, lvl := range catalog.Levels() {
		fmt.Printf("  %-3d  %-*s  %-*s  %-4d  %d\n", i+1, maxIDLen, lvl.ID, maxNameLen, lvl.Name, len(lvl.Rows), lvl.CountActive())
		if levelsShow {
			fmt.Println()
			fmt.Print(levelMap(lvl))
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'bricks play' to start from the first level.")
}

// levelMap draws a level using the pack map characters.
func levelMap(lvl bricks.Level) string {
	var b strings.Builder
	for _, row := range lvl.Rows {
		b.WriteString("       ")
		for _, k := range row {
			b.WriteByte(mapChar(k))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func mapChar(k bricks.Kind) byte {
	switch k {
	case bricks.KindNormal:
		return '#'
	case bricks.KindStrong:
		return 'H'
	case bricks.KindInvulnerable:
		return 'X'
	default:
		return '.'
	}
}
