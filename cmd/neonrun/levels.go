package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows the levels that 'neonrun play' would load: the built-in set,
or the YAML files under --levels sorted by ID.

Examples:
  neonrun levels
  neonrun levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	setup, err := runner.Prepare(runnerOptions(""))
	if err != nil {
		fail("%v", err)
	}

	catalog := setup.Catalog
	for _, skipped := range catalog.Skipped() {
		fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", skipped)
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range catalog.Levels() {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("Levels (%s):\n\n", catalog.Source())
	fmt.Printf("  #   %-*s  %-16s  %6s  %6s  %6s  %s\n", maxIDLen, "ID", "Name", "Blocks", "Orbs", "Flips", "Length")
	for i, d := range catalog.Levels() {
		length := "-"
		if d.Finish != nil {
			// Frames until the finish reaches the player at the configured speed
			frames := (d.Finish.X - setup.Params.PlayerX) / setup.Params.ScrollSpeed
			length = fmt.Sprintf("%.1fs", frames/float64(flagFPS))
		}
		fmt.Printf("  %-2d  %-*s  %-16s  %6d  %6d  %6d  %s\n",
			i+1, maxIDLen, d.ID, d.Name, len(d.Obstacles), len(d.Pickups), len(d.Portals), length)
	}

	fmt.Println()
	fmt.Println("Run 'neonrun play --level <id>' to start on a level.")
}
