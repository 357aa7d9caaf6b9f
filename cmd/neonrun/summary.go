package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/neon-runner/internal/storage"
)

// topAttempts is how many runs the summary ranks.
const topAttempts = 5

// printSummary writes the per-level attempt summary, the best runs of gameID
// and its best score from the journal.
func printSummary(w io.Writer, store *storage.Store, gameID string) error {
	total, err := store.Count()
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Fprintln(w, "No finished attempts.")
		return nil
	}

	rows, err := store.Summary()
	if err != nil {
		return err
	}

	maxIDLen := len("Level")
	for _, r := range rows {
		if len(r.LevelID) > maxIDLen {
			maxIDLen = len(r.LevelID)
		}
	}

	fmt.Fprintln(w, "Session summary:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %8s  %6s  %5s  %7s\n", maxIDLen, "Level", "Attempts", "Clears", "Best", "Average")
	fmt.Fprintf(w, "  %-*s  %8s  %6s  %5s  %7s\n", maxIDLen, "-----", "--------", "------", "----", "-------")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-*s  %8d  %6d  %5d  %7.1f\n",
			maxIDLen, r.LevelID, r.Attempts, r.Completions, r.BestScore, r.AvgScore)
	}

	top, err := store.TopAttempts(gameID, topAttempts)
	if err != nil {
		return err
	}
	if len(top) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Top attempts:")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %-4s  %-*s  %5s  %-14s  %s\n", "Rank", maxIDLen, "Level", "Score", "Outcome", "Try")
		fmt.Fprintf(w, "  %-4s  %-*s  %5s  %-14s  %s\n", "----", maxIDLen, "-----", "-----", "-------", "---")
		for i, a := range top {
			fmt.Fprintf(w, "  %-4d  %-*s  %5d  %-14s  %d\n",
				i+1, maxIDLen, a.LevelID, a.Score, a.Outcome, a.Attempt)
		}
	}

	best, err := store.Best(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d over %d attempts\n", best, total)
	return nil
}
