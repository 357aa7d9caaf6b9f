package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/storage"
)

func TestPrintSummaryEmpty(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printSummary(&buf, store, "runner"); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "No finished attempts." {
		t.Errorf("unexpected output %q", got)
	}
}

func TestPrintSummary(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	attempts := []storage.Attempt{
		{GameID: "runner", Level: 0, LevelID: "intro", Outcome: storage.OutcomeGameOver, Score: 4, Attempt: 1},
		{GameID: "runner", Level: 0, LevelID: "intro", Outcome: storage.OutcomeLevelComplete, Score: 55, Attempt: 2},
		{GameID: "runner", Level: 1, LevelID: "orbs", Outcome: storage.OutcomeGameOver, Score: 12, Attempt: 3},
	}
	for _, a := range attempts {
		if _, err := store.RecordAttempt(a); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := printSummary(&buf, store, "runner"); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Session summary:", "Top attempts:", "Best: 55 over 3 attempts"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The best run ranks first
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Top attempts:") {
			if i+4 >= len(lines) {
				t.Fatalf("top attempts table is truncated:\n%s", out)
			}
			first := strings.Fields(lines[i+4])
			if len(first) < 3 || first[0] != "1" || first[1] != "intro" || first[2] != "55" {
				t.Errorf("unexpected first ranked row %q", lines[i+4])
			}
		}
	}
}
