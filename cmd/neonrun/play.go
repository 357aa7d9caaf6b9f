package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/registry"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	flagLevel   string
	flagEndless bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Runner",
	Long: `Start playing in the terminal.

Controls:
  Space/Up/Click - Jump (away from the rail you stand on)
  P/Esc          - Pause
  R              - Restart the level
  Ctrl+S         - Save a screenshot to ~/.neonrun/screenshots
  Q/Ctrl+C       - Quit

Touching a spike ends the attempt and restarts the level. Reaching the
finish line shows the banner and restarts the same level too, so you
can chase a better run.

Examples:
  neonrun play
  neonrun play --level 3
  neonrun play --level orbs
  neonrun play --endless
  neonrun play --levels ./my-levels --config ./runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID or number to start on")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode instead of levels")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "neonrun")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	configureRunner(logger, flagLevel)

	// Fail before entering the alt screen if settings are broken
	if _, err := runner.Prepare(runnerOptions(flagLevel)); err != nil {
		fail("%v", err)
	}

	gameID := runner.IDLevels
	if flagEndless {
		gameID = runner.IDEndless
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("attempt journal disabled", "error", err)
		store = nil
	}
	if store != nil {
		runner.SetNotifier(storage.NewJournal(store, logger))
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if _, err := tui.Run(game, cfg); err != nil {
		fail("running game: %v", err)
	}

	if store != nil {
		if err := printSummary(os.Stdout, store, gameID); err != nil {
			logger.Warn("cannot print summary", "error", err)
		}
	}
}
