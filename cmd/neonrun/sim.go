package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/games/runner/sim"
	"github.com/vovakirdan/neon-runner/internal/loop"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	flagSimFrames    int
	flagSimJumpEvery int
	flagSimScript    string
	flagSimRealtime  bool
	flagSimShow      bool
	flagSimLevel     string
	flagSimEndless   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Runs the engine without a terminal UI and prints a summary of every
attempt. Input comes from a jump script: either a jump every N frames or
an explicit list of frame numbers. Identical flags give identical runs.

Examples:
  neonrun sim --frames 3000 --jump-every 45
  neonrun sim --level flip --script 10,80,150 --show
  neonrun sim --endless --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Number of frames to run (ignored with --realtime)")
	simCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Jump every N frames")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Comma-separated frame numbers to jump on")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames with the wall clock until interrupted")
	simCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final frame as text")
	simCmd.Flags().StringVar(&flagSimLevel, "level", "", "Level ID or number to start on")
	simCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Run endless mode instead of levels")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr, "neonrun-sim")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	input, err := simInput()
	if err != nil {
		fail("%v", err)
	}

	setup, err := runner.Prepare(runnerOptions(flagSimLevel))
	if err != nil {
		fail("%v", err)
	}

	mode := sim.ModeLevel
	if flagSimEndless {
		mode = sim.ModeEndless
	}
	engine, err := setup.NewEngine(mode)
	if err != nil {
		fail("%v", err)
	}
	engine.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	defer store.Close()
	engine.SetNotifier(storage.NewJournal(store, logger))

	var last sim.Snapshot
	driver := loop.NewDriver(engine, loop.SinkFunc(func(s sim.Snapshot) { last = s }), input)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sched loop.Scheduler = loop.NewCountScheduler(flagSimFrames, flagFPS)
	if flagSimRealtime {
		ticker := loop.NewTickerScheduler(flagFPS)
		defer ticker.Stop()
		sched = ticker
	}

	if err := driver.Run(ctx, sched); err != nil && err != context.Canceled {
		fail("%v", err)
	}

	logger.Info("simulation finished",
		"frames", driver.Frames(),
		"frame_time", driver.Delta(),
		"attempt", engine.Attempt(),
		"best", engine.Best(),
	)

	if flagSimShow {
		size := core.DefaultConfig()
		screen := core.NewScreen(size.ScreenW, size.ScreenH)
		runner.DrawSnapshot(screen, last)
		fmt.Println(screen.String())
		fmt.Println()
	}

	if err := printSummary(os.Stdout, store, storage.GameID(mode)); err != nil {
		fail("%v", err)
	}
}

// simInput builds the jump source from --script or --jump-every.
func simInput() (loop.InputSource, error) {
	switch {
	case flagSimScript != "" && flagSimJumpEvery > 0:
		return nil, fmt.Errorf("use either --script or --jump-every, not both")
	case flagSimScript != "":
		return loop.ParseScript(flagSimScript)
	case flagSimJumpEvery > 0:
		return loop.Every(flagSimJumpEvery), nil
	}
	return nil, nil
}
