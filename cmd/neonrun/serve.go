package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagServeLevel   string
	flagServeEndless bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Neon Runner SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every SSH connection gets its own independent runner. Finished attempts
of all sessions go to one journal, summarised when the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neonrun/host_key

Examples:
  neonrun serve                           # Listen on :23234 with auto-generated key
  neonrun serve --ssh :2222               # Listen on port 2222
  neonrun serve --endless                 # Serve endless mode
  neonrun serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeLevel, "level", "", "Level ID or number sessions start on")
	serveCmd.Flags().BoolVar(&flagServeEndless, "endless", false, "Serve endless mode instead of levels")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr, "neonrun-ssh")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	configureRunner(logger, flagServeLevel)
	if _, err := runner.Prepare(runnerOptions(flagServeLevel)); err != nil {
		fail("%v", err)
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

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if flagServeEndless {
		cfg.GameID = runner.IDEndless
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Neon Runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}

	if store != nil {
		if err := printSummary(os.Stdout, store, cfg.GameID); err != nil {
			logger.Warn("cannot print summary", "error", err)
		}
	}
}
