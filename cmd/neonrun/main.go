// neonrun is a gravity-flipping side-scrolling runner for the terminal.
//
// Usage:
//
//	neonrun play             - Play the built-in levels
//	neonrun play --endless   - Play endless mode
//	neonrun levels           - List the level catalog
//	neonrun sim              - Run the simulation headless
//	neonrun serve            - Start SSH server for remote play
//	neonrun config           - Print the default runner config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--config <path>    - Runner config YAML
//	--levels <dir>     - Directory of YAML levels instead of the built-ins
//	--db <dsn>         - Attempt journal (default: in memory)
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLevels   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrun",
	Short: "Neon Runner - jump, flip and dodge in your terminal",
	Long: `Neon Runner is a side-scrolling obstacle runner. The world scrolls
toward you; jump over spikes, grab boost orbs and ride portals that
flip gravity between the floor and the ceiling.

Available commands:
  play     - Play levels or endless mode
  levels   - List the level catalog
  sim      - Run the simulation without a terminal UI
  serve    - Start SSH server for remote play
  config   - Print the runner configuration

Examples:
  neonrun play
  neonrun play --level flip
  neonrun play --endless
  neonrun sim --frames 3000 --jump-every 45
  neonrun serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of YAML level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryDSN, "Attempt journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// configureRunner passes the global flags to the runner game package.
func configureRunner(logger *log.Logger, level string) {
	runner.SetConfigPath(flagConfig)
	runner.SetLevelsDir(flagLevels)
	runner.SetStartLevel(level)
	runner.SetLogger(logger)
}

// runnerOptions mirrors configureRunner for code that builds engines itself.
func runnerOptions(level string) runner.Options {
	return runner.Options{
		ConfigPath: flagConfig,
		LevelsDir:  flagLevels,
		StartLevel: level,
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
