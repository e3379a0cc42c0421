// bricker is a terminal brick breaker whose bricks hide randomized effects.
//
// Usage:
//
//	bricker play [bricks-per-row rows]  - Play in this terminal
//	bricker menu                        - Pick a mode interactively
//	bricker serve                       - Start SSH server for remote play
//	bricker scores <mode>               - Show high scores for a mode
//	bricker strategies                  - Sample the brick effect generator
//	bricker list                        - List game modes
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.bricker/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Where interactive commands write logs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/bricker/internal/games/bricker"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricker",
	Short: "Bricker - break bricks with hidden effects in your terminal",
	Long: `Bricker is a terminal brick breaker. Every brick carries an effect:
extra balls, an extra paddle, a falling life, an explosion that chains
through its neighbours, or two effects at once.

Available commands:
  play        - Play directly in this terminal
  menu        - Interactive mode picker and scoreboard
  serve       - Start SSH server for remote play
  scores      - View high scores
  strategies  - Sample the brick effect generator
  list        - Show game modes

Examples:
  bricker play
  bricker play 10 6 --difficulty hard
  bricker serve --ssh :2222
  bricker scores bricker`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: no logs)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// interactiveLogger logs to --log-file, or nowhere, so log lines never
// tear through the TUI. The returned func closes the file.
func interactiveLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "bricker")
		return logger, func() {}, err
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "bricker")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
