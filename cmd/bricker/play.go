package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricker/internal/audio"
	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker"
	"github.com/vovakirdan/bricker/internal/platform/tui"
	"github.com/vovakirdan/bricker/internal/registry"
	"github.com/vovakirdan/bricker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [bricks-per-row rows]",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. The optional arguments override the
board size from the config.

Controls:
  Left/Right, A/D  - Move paddles
  Space            - Launch the ball
  P                - Pause
  R                - Restart (after a win or game over)
  Esc/B            - Leave (when paused or over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Modes:
  bricker        - Effects from the config's behaviors_allowed
  bricker_chaos  - Up to three effects per brick

Difficulty options:
  easy   - Max lives, wide paddle, slow ball
  normal - Config values
  hard   - Fewer lives, narrow paddle, fast ball
  fixed  - No speed progression

Examples:
  bricker play
  bricker play 12 6
  bricker play --mode bricker_chaos --difficulty hard
  bricker play --config ./my-bricker.yaml --sound=false`,
	Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("expected both bricks-per-row and rows, got %d argument", len(args))
		}
		return nil
	}),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "bricker", "Game mode: bricker or bricker_chaos")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
}

// parseBoard reads the optional [bricks-per-row rows] arguments.
func parseBoard(args []string) (rows, cols int, err error) {
	if len(args) == 0 {
		return 0, 0, nil
	}
	cols, err = positiveArg("bricks-per-row", args[0])
	if err != nil {
		return 0, 0, err
	}
	rows, err = positiveArg("rows", args[1])
	if err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

func positiveArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, value)
	}
	return n, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	rows, cols, err := parseBoard(args)
	if err != nil {
		return err
	}
	if !registry.Exists(flagMode) {
		return fmt.Errorf("unknown mode %q (run 'bricker list')", flagMode)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	bricker.SetConfigPath(flagConfig)
	bricker.SetDifficultyPreset(flagDifficulty)
	bricker.SetBoard(rows, cols)
	bricker.SetLogger(logger)

	if flagSound {
		bank := audio.NewBank(logger.WithPrefix("audio"))
		if err := bank.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer bank.Close()
			bricker.SetSounds(bank)
		}
	}

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(flagMode)
	if err != nil {
		return err
	}

	cfg := terminalConfig()
	logger.Info("starting", "mode", flagMode, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "seed", cfg.Seed)
	return tui.Run(game, store, cfg, logger)
}

// terminalConfig sizes the runtime to the current terminal, 80x24 if unknown.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStoreOrWarn opens the database, logging and returning nil on failure.
func openStoreOrWarn(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
