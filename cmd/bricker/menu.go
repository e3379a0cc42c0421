package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricker/internal/games/bricker"
	"github.com/vovakirdan/bricker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and browse scores interactively",
	Long: `Start the mode picker. Finished games return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Sound is off in the menu flow; use 'bricker play' for sound.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	bricker.SetLogger(logger)

	store := openStoreOrWarn(logger)
	if store != nil {
		defer store.Close()
	}
	return tui.RunSession(store, terminalConfig(), logger)
}
