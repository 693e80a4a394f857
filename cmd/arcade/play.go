package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-tetris/internal/platform/tui"
	"github.com/vovakirdan/cozy-tetris/internal/registry"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move (hold to auto-repeat)
  Up, W, X         - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart the round
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower gravity at every level
  normal - The configured gravity curve
  hard   - Faster gravity at every level
  fixed  - No speed-up as the level rises

Examples:
  arcade play tetris
  arcade play tetris --difficulty easy
  arcade play tetris_classic --difficulty hard
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	logger.Debug("starting game", "game", gameID)
	return tui.Run(game, store, terminalConfig(), tui.Options{
		Player: flagPlayer,
		Logger: logger,
	})
}
