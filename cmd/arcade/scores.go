package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-tetris/internal/registry"
	"github.com/vovakirdan/cozy-tetris/internal/stats"
	"github.com/vovakirdan/cozy-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, followed by
statistics over every recorded round.

Examples:
  arcade scores tetris
  arcade scores tetris_classic --limit 20
  arcade scores tetris --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Print(scoreTable(scores))

	values, err := store.ScoreValues(gameID)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	if len(values) == 0 {
		return errors.New("scores disappeared while reading")
	}

	fmt.Println()
	keys, vals := stats.Summarize(values).Rows()
	if gs, err := store.GetGameStats(gameID); err == nil {
		keys = append(keys, "Best lines", "Best level", "Last played")
		vals["Best lines"] = stats.Int(gs.MaxLines)
		vals["Best level"] = stats.Int(gs.MaxLevel)
		vals["Last played"] = gs.LastPlayed.Format("2006-01-02 15:04")
	}
	fmt.Print(stats.Table(game.Title()+" - all rounds", keys, vals))
	return nil
}

// scoreTable lays out entries in aligned columns.
func scoreTable(entries []storage.ScoreEntry) string {
	header := []string{"Rank", "Score", "Lines", "Level", "Player", "Date"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		player := e.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			stats.Int(e.Score),
			fmt.Sprintf("%d", e.Lines),
			fmt.Sprintf("%d", e.Level),
			player,
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var b strings.Builder
	line := func(cells []string) {
		b.WriteString(" ")
		for i, c := range cells {
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(c, widths[i]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	line(header)
	dashes := make([]string, len(header))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	line(dashes)
	for _, r := range rows {
		line(r)
	}
	return b.String()
}
