package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-tetris/internal/registry"
	"github.com/vovakirdan/cozy-tetris/internal/stats"
	"github.com/vovakirdan/cozy-tetris/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games with the rounds played and best score of each.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	played := map[string]*storage.GameStats{}
	if store := openStore(); store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			played = all
		} else {
			logger.Warn("could not read game stats", "error", err)
		}
		closeStore(store)
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, runewidth.StringWidth(g.ID))
		maxTitleLen = max(maxTitleLen, runewidth.StringWidth(g.Title))
	}

	// Print header
	fmt.Printf("  %s  %s  %s  %s  %s\n", pad("ID", maxIDLen), pad("Title", maxTitleLen),
		pad("Rounds", 6), pad("Best", 9), "Description")
	fmt.Printf("  %s  %s  %s  %s  %s\n", pad("--", maxIDLen), pad("-----", maxTitleLen),
		pad("------", 6), pad("----", 9), "-----------")

	// Print games
	for _, g := range games {
		rounds, best := "-", "-"
		if st, ok := played[g.ID]; ok {
			rounds = stats.Int(st.GamesCount)
			best = stats.Int(st.HighScore)
		}
		fmt.Printf("  %s  %s  %s  %s  %s\n", pad(g.ID, maxIDLen), pad(g.Title, maxTitleLen),
			pad(rounds, 6), pad(best, 9), g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// pad fills s with spaces to width terminal cells.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
