package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-tetris/internal/registry"
	"github.com/vovakirdan/cozy-tetris/internal/sim"
)

var (
	flagSimGames   int
	flagSimTicks   int
	flagSimWorkers int
	flagSimQuiet   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run headless games with a random bot",
	Long: `Play many games without a terminal, driven by a seeded random bot,
and print score, line and level statistics per round.

Game i is seeded with --seed + i, so a run is reproducible for a given seed
regardless of the number of workers.

Examples:
  arcade sim
  arcade sim tetris_classic --games 500 --ticks 36000
  arcade sim --workers 8 --seed 42 --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Ticks per game (at --fps, 5 minutes by default)")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", runtime.NumCPU(), "Games played concurrently")
	simCmd.Flags().BoolVarP(&flagSimQuiet, "quiet", "q", false, "Hide the progress bar")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := sim.Options{
		GameID:   gameID,
		Games:    flagSimGames,
		Ticks:    flagSimTicks,
		Workers:  flagSimWorkers,
		Seed:     seed,
		TickRate: flagFPS,
		Logger:   logger,
	}
	if !flagSimQuiet {
		opts.Progress = os.Stderr
	}

	logger.Info("simulating", "game", gameID, "games", opts.Games, "workers", opts.Workers, "seed", seed)
	res, err := sim.Run(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Print(res.Report())
	return nil
}
