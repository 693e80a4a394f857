// Package sim runs games headless with a random bot and summarizes the
// rounds they produce. Each game is seeded from the base seed and its index,
// so results do not depend on the number of workers.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/cozy-tetris/internal/core"
	"github.com/vovakirdan/cozy-tetris/internal/registry"
	"github.com/vovakirdan/cozy-tetris/internal/stats"
)

// Headless screen size; large enough for any board the config allows here.
const (
	screenW = 240
	screenH = 120
)

// Options control a simulation run.
type Options struct {
	GameID   string
	Games    int   // independent games to play
	Ticks    int   // ticks per game
	Workers  int   // concurrent games; values below 1 mean 1
	Seed     int64 // base seed; game i uses Seed+i
	TickRate int   // ticks per second of game time; 0 means 60

	Progress io.Writer   // progress bar output; nil hides it
	Logger   *log.Logger // nil discards
}

// Round is one finished round.
type Round struct {
	Game  int
	Score int
	Lines int
	Level int
}

// Result is the outcome of a run. Rounds are ordered by game index.
type Result struct {
	GameID  string
	Games   int
	Ticks   int
	Rounds  []Round
	Score   stats.Summary
	Lines   stats.Summary
	Level   stats.Summary
	Elapsed time.Duration
}

// Run plays opts.Games games of opts.GameID and summarizes every round.
// It stops early with ctx's error when ctx is cancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Games < 1 {
		return Result{}, errors.New("sim: games must be > 0")
	}
	if opts.Ticks < 1 {
		return Result{}, errors.New("sim: ticks must be > 0")
	}
	if !registry.Exists(opts.GameID) {
		return Result{}, fmt.Errorf("sim: unknown game %q", opts.GameID)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Workers > opts.Games {
		opts.Workers = opts.Games
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	logger := opts.Logger

	logger.Debug("simulation started", "game", opts.GameID, "games", opts.Games,
		"ticks", opts.Ticks, "workers", opts.Workers, "seed", opts.Seed)

	bar := pb.New(opts.Games)
	if opts.Progress == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(opts.Progress)
	}
	bar.Start()

	perGame := make([][]Round, opts.Games)
	jobs := make(chan int)
	errs := make(chan error, opts.Workers)

	wg := new(sync.WaitGroup)
	wg.Add(opts.Workers)
	for w := 0; w < opts.Workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				rounds, err := playGame(ctx, opts, i)
				if err != nil {
					errs <- err
					return
				}
				perGame[i] = rounds
				bar.Increment()
			}
		}()
	}

	var runErr error
feed:
	for i := 0; i < opts.Games; i++ {
		select {
		case jobs <- i:
		case runErr = <-errs:
			break feed
		case <-ctx.Done():
			runErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	bar.Finish()

	if runErr == nil {
		select {
		case runErr = <-errs:
		default:
		}
	}
	if runErr != nil {
		return Result{}, runErr
	}

	res := Result{
		GameID:  opts.GameID,
		Games:   opts.Games,
		Ticks:   opts.Ticks,
		Elapsed: time.Since(bar.StartTime()),
	}
	for _, rounds := range perGame {
		res.Rounds = append(res.Rounds, rounds...)
	}
	res.summarize()

	logger.Debug("simulation finished", "rounds", len(res.Rounds), "elapsed", res.Elapsed)
	return res, nil
}

// playGame plays game i to the tick limit and returns its rounds. The round
// still in progress at the end counts when it has points.
func playGame(ctx context.Context, opts Options, i int) ([]Round, error) {
	game, err := registry.Create(opts.GameID)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	seed := opts.Seed + int64(i)
	game.Reset(core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: opts.TickRate,
		Seed:     seed,
	})
	if tg, ok := game.(registry.Tuned); ok && i == 0 {
		if err := tg.ConfigError(); err != nil {
			opts.Logger.Warn("game config rejected, using defaults", "game", opts.GameID, "error", err)
		}
	}
	bot := NewBot(seed)

	var rounds []Round
	add := func(ev core.Event) {
		rounds = append(rounds, Round{Game: i, Score: ev.Score, Lines: ev.Lines, Level: ev.Level})
	}

	for t := 0; t < opts.Ticks; t++ {
		if t%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		res := game.Step(bot.Next())
		for _, ev := range res.RoundOvers() {
			add(ev)
		}
	}

	if re, ok := game.(registry.RoundEnder); ok {
		if ev, ok := re.EndRound(); ok {
			add(ev)
		}
	} else if st := game.State(); st.Score > 0 {
		add(core.Event{Kind: core.EventRoundOver, Score: st.Score})
	}
	return rounds, nil
}

func (r *Result) summarize() {
	score := make([]float64, len(r.Rounds))
	lines := make([]float64, len(r.Rounds))
	level := make([]float64, len(r.Rounds))
	for i, rd := range r.Rounds {
		score[i] = float64(rd.Score)
		lines[i] = float64(rd.Lines)
		level[i] = float64(rd.Level)
	}
	r.Score = stats.Summarize(score)
	r.Lines = stats.Summarize(lines)
	r.Level = stats.Summarize(level)
}
