package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/platform/tui"
	"github.com/vovakirdan/block-games/internal/registry"
	"github.com/vovakirdan/block-games/internal/sim"
	"github.com/vovakirdan/block-games/internal/storage"
)

var (
	flagFrames int
	flagGame   string
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation with an autopilot",
	Long: `Runs the simulation without a terminal for a fixed number of frames.
An autopilot picks the minigame from the title screen and plays it,
continuing after every game over. Round results are logged and saved
to the scoreboard, which is printed at the end.

Examples:
  blockgames headless
  blockgames headless --game targets --frames 5000
  blockgames headless --seed 42 --difficulty 3 --log-level debug`,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagFrames, "frames", 10000, "Number of frames to simulate")
	headlessCmd.Flags().StringVar(&flagGame, "game", sim.GameBlocks, "Minigame to play: "+sim.GameBlocks+" or "+sim.GameTargets)
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Get(flagGame)
	if err != nil {
		return err
	}

	machine, err := newMachine(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rounds := 0
	record := func(r *sim.RoundResult) {
		if r == nil {
			return
		}
		rounds++
		if store == nil {
			return
		}
		if _, err := store.SaveRound(storage.Round{ID: r.ID, GameID: r.Game, Score: r.Score, Level: r.Level}); err != nil {
			logger.Warn("save round", "game", r.Game, "err", err)
		}
	}

	bot := newAutopilot(machine, game.ID, game.SelectKey)
	var in core.Input = core.HeldKeys()
	for range flagFrames {
		frame := machine.Update(in)
		record(frame.Result)
		in = bot.Next(machine.State(), frame)
	}
	// Leave to the title so a round still in progress is reported.
	record(machine.Update(core.HeldKeys(core.KeyEscape)).Result)

	snap := machine.Snapshot()
	logger.Info("headless run done", "frames", flagFrames, "rounds", rounds, "screen", snap.Screen)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Simulated %d frames, %d rounds finished.\n", flagFrames, rounds)
	if store == nil {
		return nil
	}
	board, err := tui.RenderScoreboard(store)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, board)
	return nil
}
