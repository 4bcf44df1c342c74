package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-games/internal/platform/tui"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Opens the title screen in the terminal.

Controls:
  a / b          - Falling Blocks / Space Blocks (title screen)
  1 / 2 / 3      - Difficulty (Falling Blocks)
  Space          - Drop the row / fire
  Left / Right   - Move the ship
  c              - Continue after game over
  Esc            - Back to the title screen
  Ctrl+Y         - Copy the simulation state to the clipboard
  ?              - Toggle help
  q / Ctrl+C     - Quit

Terminals report key presses but not releases, so a key counts as held
for a few frames after each press or auto-repeat (--hold).

Examples:
  blockgames play
  blockgames play --difficulty 2 --fps 30
  blockgames play --log-file /tmp/blockgames.log --log-level debug`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", 0, "Frames a key stays held after each key event (0 = default)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The terminal belongs to the UI; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	machine, err := newMachine(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	final, err := tui.Run(machine, store, tui.Options{
		Width:     width,
		Height:    height,
		TickRate:  flagFPS,
		HoldTicks: flagHoldTicks,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store == nil || final.Rounds() == 0 {
		return nil
	}
	board, err := tui.RenderScoreboard(store)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), board)
	return nil
}
