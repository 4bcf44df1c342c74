package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/registry"
)

const gameOverText = "GAME OVER!!!\nPress c to continue playing this game\nPress esc for title screen"

// titleText lists every registered minigame with its select key.
func titleText() string {
	var sb strings.Builder
	sb.WriteString("Block Games!!!")
	for _, g := range registry.List() {
		fmt.Fprintf(&sb, "\nPress %s for %s", strings.ToLower(g.SelectKey.String()), g.Title)
	}
	return sb.String()
}

// difficultyText lists the selectable block difficulties.
func difficultyText(cfg config.Config) string {
	var sb strings.Builder
	sb.WriteString("Press a key to choose your difficulty level:")
	for _, mode := range modeKeys {
		if d, ok := cfg.Difficulty(mode.mode); ok {
			fmt.Fprintf(&sb, "\n%d:%s", d.Mode, strings.ToUpper(d.Name))
		}
	}
	return sb.String()
}

func levelText(level int) string {
	return fmt.Sprintf("Level: %d", level)
}

func shooterText(score int) string {
	return fmt.Sprintf("Target practice! Hit the target for points! \nYour score: %d", score)
}

func shooterGameOverText(score int) string {
	return fmt.Sprintf("GAME OVER!!!\nFinal score: %d\nPress c to continue playing this game\nPress esc for title screen", score)
}
