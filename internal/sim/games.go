package sim

import (
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/registry"
)

// Minigame IDs.
const (
	GameBlocks  = "blocks"
	GameTargets = "targets"
)

// entryScreens maps a minigame to the screen it opens on.
var entryScreens = map[string]Screen{
	GameBlocks:  ScreenBlockSetup,
	GameTargets: ScreenSpaceSetup,
}

func init() {
	registry.Register(registry.Minigame{ID: GameBlocks, Title: "Falling Blocks", SelectKey: core.KeyA})
	registry.Register(registry.Minigame{ID: GameTargets, Title: "Space Blocks", SelectKey: core.KeyB})
}
