package config

import (
	_ "embed"

	"github.com/vovakirdan/block-games/internal/core"
)

//go:embed defaults/blockgames.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in tunables.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
		},
		Sprite: SpriteConfig{
			Size:          64,
			InactiveAtlas: core.NewRect(0.25, 0, 0.25, 0.1),
		},
		Blocks: BlocksConfig{
			Difficulties: []Difficulty{
				{Mode: 1, Name: "easy", DropSpriteBlocks: 5, Speed: 4},
				{Mode: 2, Name: "intermediate", DropSpriteBlocks: 4, Speed: 6},
				{Mode: 3, Name: "advanced", DropSpriteBlocks: 3, Speed: 10},
			},
			StackThreshold:   12,
			OscillationBound: 960,
			InitialLevel:     1,
			LeftBorder:       0,
			RightBorder:      1024,
			Palette: PaletteConfig{
				OriginX: 0.25,
				OriginY: 0,
				CellW:   0.25,
				CellH:   0.1,
				Columns: 2,
				Rows:    10,
			},
		},
		Shooter: ShooterConfig{
			TargetSpeed: 4,
			BulletSpeed: 5,
			BulletCap:   3,
			BulletScale: 0.25,
			ShipStep:    6,
			ShipStartX:  480,
			ShipStartY:  0,
			TargetStart: 0,
			HitBand:     50,
			NudgeRange:  10,
			NudgeMargin: 10,
			ScoreLimit:  0,
			TargetAtlas: core.NewRect(0.75, 0, 0.25, 0.1),
			ShipAtlas:   core.NewRect(0.75, 0.9, 0.25, 0.1),
			BulletAtlas: core.NewRect(0.5, 0.9, 0.25, 0.1),
		},
		Pool: PoolConfig{
			Capacity: 60,
		},
		Text: TextConfig{
			AnchorX: 150,
			AnchorY: 200,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
