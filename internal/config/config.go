// Package config provides YAML-based tunables and difficulty presets for
// the block games.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/block-games/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains every tunable constant of the simulation.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Sprite  SpriteConfig  `yaml:"sprite"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Shooter ShooterConfig `yaml:"shooter"`
	Pool    PoolConfig    `yaml:"pool"`
	Text    TextConfig    `yaml:"text"`
}

// WindowConfig defines the world size in pixels.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// SpriteConfig defines the unit sprite and the atlas grid.
type SpriteConfig struct {
	Size          float32   `yaml:"size"`
	InactiveAtlas core.Rect `yaml:"inactive_atlas"`
}

// BlocksConfig defines the falling-block minigame.
type BlocksConfig struct {
	Difficulties     []Difficulty  `yaml:"difficulties"`
	StackThreshold   int           `yaml:"stack_threshold"`   // Rows needed to clear a level
	OscillationBound float32       `yaml:"oscillation_bound"` // Rightmost x a row may reach
	InitialLevel     int           `yaml:"initial_level"`
	LeftBorder       float32       `yaml:"left_border"` // Support region at round start
	RightBorder      float32       `yaml:"right_border"`
	Palette          PaletteConfig `yaml:"palette"`
}

// Difficulty is one selectable block-game mode.
type Difficulty struct {
	Mode             int    `yaml:"mode"`
	Name             string `yaml:"name"`
	DropSpriteBlocks int    `yaml:"drop_sprite_blocks"`
	Speed            int    `yaml:"speed"`
}

// PaletteConfig describes the grid of row colors in the atlas.
type PaletteConfig struct {
	OriginX float32 `yaml:"origin_x"`
	OriginY float32 `yaml:"origin_y"`
	CellW   float32 `yaml:"cell_w"`
	CellH   float32 `yaml:"cell_h"`
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
}

// Cell returns the atlas rect of palette cell (col, row).
func (p PaletteConfig) Cell(col, row int) core.Rect {
	return core.Rect{
		X: p.OriginX + float32(col)*p.CellW,
		Y: p.OriginY + float32(row)*p.CellH,
		W: p.CellW,
		H: p.CellH,
	}
}

// ShooterConfig defines the target-shooting minigame.
type ShooterConfig struct {
	TargetSpeed int       `yaml:"target_speed"`
	BulletSpeed float32   `yaml:"bullet_speed"`
	BulletCap   int       `yaml:"bullet_cap"`
	BulletScale float32   `yaml:"bullet_scale"` // Bullet size as a fraction of the sprite size
	ShipStep    float32   `yaml:"ship_step"`
	ShipStartX  float32   `yaml:"ship_start_x"`
	ShipStartY  float32   `yaml:"ship_start_y"`
	TargetStart float32   `yaml:"target_start_x"`
	HitBand     float32   `yaml:"hit_band"`     // Distance below the target row where hits count
	NudgeRange  float32   `yaml:"nudge_range"`  // Target nudge offset is drawn from [0, NudgeRange)
	NudgeMargin float32   `yaml:"nudge_margin"` // Nudged target stays in [margin, width-margin]
	ScoreLimit  int       `yaml:"score_limit"`  // 0 disables the shooter game-over
	TargetAtlas core.Rect `yaml:"target_atlas"`
	ShipAtlas   core.Rect `yaml:"ship_atlas"`
	BulletAtlas core.Rect `yaml:"bullet_atlas"`
}

// PoolConfig defines the sprite pool.
type PoolConfig struct {
	Capacity int `yaml:"capacity"`
}

// TextConfig defines where the status text is anchored, in pixels from the
// top-left corner of the window.
type TextConfig struct {
	AnchorX float32 `yaml:"anchor_x"`
	AnchorY float32 `yaml:"anchor_y"`
}

// Difficulty returns the block difficulty for the given mode.
func (c Config) Difficulty(mode int) (Difficulty, bool) {
	for _, d := range c.Blocks.Difficulties {
		if d.Mode == mode {
			return d, true
		}
	}
	return Difficulty{}, false
}

// MaxDropBlocks returns the widest row any difficulty can spawn.
func (c Config) MaxDropBlocks() int {
	widest := 0
	for _, d := range c.Blocks.Difficulties {
		widest = max(widest, d.DropSpriteBlocks)
	}
	return widest
}

// BulletSize returns the edge length of a bullet sprite.
func (c Config) BulletSize() float32 {
	return c.Sprite.Size * c.Shooter.BulletScale
}

// Validate checks that the simulation can run with this config.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Sprite.Size <= 0 {
		return fmt.Errorf("%w: sprite size %v", ErrInvalid, c.Sprite.Size)
	}
	if len(c.Blocks.Difficulties) == 0 {
		return fmt.Errorf("%w: no block difficulties", ErrInvalid)
	}
	for _, d := range c.Blocks.Difficulties {
		if d.DropSpriteBlocks <= 0 || d.Speed <= 0 {
			return fmt.Errorf("%w: difficulty %d has %d blocks at speed %d", ErrInvalid, d.Mode, d.DropSpriteBlocks, d.Speed)
		}
		if float32(d.DropSpriteBlocks)*c.Sprite.Size >= c.Window.Width {
			return fmt.Errorf("%w: difficulty %d row does not fit the window", ErrInvalid, d.Mode)
		}
	}
	if c.Blocks.StackThreshold <= 0 {
		return fmt.Errorf("%w: stack threshold %d", ErrInvalid, c.Blocks.StackThreshold)
	}
	if c.Blocks.Palette.Columns <= 0 || c.Blocks.Palette.Rows <= 0 {
		return fmt.Errorf("%w: palette grid %dx%d", ErrInvalid, c.Blocks.Palette.Columns, c.Blocks.Palette.Rows)
	}
	if c.Shooter.BulletCap <= 0 {
		return fmt.Errorf("%w: bullet cap %d", ErrInvalid, c.Shooter.BulletCap)
	}
	if c.Shooter.BulletSpeed <= 0 {
		return fmt.Errorf("%w: bullet speed %v", ErrInvalid, c.Shooter.BulletSpeed)
	}
	if c.Shooter.ScoreLimit < 0 {
		return fmt.Errorf("%w: score limit %d", ErrInvalid, c.Shooter.ScoreLimit)
	}
	if c.Shooter.NudgeMargin*2 > c.Window.Width {
		return fmt.Errorf("%w: nudge margin %v", ErrInvalid, c.Shooter.NudgeMargin)
	}
	if need := c.MaxDropBlocks() * c.Blocks.StackThreshold; c.Pool.Capacity < need {
		return fmt.Errorf("%w: pool capacity %d below %d block slots", ErrInvalid, c.Pool.Capacity, need)
	}
	if need := 2 + c.Shooter.BulletCap; c.Pool.Capacity < need {
		return fmt.Errorf("%w: pool capacity %d below %d shooter slots", ErrInvalid, c.Pool.Capacity, need)
	}
	return nil
}
