// Package sim implements the block games simulation: a screen state machine
// that owns two minigames (a falling-block stacker and a target shooter) and
// drives them one fixed tick at a time.
//
// The simulation is pure: it reads a held-key snapshot, mutates GameState and
// the sprite pool, and returns a Frame for the host to draw. It has no
// terminal, clock or file dependencies.
package sim

import (
	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/sprite"
)

// Screen identifies the active top-level screen.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenBlockPlay
	ScreenBlockSetup
	ScreenBlockGameOver
	ScreenSpacePlay
	ScreenSpaceSetup
	ScreenSpaceGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenBlockPlay:
		return "block_play"
	case ScreenBlockSetup:
		return "block_setup"
	case ScreenBlockGameOver:
		return "block_game_over"
	case ScreenSpacePlay:
		return "space_play"
	case ScreenSpaceSetup:
		return "space_setup"
	case ScreenSpaceGameOver:
		return "space_game_over"
	default:
		return "unknown"
	}
}

// Playing reports whether the screen runs a round that can score.
func (s Screen) Playing() bool {
	return s == ScreenBlockPlay || s == ScreenSpacePlay
}

// BlockPhase is the sub-phase of the falling-block round.
type BlockPhase int

const (
	PhaseSpawning    BlockPhase = iota // Next tick spawns a row (or ends the level)
	PhaseOscillating                   // Top row slides, waiting for Space
	PhaseFalling                       // Dropped row descends onto the stack
)

func (p BlockPhase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseOscillating:
		return "oscillating"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Direction is the horizontal travel direction of the row or target.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Bullet is one shooter projectile slot.
type Bullet struct {
	X, Y   float32
	Moving bool
	Handle sprite.Handle
}

// GameState is the full mutable state of one round.
// Fields for both minigames live side by side; only the active screen's
// fields are meaningful.
type GameState struct {
	Screen Screen

	// Falling blocks
	Level            int
	Speed            int // Row oscillation speed; target speed in the shooter
	Phase            BlockPhase
	Direction        Direction
	NumStacked       int // Rows landed this level
	DropSpriteBlocks int // Width of the next row in sprites
	SpritesUsed      int
	LeftBorder       float32
	RightBorder      float32
	Row              []sprite.Handle // Sprites of the current top row
	Rows             int             // Rows landed over the whole run

	// Target shooter
	Score       int
	CurX, CurY  float32 // Ship position
	TargetX     float32
	TargetY     float32
	Bullets     []Bullet
	BulletCount int
	Target      sprite.Handle
	Ship        sprite.Handle
}

// newGameState returns the initial state for the given config.
func newGameState(cfg config.Config) GameState {
	bullets := make([]Bullet, cfg.Shooter.BulletCap)
	for i := range bullets {
		bullets[i] = Bullet{
			X:      cfg.Shooter.ShipStartX,
			Y:      cfg.Window.Height,
			Handle: sprite.Invalid,
		}
	}
	return GameState{
		Screen:      ScreenTitle,
		Level:       cfg.Blocks.InitialLevel,
		Phase:       PhaseSpawning,
		Direction:   DirRight,
		LeftBorder:  cfg.Blocks.LeftBorder,
		RightBorder: cfg.Blocks.RightBorder,
		CurX:        cfg.Shooter.ShipStartX,
		CurY:        cfg.Shooter.ShipStartY,
		TargetX:     cfg.Shooter.TargetStart,
		TargetY:     cfg.Window.Height - cfg.Sprite.Size,
		Bullets:     bullets,
		Target:      sprite.Invalid,
		Ship:        sprite.Invalid,
	}
}

// clone returns a deep copy safe to hand to callers.
func (s GameState) clone() GameState {
	out := s
	out.Row = append([]sprite.Handle(nil), s.Row...)
	out.Bullets = append([]Bullet(nil), s.Bullets...)
	return out
}
