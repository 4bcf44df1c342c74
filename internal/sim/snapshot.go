package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/block-games/internal/sprite"
)

// Snapshot captures the simulation state for determinism checks and debugging.
// Uses primitive types only so two snapshots compare with ==.
type Snapshot struct {
	Tick   uint64
	Screen string
	Mode   int

	// Falling blocks
	Level            int
	Speed            int
	Phase            string
	Direction        string
	NumStacked       int
	DropSpriteBlocks int
	SpritesUsed      int
	LeftBorder       float32
	RightBorder      float32
	Rows             int

	// Target shooter
	Score       int
	CurX        float32
	TargetX     float32
	BulletCount int

	ActiveSprites int
	PoolHash      uint64
}

// Snapshot returns the current state as a Snapshot.
func (m *Machine) Snapshot() Snapshot {
	s := m.state
	return Snapshot{
		Tick:             m.tick,
		Screen:           s.Screen.String(),
		Mode:             m.mode,
		Level:            s.Level,
		Speed:            s.Speed,
		Phase:            s.Phase.String(),
		Direction:        s.Direction.String(),
		NumStacked:       s.NumStacked,
		DropSpriteBlocks: s.DropSpriteBlocks,
		SpritesUsed:      s.SpritesUsed,
		LeftBorder:       s.LeftBorder,
		RightBorder:      s.RightBorder,
		Rows:             s.Rows,
		Score:            s.Score,
		CurX:             s.CurX,
		TargetX:          s.TargetX,
		BulletCount:      s.BulletCount,
		ActiveSprites:    m.pool.ActiveCount(),
		PoolHash:         m.poolHash(),
	}
}

// poolHash folds every sprite's bounds into an FNV-1a style hash.
func (m *Machine) poolHash() uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, sp := range m.pool.Sprites() {
		for _, v := range [...]float32{sp.Bounds.X, sp.Bounds.Y, sp.Bounds.W, sp.Bounds.H} {
			h ^= uint64(int64(v * 1000)) //#nosec G115 -- hash input only
			h *= prime
		}
	}
	return h
}

// DebugState renders the snapshot and the active sprites as readable text.
func (m *Machine) DebugState() string {
	snap := m.Snapshot()
	var sb strings.Builder
	fmt.Fprintf(&sb, "tick=%d screen=%s mode=%d\n", snap.Tick, snap.Screen, snap.Mode)
	fmt.Fprintf(&sb, "level=%d speed=%d phase=%s dir=%s stacked=%d drop=%d rows=%d\n",
		snap.Level, snap.Speed, snap.Phase, snap.Direction, snap.NumStacked, snap.DropSpriteBlocks, snap.Rows)
	fmt.Fprintf(&sb, "borders=[%.1f, %.1f] sprites_used=%d\n", snap.LeftBorder, snap.RightBorder, snap.SpritesUsed)
	fmt.Fprintf(&sb, "score=%d ship_x=%.1f target_x=%.1f bullets=%d\n", snap.Score, snap.CurX, snap.TargetX, snap.BulletCount)
	for i, sp := range m.pool.Sprites() {
		if !sp.Active() {
			continue
		}
		fmt.Fprintf(&sb, "  #%d %s (%.1f, %.1f) %.0fx%.0f\n",
			i, m.pool.Role(sprite.Handle(i)), sp.Bounds.X, sp.Bounds.Y, sp.Bounds.W, sp.Bounds.H)
	}
	return sb.String()
}
