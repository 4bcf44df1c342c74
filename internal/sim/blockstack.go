package sim

import (
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/sprite"
)

// modeKeys maps the setup keys to difficulty modes.
var modeKeys = []struct {
	key  core.Key
	mode int
}{
	{core.Key1, 1},
	{core.Key2, 2},
	{core.Key3, 3},
}

// updateBlockSetup keeps the round fresh until a difficulty key is held.
func (m *Machine) updateBlockSetup(in core.Input) {
	m.resetRound()
	m.text = difficultyText(m.cfg)

	for _, mk := range modeKeys {
		if !in.Held(mk.key) {
			continue
		}
		if _, ok := m.cfg.Difficulty(mk.mode); !ok {
			continue
		}
		m.mode = mk.mode
		m.state.Screen = ScreenBlockPlay
		break
	}
	m.applyDifficulty()
}

// applyDifficulty loads row width and speed for the current mode.
func (m *Machine) applyDifficulty() {
	d, _ := m.cfg.Difficulty(m.mode)
	m.state.DropSpriteBlocks = d.DropSpriteBlocks
	m.state.Speed = d.Speed
}

func (m *Machine) updateBlockPlay(in core.Input) {
	switch m.state.Phase {
	case PhaseSpawning:
		m.spawnRow(in)
	case PhaseOscillating:
		m.oscillateRow(in)
	case PhaseFalling:
		m.fallRows()
	}
}

// spawnRow places a new top row, or ends the round or level when the stack
// allows no more rows.
func (m *Machine) spawnRow(in core.Input) {
	s := &m.state
	if s.DropSpriteBlocks <= 0 {
		m.blockGameOver()
		return
	}
	if s.NumStacked >= m.cfg.Blocks.StackThreshold {
		// Wait for Space to be released so the drop key does not carry over.
		if !in.Held(core.KeySpace) {
			m.levelUp()
		}
		return
	}

	size := m.cfg.Sprite.Size
	n := s.DropSpriteBlocks
	span := int(m.cfg.Window.Width - size*float32(n))
	x := float32(0)
	if span > 0 {
		x = float32(m.rng.Intn(span))
	}
	pal := m.cfg.Blocks.Palette
	atlas := pal.Cell(m.rng.Intn(pal.Columns), m.rng.Intn(pal.Rows))

	handles, ok := m.pool.AcquireN(n, sprite.RoleBlock)
	if !ok {
		m.logger.Warn("sprite pool exhausted", "need", n, "free", m.pool.Free())
		m.blockGameOver()
		return
	}
	y := m.cfg.Window.Height - size
	for i, h := range handles {
		m.pool.Set(h, sprite.Sprite{
			Bounds: core.NewRect(x+float32(i)*size, y, size, size),
			Atlas:  atlas,
		})
	}
	s.Row = handles
	s.SpritesUsed = m.pool.Used()
	s.Phase = PhaseOscillating
}

// oscillateRow slides the top row between the window edge and the
// oscillation bound, or drops it when Space is held.
func (m *Machine) oscillateRow(in core.Input) {
	s := &m.state
	if s.NumStacked == 0 {
		m.text = levelText(s.Level)
	}
	if in.Held(core.KeySpace) {
		m.dropRow()
		return
	}

	delta := float32(s.Speed)
	if s.Direction == DirLeft {
		delta = -delta
	}
	bound := m.cfg.Blocks.OscillationBound
	for _, h := range s.Row {
		if !m.pool.Active(h) {
			continue
		}
		x := m.pool.Bounds(h).X
		// delta is signed, so a row moving left turns only once x < delta
		// and overshoots the edge by up to three steps.
		if x >= bound-delta {
			s.Direction = DirLeft
		} else if x < delta {
			s.Direction = DirRight
		}
		m.pool.Move(h, delta, 0)
	}
}

// dropRow trims the parts of the top row that overhang the support region,
// tightens the region to the survivors and starts the fall.
func (m *Machine) dropRow() {
	s := &m.state
	half := m.cfg.Sprite.Size / 2

	survivors := 0
	var minX, maxX float32
	for _, h := range s.Row {
		if !m.pool.Active(h) {
			continue
		}
		x := m.pool.Bounds(h).X
		if x < s.LeftBorder-half || x > s.RightBorder+half {
			m.pool.Deactivate(h, x, m.cfg.Window.Height)
			s.DropSpriteBlocks--
			continue
		}
		if survivors == 0 || x < minX {
			minX = x
		}
		if survivors == 0 || x > maxX {
			maxX = x
		}
		survivors++
	}

	if survivors > 0 {
		// The region only narrows and never inverts, even when the
		// survivors sit in the half-sprite slack outside it.
		left := max(s.LeftBorder, min(minX, s.RightBorder))
		right := min(s.RightBorder, max(maxX, s.LeftBorder))
		s.LeftBorder, s.RightBorder = left, right
	}
	s.Phase = PhaseFalling
}

// fallRows moves every sprite above the stack top down by half the speed.
// The fall ends on the first tick where no sprite moved. A fully trimmed row
// still counts toward the level but not toward the run score.
func (m *Machine) fallRows() {
	s := &m.state
	floor := float32(s.NumStacked) * m.cfg.Sprite.Size
	top := m.cfg.Window.Height
	dy := float32(s.Speed) / 2

	moved := false
	m.pool.Each(func(h sprite.Handle, sp sprite.Sprite) {
		if !sp.Active() {
			return
		}
		if y := sp.Bounds.Y; y >= floor && y < top {
			m.pool.Move(h, 0, -dy)
			moved = true
		}
	})
	if moved {
		return
	}

	s.NumStacked++
	if s.DropSpriteBlocks > 0 {
		s.Rows++
	}
	s.Row = nil
	s.Phase = PhaseSpawning
}

// levelUp starts the next level with a faster row, keeping the run score.
func (m *Machine) levelUp() {
	level, speed, rows := m.state.Level+1, m.state.Speed+1, m.state.Rows
	m.resetRound()
	m.applyDifficulty()
	s := &m.state
	s.Level = level
	s.Speed = speed
	s.Rows = rows
	m.logger.Debug("level up", "level", level, "speed", speed)
}

func (m *Machine) blockGameOver() {
	m.finish(GameBlocks, m.state.Rows, m.state.Level)
	m.state.Screen = ScreenBlockGameOver
}

func (m *Machine) updateBlockGameOver(in core.Input) {
	m.pool.Reset()
	m.text = gameOverText
	if in.Held(core.KeyC) {
		m.resetRound()
		m.state.Screen = ScreenBlockSetup
	}
}
