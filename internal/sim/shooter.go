package sim

import (
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/sprite"
)

// updateSpaceSetup acquires the target, ship and bullet slots for a fresh
// round and starts play.
func (m *Machine) updateSpaceSetup() {
	m.resetRound()
	s := &m.state
	sc := m.cfg.Shooter
	size := m.cfg.Sprite.Size
	s.Speed = sc.TargetSpeed

	s.Target, _ = m.pool.Acquire(sprite.RoleTarget)
	s.Ship, _ = m.pool.Acquire(sprite.RoleShip)
	handles, _ := m.pool.AcquireN(len(s.Bullets), sprite.RoleBullet)
	for i, h := range handles {
		s.Bullets[i].Handle = h
		m.pool.Set(h, sprite.Sprite{
			Bounds: core.Rect{X: s.Bullets[i].X, Y: s.Bullets[i].Y},
			Atlas:  sc.BulletAtlas,
		})
	}
	m.pool.Set(s.Target, sprite.Sprite{
		Bounds: core.NewRect(s.TargetX, s.TargetY, size, size),
		Atlas:  sc.TargetAtlas,
	})
	m.pool.Set(s.Ship, sprite.Sprite{
		Bounds: core.NewRect(s.CurX, s.CurY, size, size),
		Atlas:  sc.ShipAtlas,
	})

	m.text = shooterText(s.Score)
	s.Screen = ScreenSpacePlay
}

func (m *Machine) updateSpacePlay(in core.Input) {
	m.moveTarget()
	m.moveShip(in)
	if in.Held(core.KeySpace) {
		m.fire()
	}
	m.advanceBullets()

	s := &m.state
	m.text = shooterText(s.Score)
	if limit := m.cfg.Shooter.ScoreLimit; limit > 0 && s.Score >= limit {
		m.finish(GameTargets, s.Score, 0)
		s.Screen = ScreenSpaceGameOver
	}
}

// moveTarget slides the target along the top row, turning at the window
// edge and at the oscillation bound.
func (m *Machine) moveTarget() {
	s := &m.state
	delta := float32(s.Speed)
	if s.Direction == DirLeft {
		delta = -delta
	}
	// Same signed-delta turn as the block rows, overshoot included.
	if s.TargetX >= m.cfg.Blocks.OscillationBound-delta {
		s.Direction = DirLeft
	} else if s.TargetX < delta {
		s.Direction = DirRight
	}
	s.TargetX += delta
	m.placeTarget()
}

func (m *Machine) placeTarget() {
	s := &m.state
	size := m.cfg.Sprite.Size
	m.pool.SetBounds(s.Target, core.NewRect(s.TargetX, s.TargetY, size, size))
}

// moveShip steps the ship along the bottom edge and keeps it on screen.
func (m *Machine) moveShip(in core.Input) {
	s := &m.state
	step := m.cfg.Shooter.ShipStep
	switch {
	case in.Held(core.KeyLeft):
		s.CurX -= step
	case in.Held(core.KeyRight):
		s.CurX += step
	}
	size := m.cfg.Sprite.Size
	s.CurX = core.Clamp(s.CurX, 0, m.cfg.Window.Width-size)
	m.pool.SetBounds(s.Ship, core.NewRect(s.CurX, s.CurY, size, size))
}

// fire launches the first idle bullet from the ship, if under the cap.
func (m *Machine) fire() {
	s := &m.state
	if s.BulletCount >= len(s.Bullets) {
		return
	}
	bs := m.cfg.BulletSize()
	for i := range s.Bullets {
		b := &s.Bullets[i]
		if b.Moving {
			continue
		}
		b.X, b.Y = s.CurX, s.CurY
		b.Moving = true
		s.BulletCount++
		m.pool.SetBounds(b.Handle, core.NewRect(b.X, b.Y, bs, bs))
		return
	}
}

// advanceBullets moves in-flight bullets up, scores hits on the target and
// retires bullets that leave the window.
func (m *Machine) advanceBullets() {
	s := &m.state
	sc := m.cfg.Shooter
	size := m.cfg.Sprite.Size
	top := m.cfg.Window.Height
	hitY := top - size - sc.HitBand
	bs := m.cfg.BulletSize()

	for i := range s.Bullets {
		b := &s.Bullets[i]
		if !b.Moving {
			continue
		}
		if b.Y < top {
			b.Y += sc.BulletSpeed
			m.pool.SetBounds(b.Handle, core.NewRect(b.X, b.Y, bs, bs))
			if b.X >= s.TargetX-size && b.X <= s.TargetX+size && b.Y >= hitY {
				s.Score++
				m.retire(b)
				m.nudgeTarget()
				continue
			}
		}
		if b.Y >= top {
			m.retire(b)
		}
	}
}

func (m *Machine) retire(b *Bullet) {
	s := &m.state
	b.Y = m.cfg.Window.Height
	b.Moving = false
	if s.BulletCount > 0 {
		s.BulletCount--
	}
	m.pool.Deactivate(b.Handle, b.X, b.Y)
}

// nudgeTarget shifts the target by a small random offset after a hit.
func (m *Machine) nudgeTarget() {
	s := &m.state
	sc := m.cfg.Shooter
	off := m.rng.Float32() * sc.NudgeRange
	if m.rng.Intn(2) == 0 {
		off = -off
	}
	s.TargetX = core.Clamp(s.TargetX+off, sc.NudgeMargin, m.cfg.Window.Width-sc.NudgeMargin)
	m.placeTarget()
}

func (m *Machine) updateSpaceGameOver(in core.Input) {
	m.pool.Reset()
	m.text = shooterGameOverText(m.state.Score)
	if in.Held(core.KeyC) {
		m.resetRound()
		m.state.Screen = ScreenSpaceSetup
	}
}
