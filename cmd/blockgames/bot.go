package main

import (
	"math"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/sim"
)

// autopilot plays one minigame from the title screen onward.
// It reads the state after each update and chooses the keys for the next.
type autopilot struct {
	game      string
	selectKey core.Key
	modeKey   core.Key
	cfg       config.Config
	lead      int // Ticks a bullet needs to reach the hit band
}

func newAutopilot(m *sim.Machine, game string, selectKey core.Key) *autopilot {
	cfg := m.Config()
	modeKey := core.Key1
	switch m.Mode() {
	case 2:
		modeKey = core.Key2
	case 3:
		modeKey = core.Key3
	}
	hitY := cfg.Window.Height - cfg.Sprite.Size - cfg.Shooter.HitBand
	return &autopilot{
		game:      game,
		selectKey: selectKey,
		modeKey:   modeKey,
		cfg:       cfg,
		lead:      int(math.Ceil(float64(hitY / cfg.Shooter.BulletSpeed))),
	}
}

// Next returns the keys to hold for the next tick.
func (a *autopilot) Next(st sim.GameState, f sim.Frame) core.Keys {
	switch st.Screen {
	case sim.ScreenTitle:
		return core.HeldKeys(a.selectKey)
	case sim.ScreenBlockSetup:
		return core.HeldKeys(a.modeKey)
	case sim.ScreenBlockGameOver, sim.ScreenSpaceGameOver:
		return core.HeldKeys(core.KeyC)
	case sim.ScreenBlockPlay:
		if a.game != sim.GameBlocks {
			return core.HeldKeys(core.KeyEscape)
		}
		return a.stack(st, f)
	case sim.ScreenSpacePlay:
		if a.game != sim.GameTargets {
			return core.HeldKeys(core.KeyEscape)
		}
		return a.shoot(st)
	}
	return core.HeldKeys()
}

// stack drops the row once its left edge lines up with the support region.
func (a *autopilot) stack(st sim.GameState, f sim.Frame) core.Keys {
	if st.Phase != sim.PhaseOscillating {
		return core.HeldKeys()
	}
	if st.NumStacked == 0 {
		return core.HeldKeys(core.KeySpace)
	}

	found := false
	var left float32
	for _, h := range st.Row {
		if int(h) < 0 || int(h) >= len(f.Sprites) || !f.Sprites[h].Active() {
			continue
		}
		if x := f.Sprites[h].Bounds.X; !found || x < left {
			left, found = x, true
		}
	}
	if !found {
		return core.HeldKeys()
	}
	if core.Abs(left-st.LeftBorder) <= float32(st.Speed) {
		return core.HeldKeys(core.KeySpace)
	}
	return core.HeldKeys()
}

// shoot moves the ship under the point where the target will be when a
// bullet fired now reaches it, and fires once there.
func (a *autopilot) shoot(st sim.GameState) core.Keys {
	aim := a.predictTarget(st)
	step := a.cfg.Shooter.ShipStep

	keys := core.HeldKeys()
	switch {
	case aim > st.CurX+step:
		keys[core.KeyRight] = true
	case aim < st.CurX-step:
		keys[core.KeyLeft] = true
	}
	if core.Abs(aim-st.CurX) < a.cfg.Sprite.Size/2 {
		keys[core.KeySpace] = true
	}
	return keys
}

// predictTarget replays the target's bounce for the bullet's flight time.
func (a *autopilot) predictTarget(st sim.GameState) float32 {
	x, dir := st.TargetX, st.Direction
	bound := a.cfg.Blocks.OscillationBound
	for range a.lead {
		delta := float32(st.Speed)
		if dir == sim.DirLeft {
			delta = -delta
		}
		if x >= bound-delta {
			dir = sim.DirLeft
		} else if x < delta {
			dir = sim.DirRight
		}
		x += delta
	}
	return x
}
