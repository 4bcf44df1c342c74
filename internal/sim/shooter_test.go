package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/sprite"
)

// enterShooter walks from the title screen into shooter play.
func enterShooter(m *Machine) {
	step(m, core.KeyB)
	step(m)
}

// fixedTarget parks the target at x and the ship at shipX.
func fixedTarget(x, shipX float32) func(*config.Config) {
	return func(c *config.Config) {
		c.Shooter.TargetSpeed = 0
		c.Shooter.TargetStart = x
		c.Shooter.ShipStartX = shipX
	}
}

func movingBullets(m *Machine) int {
	n := 0
	for _, b := range m.state.Bullets {
		if b.Moving {
			n++
		}
	}
	return n
}

func TestShooterSetup(t *testing.T) {
	m := newMachine(t)
	step(m, core.KeyB)
	f := step(m)

	assert.Equal(t, ScreenSpacePlay, f.Screen)
	assert.Equal(t, "Target practice! Hit the target for points! \nYour score: 0", f.Text)
	assert.Equal(t, 5, m.pool.Used())
	assert.Equal(t, 2, countActive(f))
	assert.Equal(t, m.cfg.Shooter.TargetSpeed, m.state.Speed)

	target := m.pool.Get(m.state.Target)
	assert.Equal(t, core.NewRect(0, 704, 64, 64), target.Bounds)
	assert.Equal(t, m.cfg.Shooter.TargetAtlas, target.Atlas)
	assert.Equal(t, sprite.RoleTarget, m.pool.Role(m.state.Target))

	ship := m.pool.Get(m.state.Ship)
	assert.Equal(t, core.NewRect(480, 0, 64, 64), ship.Bounds)
	assert.Equal(t, sprite.RoleShip, m.pool.Role(m.state.Ship))

	require.Len(t, m.state.Bullets, 3)
	for _, b := range m.state.Bullets {
		assert.False(t, b.Moving)
		assert.False(t, m.pool.Active(b.Handle))
		assert.Equal(t, sprite.RoleBullet, m.pool.Role(b.Handle))
	}
}

func TestHitScoresAndRetiresBullet(t *testing.T) {
	m := newMachine(t, fixedTarget(500, 500))
	enterShooter(m)

	for i := 1; i <= 3; i++ {
		step(m, core.KeySpace)
		require.Equal(t, i, m.state.BulletCount)
	}
	assert.Equal(t, 3, movingBullets(m))

	var f Frame
	for i := 0; m.state.Score == 0; i++ {
		require.Less(t, i, 200, "bullet never reached the target")
		f = step(m)
	}
	assert.Equal(t, 1, m.state.Score)
	assert.Equal(t, 2, m.state.BulletCount)
	assert.Equal(t, 2, movingBullets(m))
	assert.False(t, m.state.Bullets[0].Moving, "first bullet fired lands first")
	assert.Equal(t, "Target practice! Hit the target for points! \nYour score: 1", f.Text)

	assert.InDelta(t, 500, m.state.TargetX, 10)
	assert.Equal(t, m.state.TargetX, m.pool.Bounds(m.state.Target).X)

	for i := 0; m.state.BulletCount > 0; i++ {
		require.Less(t, i, 200)
		step(m)
	}
	assert.Equal(t, 3, m.state.Score)
}

func TestMissedBulletRetires(t *testing.T) {
	m := newMachine(t, fixedTarget(0, 900))
	enterShooter(m)

	step(m, core.KeySpace)
	require.Equal(t, 1, m.state.BulletCount)
	h := m.state.Bullets[0].Handle
	assert.Equal(t, core.NewRect(900, 5, 16, 16), m.pool.Bounds(h))

	for i := 0; m.state.BulletCount > 0; i++ {
		require.Less(t, i, 200, "bullet never left the window")
		step(m)
	}
	assert.Equal(t, 0, m.state.Score)
	assert.False(t, m.state.Bullets[0].Moving)
	assert.False(t, m.pool.Active(h))
}

func TestBulletCap(t *testing.T) {
	m := newMachine(t, fixedTarget(0, 900))
	enterShooter(m)

	for range 400 {
		step(m, core.KeySpace)
		require.GreaterOrEqual(t, m.state.BulletCount, 0)
		require.LessOrEqual(t, m.state.BulletCount, 3)
		require.Equal(t, movingBullets(m), m.state.BulletCount)
	}
	assert.Equal(t, 3, m.state.BulletCount)
}

func TestShipStaysOnScreen(t *testing.T) {
	m := newMachine(t)
	enterShooter(m)

	for range 200 {
		step(m, core.KeyLeft)
	}
	assert.Equal(t, float32(0), m.state.CurX)
	assert.Equal(t, float32(0), m.pool.Bounds(m.state.Ship).X)

	for range 200 {
		step(m, core.KeyRight)
	}
	assert.Equal(t, float32(960), m.state.CurX)
	assert.Equal(t, float32(960), m.pool.Bounds(m.state.Ship).X)
}

func TestTargetOscillates(t *testing.T) {
	m := newMachine(t)
	enterShooter(m)
	speed := float32(m.cfg.Shooter.TargetSpeed)
	bound := m.cfg.Blocks.OscillationBound

	turns := 0
	dir := m.state.Direction
	minX := m.state.TargetX
	for range 1000 {
		step(m)
		if m.state.Direction != dir {
			turns++
			dir = m.state.Direction
		}
		minX = min(minX, m.state.TargetX)
		require.GreaterOrEqual(t, m.state.TargetX, -3*speed)
		require.Less(t, m.state.TargetX, bound+speed)
	}
	assert.Greater(t, turns, 1)
	// The left turn overshoots the edge by three steps.
	assert.Equal(t, -3*speed, minX)
}

func TestScoreLimitEndsRound(t *testing.T) {
	m := newMachine(t, fixedTarget(500, 500), func(c *config.Config) {
		c.Shooter.ScoreLimit = 1
	})
	enterShooter(m)
	step(m, core.KeySpace)

	var f Frame
	for i := 0; m.state.Screen == ScreenSpacePlay; i++ {
		require.Less(t, i, 200)
		f = step(m)
	}
	assert.Equal(t, ScreenSpaceGameOver, f.Screen)
	require.NotNil(t, f.Result)
	assert.Equal(t, GameTargets, f.Result.Game)
	assert.Equal(t, 1, f.Result.Score)

	f = step(m)
	assert.Equal(t, "GAME OVER!!!\nFinal score: 1\nPress c to continue playing this game\nPress esc for title screen", f.Text)
	assert.Equal(t, 0, countActive(f))

	assert.Equal(t, ScreenSpaceSetup, step(m, core.KeyC).Screen)
	assert.Equal(t, ScreenSpacePlay, step(m).Screen)
	assert.Equal(t, 0, m.state.Score)
}

func TestScoreLimitDisabled(t *testing.T) {
	m := newMachine(t, fixedTarget(500, 500), func(c *config.Config) {
		c.Shooter.ScoreLimit = 0
	})
	enterShooter(m)
	m.state.Score = 1000

	assert.Equal(t, ScreenSpacePlay, step(m).Screen)
}

func TestShooterInvariantsUnderRandomPlay(t *testing.T) {
	m := newMachine(t, func(c *config.Config) {
		c.Shooter.ScoreLimit = 5
	})
	bot := rand.New(rand.NewSource(11))
	width := m.cfg.Window.Width
	size := m.cfg.Sprite.Size
	limit := m.cfg.Shooter.BulletCap

	shots := 0
	for range 20000 {
		var keys []core.Key
		switch m.state.Screen {
		case ScreenTitle:
			keys = append(keys, core.KeyB)
		case ScreenSpaceGameOver:
			keys = append(keys, core.KeyC)
		case ScreenSpacePlay:
			switch bot.Intn(3) {
			case 0:
				keys = append(keys, core.KeyLeft)
			case 1:
				keys = append(keys, core.KeyRight)
			}
			if bot.Intn(4) == 0 {
				keys = append(keys, core.KeySpace)
				shots++
			}
			if bot.Intn(2000) == 0 {
				keys = append(keys, core.KeyEscape)
			}
		}
		f := m.Update(core.HeldKeys(keys...))
		requireSpriteSizes(t, m, f)

		if f.Screen != ScreenSpacePlay {
			continue
		}
		st := m.State()
		require.GreaterOrEqual(t, st.BulletCount, 0)
		require.LessOrEqual(t, st.BulletCount, limit)
		require.Equal(t, movingBullets(m), st.BulletCount)
		require.GreaterOrEqual(t, st.CurX, float32(0))
		require.LessOrEqual(t, st.CurX, width-size)
		require.Equal(t, 2+st.BulletCount, countActive(f))
	}
	assert.Positive(t, shots)
}
