package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/registry"
	"github.com/vovakirdan/block-games/internal/sim"
)

func runAutopilot(t *testing.T, game string, frames int, opts ...sim.Option) (*sim.Machine, []sim.RoundResult) {
	t.Helper()
	m, err := sim.New(config.DefaultConfig(), append([]sim.Option{sim.WithSeed(1)}, opts...)...)
	require.NoError(t, err)
	g, err := registry.Get(game)
	require.NoError(t, err)

	bot := newAutopilot(m, g.ID, g.SelectKey)
	var results []sim.RoundResult
	var in core.Input = core.HeldKeys()
	for range frames {
		f := m.Update(in)
		if f.Result != nil {
			results = append(results, *f.Result)
		}
		in = bot.Next(m.State(), f)
	}
	return m, results
}

func TestAutopilotStacksBlocks(t *testing.T) {
	m, _ := runAutopilot(t, sim.GameBlocks, 6000)

	st := m.State()
	assert.GreaterOrEqual(t, st.Rows, 3)
	assert.Equal(t, 1, m.Mode())
}

func TestAutopilotUsesPreselectedMode(t *testing.T) {
	m, _ := runAutopilot(t, sim.GameBlocks, 10, sim.WithMode(3))

	assert.Equal(t, 3, m.Mode())
	assert.Equal(t, 3, m.State().DropSpriteBlocks)
}

func TestAutopilotHitsTargets(t *testing.T) {
	m, results := runAutopilot(t, sim.GameTargets, 3000)

	total := m.State().Score
	for _, r := range results {
		assert.Equal(t, sim.GameTargets, r.Game)
		total += r.Score
	}
	assert.GreaterOrEqual(t, total, 10)
}

func TestPredictTargetBounces(t *testing.T) {
	cfg := config.DefaultConfig()
	a := &autopilot{cfg: cfg, lead: 10}

	st := sim.GameState{TargetX: 100, Speed: 4, Direction: sim.DirRight}
	assert.Equal(t, float32(140), a.predictTarget(st))

	// 952 -> 956 turns at the bound and comes back.
	st = sim.GameState{TargetX: 952, Speed: 4, Direction: sim.DirRight}
	assert.Less(t, a.predictTarget(st), float32(952))
}
