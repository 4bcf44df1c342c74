package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/registry"
	"github.com/vovakirdan/block-games/internal/sprite"
)

// Frame is the output of one update: what to draw and what happened.
type Frame struct {
	Screen  Screen
	Sprites []sprite.Sprite // Whole pool, inactive entries included
	Text    string          // Status text; empty means none
	Result  *RoundResult    // Set on the tick a round ends
}

// RoundResult describes a finished or abandoned round.
type RoundResult struct {
	ID    uuid.UUID
	Game  string
	Score int
	Level int
}

// Option configures a Machine.
type Option func(*Machine)

// WithSeed seeds the random source. Zero means seed from the clock.
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		m.seed = seed
	}
}

// WithLogger sets the logger used for screen transitions and round results.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMode preselects the block difficulty mode.
func WithMode(mode int) Option {
	return func(m *Machine) {
		m.mode = mode
	}
}

// Machine is the screen state machine. It owns the game state, the sprite
// pool and the random source, and advances them one tick per Update.
type Machine struct {
	cfg    config.Config
	state  GameState
	pool   *sprite.Pool
	rng    *rand.Rand
	seed   int64
	mode   int // Block difficulty; survives rounds
	logger *log.Logger
	tick   uint64

	// Per-tick outputs
	text   string
	result *RoundResult
}

// New creates a machine on the title screen.
// It fails if the config cannot support a round.
func New(cfg config.Config, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	m := &Machine{
		cfg:    cfg,
		mode:   config.DefaultMode,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	if _, ok := cfg.Difficulty(m.mode); !ok {
		return nil, fmt.Errorf("sim: %w: unknown difficulty mode %d", config.ErrInvalid, m.mode)
	}
	if m.seed == 0 {
		m.seed = time.Now().UnixNano()
	}
	m.rng = rand.New(rand.NewSource(m.seed)) //#nosec G404 -- gameplay randomness
	m.pool = sprite.New(cfg.Pool.Capacity, cfg.Sprite.InactiveAtlas)
	m.state = newGameState(cfg)
	return m, nil
}

// Update advances the simulation by one tick.
// Escape preempts every screen: it returns to the title screen and clears the
// pool, and no other key is read on that tick. Otherwise exactly one screen
// routine runs per call.
func (m *Machine) Update(in core.Input) Frame {
	m.tick++
	m.text = ""
	m.result = nil
	from := m.state.Screen

	if in.Held(core.KeyEscape) {
		m.abandon()
		m.state.Screen = ScreenTitle
		m.pool.Reset()
		m.text = titleText()
	} else {
		m.dispatch(in)
	}

	if to := m.state.Screen; to != from {
		m.logger.Debug("screen", "from", from, "to", to, "tick", m.tick)
	}
	if m.result != nil {
		m.logger.Info("round over", "game", m.result.Game, "score", m.result.Score, "level", m.result.Level)
	}

	return Frame{
		Screen:  m.state.Screen,
		Sprites: m.pool.Sprites(),
		Text:    m.text,
		Result:  m.result,
	}
}

// dispatch runs the routine of the current screen.
func (m *Machine) dispatch(in core.Input) {
	switch m.state.Screen {
	case ScreenTitle:
		m.updateTitle(in)
	case ScreenBlockSetup:
		m.updateBlockSetup(in)
	case ScreenBlockPlay:
		m.updateBlockPlay(in)
	case ScreenBlockGameOver:
		m.updateBlockGameOver(in)
	case ScreenSpaceSetup:
		m.updateSpaceSetup()
	case ScreenSpacePlay:
		m.updateSpacePlay(in)
	case ScreenSpaceGameOver:
		m.updateSpaceGameOver(in)
	}
}

// State returns a copy of the current game state.
func (m *Machine) State() GameState {
	return m.state.clone()
}

// Mode returns the selected block difficulty mode.
func (m *Machine) Mode() int {
	return m.mode
}

// Config returns the config the machine runs with.
func (m *Machine) Config() config.Config {
	return m.cfg
}

// Tick returns the number of updates so far.
func (m *Machine) Tick() uint64 {
	return m.tick
}

// resetRound reinitializes the game state and the pool, keeping the screen.
func (m *Machine) resetRound() {
	screen := m.state.Screen
	m.state = newGameState(m.cfg)
	m.state.Screen = screen
	m.pool.Reset()
}

// finish records the result of the round that just ended.
func (m *Machine) finish(game string, score, level int) {
	m.result = &RoundResult{
		ID:    uuid.New(),
		Game:  game,
		Score: score,
		Level: level,
	}
}

// abandon reports a scored round that is left with Escape.
func (m *Machine) abandon() {
	s := &m.state
	switch s.Screen {
	case ScreenBlockPlay:
		if s.Rows > 0 {
			m.finish(GameBlocks, s.Rows, s.Level)
		}
	case ScreenSpacePlay:
		if s.Score > 0 {
			m.finish(GameTargets, s.Score, 0)
		}
	}
}

func (m *Machine) updateTitle(in core.Input) {
	m.text = titleText()
	for _, g := range registry.List() {
		if !in.Held(g.SelectKey) {
			continue
		}
		screen, ok := entryScreens[g.ID]
		if !ok {
			continue
		}
		if screen == ScreenSpaceSetup {
			m.resetRound()
		}
		m.state.Screen = screen
		return
	}
}
