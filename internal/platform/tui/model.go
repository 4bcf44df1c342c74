package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/sim"
	"github.com/vovakirdan/block-games/internal/storage"
)

// footerHeight is the number of rows reserved below the play field.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the terminal host.
type Options struct {
	Width     int // Initial terminal size; updated by resize events
	Height    int
	TickRate  int
	HoldTicks int
	Logger    *log.Logger
}

// Model is the Bubble Tea model hosting the simulation.
type Model struct {
	machine  *sim.Machine
	store    *storage.Store
	renderer *Renderer
	screen   *core.Screen
	held     *HeldKeys
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int
	frame    sim.Frame
	rounds   int // Results saved this session
	status   string
	quitting bool
}

// NewModel creates a model for the given machine.
// store may be nil, in which case round results are only logged.
func NewModel(machine *sim.Machine, store *storage.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		machine:  machine,
		store:    store,
		renderer: NewRenderer(machine.Config()),
		screen:   core.NewScreen(opts.Width, max(opts.Height-footerHeight, 0)),
		held:     NewHeldKeys(opts.HoldTicks),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		tickRate: opts.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.WriteAll(m.machine.DebugState()); err != nil {
			m.logger.Warn("copy debug state", "err", err)
			m.status = "clipboard unavailable"
		} else {
			m.status = "debug state copied"
		}
		return m, nil
	}

	if k, ok := m.keys.MapKey(msg); ok {
		m.held.Press(k)
	}
	return m, nil
}

// handleTick runs one simulation update.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame = m.machine.Update(m.held.Input())
	m.held.Advance()

	if r := m.frame.Result; r != nil {
		m.saveResult(*r)
	}

	return m, tickCmd(m.tickRate)
}

// saveResult records a finished round and flags a new session best.
// Storage errors are logged and the game continues.
func (m *Model) saveResult(r sim.RoundResult) {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(r.Game)
	if err != nil {
		m.logger.Warn("read high score", "game", r.Game, "err", err)
	}
	_, err = m.store.SaveRound(storage.Round{
		ID:     r.ID,
		GameID: r.Game,
		Score:  r.Score,
		Level:  r.Level,
	})
	if err != nil {
		m.logger.Warn("save round", "game", r.Game, "err", err)
		return
	}
	m.rounds++
	if r.Score > best {
		m.status = fmt.Sprintf("new high score: %d", r.Score)
	}
}

// Rounds returns the number of round results saved this session.
func (m Model) Rounds() int {
	return m.rounds
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.frame)
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(machine *sim.Machine, store *storage.Store, opts Options) (Model, error) {
	model := NewModel(machine, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
