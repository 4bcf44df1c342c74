package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-games/internal/core"
)

// defaultHoldTicks is how long a key stays held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const defaultHoldTicks = 6

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Escape key.Binding
	One    key.Binding
	Two    key.Binding
	Three  key.Binding
	A      key.Binding
	B      key.Binding
	C      key.Binding
	Left   key.Binding
	Right  key.Binding
	Space  key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Space, k.Escape, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.A, k.B, k.C},
		{k.One, k.Two, k.Three},
		{k.Left, k.Right, k.Space},
		{k.Escape, k.Copy, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "title")),
		One:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Two:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "intermediate")),
		Three:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "advanced")),
		A:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "falling blocks")),
		B:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "space blocks")),
		C:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Space:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "drop/fire")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy debug state")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MapKey translates a key message to a simulation key.
// Returns false when the message is not a game key.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	bindings := []struct {
		binding key.Binding
		key     core.Key
	}{
		{k.Escape, core.KeyEscape},
		{k.One, core.Key1},
		{k.Two, core.Key2},
		{k.Three, core.Key3},
		{k.A, core.KeyA},
		{k.B, core.KeyB},
		{k.C, core.KeyC},
		{k.Left, core.KeyLeft},
		{k.Right, core.KeyRight},
		{k.Space, core.KeySpace},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}
	return 0, false
}

// HeldKeys turns discrete terminal key events into a held-key snapshot.
// A key stays held for a fixed number of ticks after each event; the
// terminal's auto-repeat keeps it held for as long as it is pressed.
type HeldKeys struct {
	state *core.KeyState
	ttl   map[core.Key]int
	hold  int
}

// NewHeldKeys creates a tracker that holds keys for the given number of ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks <= 0 {
		holdTicks = defaultHoldTicks
	}
	return &HeldKeys{
		state: core.NewKeyState(),
		ttl:   make(map[core.Key]int),
		hold:  holdTicks,
	}
}

// Press marks k as held, restarting its hold window.
func (h *HeldKeys) Press(k core.Key) {
	h.state.Press(k)
	h.ttl[k] = h.hold
}

// Input returns the snapshot for the current tick.
func (h *HeldKeys) Input() core.Input {
	return h.state
}

// Advance ages every held key by one tick and releases expired ones.
// Call it once after each simulation update.
func (h *HeldKeys) Advance() {
	for k, left := range h.ttl {
		left--
		if left <= 0 {
			delete(h.ttl, k)
			h.state.Release(k)
			continue
		}
		h.ttl[k] = left
	}
}
