package core

// Key identifies a physical key the simulation cares about.
type Key int

const (
	KeyEscape Key = iota
	Key1
	Key2
	Key3
	KeyA
	KeyB
	KeyC
	KeyLeft
	KeyRight
	KeySpace

	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeyC:
		return "C"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// Input is the per-frame input snapshot consumed by the simulation.
// Answers must stay stable for the duration of one update call.
type Input interface {
	Held(k Key) bool
}

// KeyState tracks held keys across frames.
// The platform writes Press/Release between updates, so Held is stable
// within a frame.
type KeyState struct {
	current [keyCount]bool
}

// NewKeyState creates a key state with nothing held.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press marks a key as held.
func (s *KeyState) Press(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	s.current[k] = true
}

// Release marks a key as no longer held.
func (s *KeyState) Release(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	s.current[k] = false
}

// Held returns true if the key is down this frame.
func (s *KeyState) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.current[k]
}

// Keys is a fixed set of held keys, handy for scripted input and tests.
type Keys map[Key]bool

// Held implements Input.
func (k Keys) Held(key Key) bool {
	return k[key]
}

// HeldKeys builds an Input with the given keys held.
func HeldKeys(keys ...Key) Keys {
	m := make(Keys, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}
