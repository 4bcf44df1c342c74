package core

import "testing"

func TestKeyStateHeldUntilReleased(t *testing.T) {
	s := NewKeyState()

	s.Press(KeySpace)
	if !s.Held(KeySpace) {
		t.Fatal("Space should be held after Press")
	}
	if s.Held(KeyLeft) {
		t.Error("Left should not be held")
	}

	s.Press(KeySpace)
	if !s.Held(KeySpace) {
		t.Error("Space should stay held after a repeated Press")
	}

	s.Release(KeySpace)
	if s.Held(KeySpace) {
		t.Error("Space should not be held after Release")
	}
}

func TestKeyStateOutOfRange(t *testing.T) {
	s := NewKeyState()
	s.Press(Key(-1))
	s.Press(keyCount)
	if s.Held(Key(-1)) || s.Held(keyCount) {
		t.Error("out-of-range keys should never report held")
	}
}

func TestHeldKeys(t *testing.T) {
	in := HeldKeys(KeyLeft, KeySpace)
	if !in.Held(KeyLeft) || !in.Held(KeySpace) {
		t.Error("HeldKeys should report listed keys as held")
	}
	if in.Held(KeyRight) {
		t.Error("HeldKeys should not report unlisted keys")
	}

	var _ Input = in
	var _ Input = NewKeyState()
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyEscape, "Escape"},
		{Key1, "1"},
		{KeyA, "A"},
		{KeySpace, "Space"},
		{Key(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.key.String(); got != tc.expected {
			t.Errorf("Key(%d).String() = %q, expected %q", tc.key, got, tc.expected)
		}
	}
}
