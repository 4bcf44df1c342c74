package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.Window != def.Window {
		t.Errorf("window = %+v, expected %+v", cfg.Window, def.Window)
	}
	if cfg.Blocks.StackThreshold != 12 {
		t.Errorf("stack threshold = %d, expected 12", cfg.Blocks.StackThreshold)
	}
	if cfg.Shooter.ScoreLimit != 0 {
		t.Errorf("score limit = %d, expected 0 (disabled)", cfg.Shooter.ScoreLimit)
	}
	if cfg.Shooter.BulletCap != 3 {
		t.Errorf("bullet cap = %d, expected 3", cfg.Shooter.BulletCap)
	}
	if cfg.Shooter.ShipAtlas != def.Shooter.ShipAtlas {
		t.Errorf("ship atlas = %+v, expected %+v", cfg.Shooter.ShipAtlas, def.Shooter.ShipAtlas)
	}
	if len(cfg.Blocks.Difficulties) != 3 {
		t.Fatalf("expected 3 difficulties, got %d", len(cfg.Blocks.Difficulties))
	}
}

func TestDifficultyTable(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		mode   int
		blocks int
		speed  int
	}{
		{1, 5, 4},
		{2, 4, 6},
		{3, 3, 10},
	}

	for _, tc := range tests {
		d, ok := cfg.Difficulty(tc.mode)
		if !ok {
			t.Fatalf("Difficulty(%d) not found", tc.mode)
		}
		if d.DropSpriteBlocks != tc.blocks || d.Speed != tc.speed {
			t.Errorf("Difficulty(%d) = %d/%d, expected %d/%d", tc.mode, d.DropSpriteBlocks, d.Speed, tc.blocks, tc.speed)
		}
	}

	if _, ok := cfg.Difficulty(4); ok {
		t.Error("Difficulty(4) should not exist")
	}
	if cfg.MaxDropBlocks() != 5 {
		t.Errorf("MaxDropBlocks() = %d, expected 5", cfg.MaxDropBlocks())
	}
}

func TestParseMode(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		in       string
		expected int
		wantErr  bool
	}{
		{"", DefaultMode, false},
		{"1", 1, false},
		{"3", 3, false},
		{"Intermediate", 2, false},
		{" advanced ", 3, false},
		{"9", 0, true},
		{"nightmare", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := cfg.ParseMode(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("ParseMode(%q) error = %v, expected ErrInvalid", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseMode(%q) = %d, expected %d", tc.in, got, tc.expected)
			}
		})
	}
}

func TestParseModeErrorListsNames(t *testing.T) {
	_, err := DefaultConfig().ParseMode("nightmare")
	if err == nil || !strings.Contains(err.Error(), "easy, intermediate, advanced") {
		t.Errorf("ParseMode() error = %v, expected the difficulty names", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero sprite", func(c *Config) { c.Sprite.Size = 0 }},
		{"no difficulties", func(c *Config) { c.Blocks.Difficulties = nil }},
		{"row wider than window", func(c *Config) { c.Blocks.Difficulties[0].DropSpriteBlocks = 16 }},
		{"zero threshold", func(c *Config) { c.Blocks.StackThreshold = 0 }},
		{"empty palette", func(c *Config) { c.Blocks.Palette.Rows = 0 }},
		{"zero bullet cap", func(c *Config) { c.Shooter.BulletCap = 0 }},
		{"zero bullet speed", func(c *Config) { c.Shooter.BulletSpeed = 0 }},
		{"negative score limit", func(c *Config) { c.Shooter.ScoreLimit = -1 }},
		{"zero speed", func(c *Config) { c.Blocks.Difficulties[2].Speed = 0 }},
		{"pool too small for blocks", func(c *Config) { c.Pool.Capacity = 59 }},
		{"pool too small for shooter", func(c *Config) {
			c.Blocks.Difficulties = []Difficulty{{Mode: 1, DropSpriteBlocks: 1, Speed: 1}}
			c.Blocks.StackThreshold = 1
			c.Pool.Capacity = 4
		}},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("shooter:\n  bullet_speed: 9\n  score_limit: 10\nblocks:\n  stack_threshold: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Shooter.BulletSpeed != 9 {
		t.Errorf("bullet speed = %v, expected 9", cfg.Shooter.BulletSpeed)
	}
	if cfg.Shooter.ScoreLimit != 10 {
		t.Errorf("score limit = %d, expected 10", cfg.Shooter.ScoreLimit)
	}
	if cfg.Blocks.StackThreshold != 6 {
		t.Errorf("stack threshold = %d, expected 6", cfg.Blocks.StackThreshold)
	}
	// Untouched values keep their defaults
	if cfg.Window.Width != 1024 {
		t.Errorf("window width = %v, expected default 1024", cfg.Window.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pool:\n  capacity: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an invalid file = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Text != DefaultConfig().Text {
		t.Errorf("text anchor = %+v, expected %+v", cfg.Text, DefaultConfig().Text)
	}
}

func TestPaletteCell(t *testing.T) {
	p := DefaultConfig().Blocks.Palette
	cell := p.Cell(1, 3)
	if cell.X != 0.5 || cell.W != 0.25 || cell.H != 0.1 {
		t.Errorf("Cell(1, 3) = %+v, unexpected", cell)
	}
	if cell.Y < 0.299 || cell.Y > 0.301 {
		t.Errorf("Cell(1, 3).Y = %v, expected ~0.3", cell.Y)
	}
}
