package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/sim"
	"github.com/vovakirdan/block-games/internal/sprite"
)

func TestRendererFlipsY(t *testing.T) {
	cfg := config.DefaultConfig()
	r := NewRenderer(cfg)
	// 1024x768 world onto 64x48 cells: one cell per 16 pixels.
	s := core.NewScreen(64, 48)

	r.Draw(s, sim.Frame{Sprites: []sprite.Sprite{
		{Bounds: core.NewRect(0, 0, 64, 64)},      // bottom-left
		{Bounds: core.NewRect(960, 704, 64, 64)}, // top-right
		{Bounds: core.NewRect(500, 300, 0, 0)},   // inactive
	}})

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 47, SpriteChar},
		{3, 44, SpriteChar},
		{0, 43, ' '},
		{4, 47, ' '},
		{63, 0, SpriteChar},
		{60, 3, SpriteChar},
		{59, 0, ' '},
		{31, 29, ' '},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRendererSmallSpriteCoversACell(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	s := core.NewScreen(16, 12)

	// 4x4 pixels is a quarter of a cell at this scale.
	r.Draw(s, sim.Frame{Sprites: []sprite.Sprite{
		{Bounds: core.NewRect(512, 0, 4, 4)},
	}})

	count := strings.Count(s.String(), string(SpriteChar))
	if count != 1 {
		t.Errorf("expected exactly one cell drawn, got %d", count)
	}
}

func TestRendererDrawsTextAtAnchor(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	s := core.NewScreen(64, 48)

	r.Draw(s, sim.Frame{Text: "Level: 1\nnext"})

	// Anchor (150, 200) pixels maps to cell (9, 12).
	if got := s.Row(12)[9:17]; got != "Level: 1" {
		t.Errorf("row 12 = %q, want text at column 9", s.Row(12))
	}
	if got := s.Row(13)[9:13]; got != "next" {
		t.Errorf("row 13 = %q, want second line at column 9", s.Row(13))
	}
	if cell := s.GetCell(9, 12); cell.Color != TextColor {
		t.Errorf("text color = %d, want %d", cell.Color, TextColor)
	}
}

func TestRendererClearsBetweenFrames(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	s := core.NewScreen(64, 48)

	r.Draw(s, sim.Frame{Sprites: []sprite.Sprite{{Bounds: core.NewRect(0, 0, 64, 64)}}})
	r.Draw(s, sim.Frame{})

	if strings.ContainsRune(s.String(), SpriteChar) {
		t.Error("sprite from previous frame still drawn")
	}
}

func TestAtlasColorDistinguishesCells(t *testing.T) {
	cfg := config.DefaultConfig()
	r := NewRenderer(cfg)
	pal := cfg.Blocks.Palette

	seen := make(map[core.Color]bool)
	for row := 0; row < 4; row++ {
		for col := 0; col < pal.Columns; col++ {
			seen[r.AtlasColor(pal.Cell(col, row))] = true
		}
	}
	if len(seen) < 8 {
		t.Errorf("expected 8 distinct colors for 8 palette cells, got %d", len(seen))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.SetColored(3, 0, 'c', core.ColorBlue)

	out := RenderScreen(s)
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output %q missing %q", out, want)
		}
	}
}
