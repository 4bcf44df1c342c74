package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/core"
	"github.com/vovakirdan/block-games/internal/sim"
)

// Sprite glyph and status text color.
const (
	SpriteChar = '█'
	TextColor  = core.ColorBrightWhite
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Renderer draws simulation frames into a cell screen.
// World coordinates have their origin at the bottom-left; rows on the
// screen count from the top, so y is flipped.
type Renderer struct {
	worldW, worldH float32
	anchorX        float32
	anchorY        float32
	atlasCols      int
	atlasRows      int
}

// NewRenderer creates a renderer for the world described by cfg.
func NewRenderer(cfg config.Config) *Renderer {
	pal := cfg.Blocks.Palette
	cols, rows := 1, 1
	if pal.CellW > 0 {
		cols = max(int(math.Round(float64(1/pal.CellW))), 1)
	}
	if pal.CellH > 0 {
		rows = max(int(math.Round(float64(1/pal.CellH))), 1)
	}
	return &Renderer{
		worldW:    cfg.Window.Width,
		worldH:    cfg.Window.Height,
		anchorX:   cfg.Text.AnchorX,
		anchorY:   cfg.Text.AnchorY,
		atlasCols: cols,
		atlasRows: rows,
	}
}

// Draw clears the screen and draws every active sprite, then the status text.
func (r *Renderer) Draw(s *core.Screen, f sim.Frame) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}
	for _, sp := range f.Sprites {
		if !sp.Active() {
			continue
		}
		x0, y0, x1, y1 := r.cells(s, sp.Bounds)
		s.FillRect(x0, y0, x1, y1, SpriteChar, r.AtlasColor(sp.Atlas))
	}
	if f.Text != "" {
		tx := int(r.anchorX / r.worldW * float32(s.Width()))
		ty := int(r.anchorY / r.worldH * float32(s.Height()))
		s.DrawText(tx, ty, f.Text, TextColor)
	}
}

// cells maps a world rect to a half-open cell range. Every visible rect
// covers at least one cell.
func (r *Renderer) cells(s *core.Screen, b core.Rect) (x0, y0, x1, y1 int) {
	sx := float32(s.Width()) / r.worldW
	sy := float32(s.Height()) / r.worldH

	x0 = int(math.Floor(float64(b.X * sx)))
	x1 = int(math.Ceil(float64(b.Right() * sx)))
	// Flip: the rect's top edge is the smaller screen row.
	y0 = int(math.Floor(float64((r.worldH - b.Top()) * sy)))
	y1 = int(math.Ceil(float64((r.worldH - b.Y) * sy)))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// AtlasColor picks a terminal color for an atlas cell. Distinct cells of
// the atlas grid map to distinct palette entries where the palette allows.
func (r *Renderer) AtlasColor(a core.Rect) core.Color {
	col := core.Clamp(int(math.Round(float64(a.X*float32(r.atlasCols)))), 0, r.atlasCols-1)
	row := core.Clamp(int(math.Round(float64(a.Y*float32(r.atlasRows)))), 0, r.atlasRows-1)
	return core.Palette[(row*r.atlasCols+col)%len(core.Palette)]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
