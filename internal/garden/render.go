package garden

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var glyphs = map[Variant]rune{
	Rose:      '❀',
	Daisy:     '✿',
	Tulip:     '⚘',
	Lily:      '❁',
	Sunflower: '✺',
	Poppy:     '✾',
}

// colorHex maps the color tokens onto terminal colors.
var colorHex = map[string]lipgloss.Color{
	"text-rose-400":   lipgloss.Color("#FB7185"),
	"text-pink-400":   lipgloss.Color("#F472B6"),
	"text-purple-400": lipgloss.Color("#C084FC"),
	"text-amber-400":  lipgloss.Color("#FBBF24"),
	"text-red-400":    lipgloss.Color("#F87171"),
	"text-yellow-400": lipgloss.Color("#FACC15"),
	"text-orange-400": lipgloss.Color("#FB923C"),
}

// Glyph returns the character drawn for a variant.
func Glyph(v Variant) rune {
	if g, ok := glyphs[v]; ok {
		return g
	}
	return '*'
}

type cell struct {
	glyph rune
	color string
}

func grid(placements []Placement, width, height int) [][]cell {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	rows := make([][]cell, height)
	for r := range rows {
		rows[r] = make([]cell, width)
		for c := range rows[r] {
			rows[r][c] = cell{glyph: ' '}
		}
	}

	// Placements arrive back to front; later ones overwrite
	for _, p := range placements {
		col := clamp(int(p.Left/100*float64(width)), width)
		row := clamp(int(p.Top/100*float64(height)), height)
		rows[row][col] = cell{glyph: Glyph(p.Variant), color: p.Color}
	}
	return rows
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Render draws placements into a width x height text grid.
func Render(placements []Placement, width, height int) string {
	rows := grid(placements, width, height)
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.glyph)
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// RenderStyled is Render with each flower colored for the terminal.
func RenderStyled(placements []Placement, width, height int) string {
	rows := grid(placements, width, height)
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, c := range row {
			if c.color == "" {
				b.WriteRune(c.glyph)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(colorHex[c.color]).Render(string(c.glyph)))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
