package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#444466")).
	Padding(0, 1)

var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#00ffff"))

// Selected marks the highlighted row of a list.
var Selected = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ff00ff"))

var Subtle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666688"))

var Value = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#00ccff")).
	Bold(true)

var Label = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#888899")).
	Width(12)

var KeyHint = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666688")).
	Italic(true)

var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ffffff")).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(lipgloss.Color("#444466"))

// BoxWithTitle renders content in a rounded box under a title line.
func BoxWithTitle(title, content string, width int) string {
	box := Panel.Width(width)

	fill := width - lipgloss.Width(title) - 4
	if fill < 1 {
		fill = 1
	}
	header := "╭─ " + Title.Render(title) + " " + strings.Repeat("─", fill) + "╮"
	return header + "\n" + box.Render(content)
}

// Separator draws a horizontal rule with a centered diamond.
func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

// Sparkline renders values as a row of block characters, one per value,
// sampled down to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		idx := int((values[i*step] - lo) / rng * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		b.WriteRune(chars[idx])
	}
	return b.String()
}
