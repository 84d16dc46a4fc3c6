package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette colors atoms by type, in the spirit of CPK coloring.
type Palette struct {
	Name     string
	Elements map[string]lipgloss.Color
	Fallback lipgloss.Color
}

var (
	PaletteCPK = Palette{
		Name: "cpk",
		Elements: map[string]lipgloss.Color{
			"H":  lipgloss.Color("#ffffff"),
			"C":  lipgloss.Color("#909090"),
			"N":  lipgloss.Color("#3050f8"),
			"O":  lipgloss.Color("#ff0d0d"),
			"S":  lipgloss.Color("#ffff30"),
			"P":  lipgloss.Color("#ff8000"),
			"Cl": lipgloss.Color("#1ff01f"),
			"Na": lipgloss.Color("#ab5cf2"),
		},
		Fallback: lipgloss.Color("#ff1493"),
	}

	PaletteMono = Palette{
		Name:     "mono",
		Elements: map[string]lipgloss.Color{},
		Fallback: lipgloss.Color("#cccccc"),
	}

	// Default palette
	CurrentPalette = PaletteCPK

	Palettes = []Palette{PaletteCPK, PaletteMono}
)

// Color returns the color of an atom type. United-atom types such as CH3
// take the color of their leading element.
func (p Palette) Color(atomType string) lipgloss.Color {
	if c, ok := p.Elements[atomType]; ok {
		return c
	}
	if c, ok := p.Elements[leadingElement(atomType)]; ok {
		return c
	}
	return p.Fallback
}

// Render paints text in the color of atomType.
func (p Palette) Render(atomType, text string) string {
	return lipgloss.NewStyle().Foreground(p.Color(atomType)).Render(text)
}

func leadingElement(atomType string) string {
	if atomType == "" {
		return ""
	}
	end := 1
	if len(atomType) > 1 && atomType[1] >= 'a' && atomType[1] <= 'z' {
		end = 2
	}
	return strings.ToUpper(atomType[:1]) + atomType[1:end]
}

// GetPalette returns the palette called name.
func GetPalette(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}
