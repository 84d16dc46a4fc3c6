package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/moltop/internal/topology"
)

// Degrees returns the number of bonds of every atom.
func Degrees(t *topology.Topology) []int {
	degrees := make([]int, t.NAtoms())
	for _, b := range t.Bonds() {
		i, _ := b.At(0)
		j, _ := b.At(1)
		degrees[i]++
		degrees[j]++
	}
	return degrees
}

// DegreeHistogram returns, for every degree from zero to the highest one
// present, the number of atoms with that many bonds.
func DegreeHistogram(t *topology.Topology) []int {
	degrees := Degrees(t)
	if len(degrees) == 0 {
		return nil
	}

	highest := 0
	for _, d := range degrees {
		highest = max(highest, d)
	}
	hist := make([]int, highest+1)
	for _, d := range degrees {
		hist[d]++
	}
	return hist
}

// PlotDegrees draws the degree histogram as an ASCII line chart.
func PlotDegrees(t *topology.Topology, width, height int) string {
	hist := DegreeHistogram(t)
	if len(hist) == 0 {
		return Subtle.Render("no atoms")
	}

	data := make([]float64, len(hist))
	for d, n := range hist {
		data[d] = float64(n)
	}
	if len(data) == 1 {
		data = append(data, 0)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("atoms per bond degree (0-%d)", len(hist)-1)),
	)
}
