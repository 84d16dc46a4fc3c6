// Package export renders topologies to image formats.
package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/moltop/internal/fragments"
	"github.com/san-kum/moltop/internal/topology"
	"github.com/san-kum/moltop/internal/viz"
)

type point struct{ X, Y float64 }

// circleLayout places atoms on a circle, fragment by fragment, so that
// the atoms of a fragment are neighbors on the ring.
func circleLayout(t *topology.Topology, size int) []point {
	n := t.NAtoms()
	pos := make([]point, n)
	if n == 0 {
		return pos
	}

	center := float64(size) / 2
	radius := center * 0.8
	if n == 1 {
		pos[0] = point{center, center}
		return pos
	}

	slot := 0
	for _, frag := range fragments.Fragments(t) {
		for _, i := range frag {
			angle := 2*math.Pi*float64(slot)/float64(n) - math.Pi/2
			pos[i] = point{center + radius*math.Cos(angle), center + radius*math.Sin(angle)}
			slot++
		}
	}
	return pos
}

// GraphToSVG draws the bond graph of t as a square SVG image: atoms as
// labelled circles colored by type, bonds as lines.
func GraphToSVG(t *topology.Topology, size int) string {
	pos := circleLayout(t, size)
	atomRadius := math.Max(4, float64(size)/float64(4*max(t.NAtoms(), 1)))

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#888899" stroke-width="2">
`, size, size, size, size))

	for _, b := range t.Bonds() {
		i, _ := b.At(0)
		j, _ := b.At(1)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, pos[i].X, pos[i].Y, pos[j].X, pos[j].Y))
	}

	sb.WriteString("</g>\n<g font-family=\"monospace\" font-size=\"10\" text-anchor=\"middle\">\n")

	for i, p := range pos {
		atom, err := t.Atom(i)
		if err != nil {
			break
		}
		color := viz.CurrentPalette.Color(atom.Type)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
<text x="%.1f" y="%.1f" fill="#ffffff">%s</text>
`, p.X, p.Y, atomRadius, color, p.X, p.Y-atomRadius-2, html.EscapeString(atom.Name)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
