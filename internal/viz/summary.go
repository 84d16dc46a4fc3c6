package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/moltop/internal/fragments"
	"github.com/san-kum/moltop/internal/topology"
)

const (
	summaryWidth  = 56
	maxListedBond = 24
)

// Summary renders the counts, residues and bonds of t in a titled box.
func Summary(name string, t *topology.Topology) string {
	var b strings.Builder

	row := func(label string, value any) {
		b.WriteString(Label.Render(label) + Value.Render(fmt.Sprint(value)) + "\n")
	}

	row("formula", Formula(t))
	row("atoms", t.NAtoms())
	row("bonds", len(t.Bonds()))
	row("angles", len(t.Angles()))
	row("dihedrals", len(t.Dihedrals()))
	row("residues", len(t.Residues()))
	row("fragments", len(fragments.Fragments(t)))
	row("degrees", degreeSparkline(t))

	if residues := t.Residues(); len(residues) > 0 {
		b.WriteString(Separator(summaryWidth-4) + "\n" + Header.Render("residues") + "\n")
		for _, r := range residues {
			b.WriteString("  " + residueLabel(r) + " " + Subtle.Render(fmt.Sprint(r.Atoms())) + "\n")
		}
	}

	if bonds := t.Bonds(); len(bonds) > 0 {
		b.WriteString(Separator(summaryWidth-4) + "\n" + Header.Render("bonds") + "\n")
		for k, bond := range bonds {
			if k == maxListedBond {
				b.WriteString(Subtle.Render(fmt.Sprintf("  ... and %d more", len(bonds)-k)) + "\n")
				break
			}
			b.WriteString("  " + bondLabel(t, bond) + "\n")
		}
	}

	return BoxWithTitle(name, strings.TrimRight(b.String(), "\n"), summaryWidth)
}

// degreeSparkline draws the degree histogram, one column per degree.
func degreeSparkline(t *topology.Topology) string {
	hist := DegreeHistogram(t)
	values := make([]float64, len(hist))
	for d, n := range hist {
		values[d] = float64(n)
	}
	return Sparkline(values, len(values))
}

func residueLabel(r topology.Residue) string {
	if id, ok := r.ID(); ok {
		return Value.Render(fmt.Sprintf("%s %d", r.Name(), id))
	}
	return Value.Render(r.Name())
}

func bondLabel(t *topology.Topology, bond topology.Bond) string {
	i, _ := bond.At(0)
	j, _ := bond.At(1)
	return fmt.Sprintf("%s - %s", atomLabel(t, i), atomLabel(t, j))
}

func atomLabel(t *topology.Topology, i int) string {
	atom, err := t.Atom(i)
	if err != nil {
		return fmt.Sprintf("%d", i)
	}
	return CurrentPalette.Render(atom.Type, fmt.Sprintf("%s(%d)", atom.Name, i))
}

// Formula returns the atom type composition of t in Hill order: C first,
// then H, then every other type alphabetically. Empty types count as "X".
func Formula(t *topology.Topology) string {
	counts := make(map[string]int)
	for i := 0; i < t.NAtoms(); i++ {
		atom, err := t.Atom(i)
		if err != nil {
			break
		}
		atomType := atom.Type
		if atomType == "" {
			atomType = "X"
		}
		counts[atomType]++
	}

	types := make([]string, 0, len(counts))
	for atomType := range counts {
		types = append(types, atomType)
	}
	_, hasCarbon := counts["C"]
	sort.Slice(types, func(a, b int) bool {
		ra, rb := hillRank(types[a], hasCarbon), hillRank(types[b], hasCarbon)
		if ra != rb {
			return ra < rb
		}
		return types[a] < types[b]
	})

	var b strings.Builder
	for _, atomType := range types {
		b.WriteString(atomType)
		if n := counts[atomType]; n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}

func hillRank(atomType string, hasCarbon bool) int {
	if !hasCarbon {
		return 2
	}
	switch atomType {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}
