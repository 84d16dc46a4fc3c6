package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/moltop/internal/topology"
	"github.com/san-kum/moltop/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type tab int

const (
	tabAtoms tab = iota
	tabBonds
	tabAngles
	tabDihedrals
	tabResidues
	numTabs
)

var tabNames = [numTabs]string{"atoms", "bonds", "angles", "dihedrals", "residues"}

// chromeLines is the number of lines View spends outside of the row list.
const chromeLines = 8

type browser struct {
	name   string
	top    *topology.Topology
	tab    tab
	rows   [numTabs][]string
	offset [numTabs]int

	width  int
	height int
}

// NewBrowser returns a read-only browser over a copy of t.
func NewBrowser(name string, t *topology.Topology) browser {
	b := browser{
		name:   name,
		top:    t.Clone(),
		width:  80,
		height: 24,
	}
	b.rows[tabAtoms] = atomRows(b.top)
	b.rows[tabBonds] = bondRows(b.top)
	b.rows[tabAngles] = angleRows(b.top)
	b.rows[tabDihedrals] = dihedralRows(b.top)
	b.rows[tabResidues] = residueRows(b.top)
	return b
}

func (m browser) Init() tea.Cmd { return nil }

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset[m.tab] = min(m.offset[m.tab], m.maxOffset())
		return m, nil
	}
	return m, nil
}

func (m browser) handleKey(msg tea.KeyMsg) (browser, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % numTabs
	case "shift+tab", "left", "h":
		m.tab = (m.tab + numTabs - 1) % numTabs
	case "down", "j":
		if m.offset[m.tab] < m.maxOffset() {
			m.offset[m.tab]++
		}
	case "up", "k":
		if m.offset[m.tab] > 0 {
			m.offset[m.tab]--
		}
	case "pgdown", " ":
		m.offset[m.tab] = min(m.offset[m.tab]+m.pageSize(), m.maxOffset())
	case "pgup":
		m.offset[m.tab] = max(m.offset[m.tab]-m.pageSize(), 0)
	case "home", "g":
		m.offset[m.tab] = 0
	case "end", "G":
		m.offset[m.tab] = m.maxOffset()
	}
	return m, nil
}

func (m browser) pageSize() int {
	return max(m.height-chromeLines, 1)
}

func (m browser) maxOffset() int {
	return max(len(m.rows[m.tab])-m.pageSize(), 0)
}

func (m browser) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + cyan.Render(m.name) + "  " + dim.Render(viz.Formula(m.top)) + "\n")
	b.WriteString("   " + m.tabBar() + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", max(m.width-6, 10))) + "\n")

	rows := m.rows[m.tab]
	if len(rows) == 0 {
		b.WriteString("   " + dim.Render("no "+tabNames[m.tab]) + "\n")
	}
	start := m.offset[m.tab]
	end := min(start+m.pageSize(), len(rows))
	for _, row := range rows[start:end] {
		b.WriteString("   " + row + "\n")
	}

	b.WriteString("\n")
	if len(rows) > 0 {
		b.WriteString(dimmer.Render(fmt.Sprintf("   %d-%d of %d", start+1, end, len(rows))) + "\n")
	}
	b.WriteString("   " + viz.KeyHint.Render("tab/←→ switch  ↑↓ scroll  g/G top/bottom  q quit") + "\n")

	return b.String()
}

func (m browser) tabBar() string {
	parts := make([]string, numTabs)
	for k, name := range tabNames {
		label := fmt.Sprintf("%s %d", name, len(m.rows[k]))
		if tab(k) == m.tab {
			parts[k] = viz.Selected.Render("▸ " + label)
		} else {
			parts[k] = dim.Render("  " + label)
		}
	}
	return strings.Join(parts, " ")
}

func atomName(t *topology.Topology, i int) string {
	atom, err := t.Atom(i)
	if err != nil {
		return fmt.Sprint(i)
	}
	return viz.CurrentPalette.Render(atom.Type, fmt.Sprintf("%s(%d)", atom.Name, i))
}

func chain(t *topology.Topology, indices ...int) string {
	names := make([]string, len(indices))
	for k, i := range indices {
		names[k] = atomName(t, i)
	}
	return strings.Join(names, dimmer.Render(" - "))
}

func atomRows(t *topology.Topology) []string {
	rows := make([]string, 0, t.NAtoms())
	for i := 0; i < t.NAtoms(); i++ {
		atom, err := t.Atom(i)
		if err != nil {
			break
		}
		residue := ""
		if r, ok := t.Residue(i); ok {
			residue = residueName(r)
		}
		neighbors, _ := t.Neighbors(i)
		rows = append(rows, fmt.Sprintf("%s %s %s %s %s",
			dim.Render(fmt.Sprintf("%5d", i)),
			white.Render(fmt.Sprintf("%-6s", atom.Name)),
			viz.CurrentPalette.Render(atom.Type, fmt.Sprintf("%-6s", atom.Type)),
			dim.Render(fmt.Sprintf("%-10s", residue)),
			dimmer.Render(fmt.Sprint(neighbors)),
		))
	}
	return rows
}

func bondRows(t *topology.Topology) []string {
	bonds := t.Bonds()
	rows := make([]string, len(bonds))
	for k, b := range bonds {
		i, _ := b.At(0)
		j, _ := b.At(1)
		rows[k] = chain(t, i, j)
	}
	return rows
}

func angleRows(t *topology.Topology) []string {
	angles := t.Angles()
	rows := make([]string, len(angles))
	for k, a := range angles {
		i, _ := a.At(0)
		j, _ := a.At(1)
		l, _ := a.At(2)
		rows[k] = chain(t, i, j, l)
	}
	return rows
}

func dihedralRows(t *topology.Topology) []string {
	dihedrals := t.Dihedrals()
	rows := make([]string, len(dihedrals))
	for k, d := range dihedrals {
		i, _ := d.At(0)
		j, _ := d.At(1)
		l, _ := d.At(2)
		n, _ := d.At(3)
		rows[k] = chain(t, i, j, l, n)
	}
	return rows
}

func residueRows(t *topology.Topology) []string {
	residues := t.Residues()
	rows := make([]string, len(residues))
	for k, r := range residues {
		var linked []string
		for _, other := range residues {
			if !other.Equal(r) && t.AreLinked(r, other) {
				linked = append(linked, residueName(other))
			}
		}
		row := white.Render(fmt.Sprintf("%-10s", residueName(r))) + " " + dim.Render(fmt.Sprint(r.Atoms()))
		if len(linked) > 0 {
			row += dimmer.Render("  linked: ") + cyan.Render(strings.Join(linked, ", "))
		}
		rows[k] = row
	}
	return rows
}

func residueName(r topology.Residue) string {
	if id, ok := r.ID(); ok {
		return fmt.Sprintf("%s %d", r.Name(), id)
	}
	return r.Name()
}

// Run opens the browser full screen and blocks until the user quits.
func Run(name string, t *topology.Topology) error {
	p := tea.NewProgram(NewBrowser(name, t), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
