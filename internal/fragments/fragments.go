// Package fragments answers graph questions about the bond network of a
// topology: which atoms form connected molecules, and how two atoms are
// joined through bonds.
package fragments

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/san-kum/moltop/internal/topology"
)

// ErrNoPath is returned by BondPath when the two atoms are in different
// fragments.
var ErrNoPath = errors.New("fragments: atoms are not connected")

// Graph builds an undirected graph with one node per atom and one edge per
// bond. Node IDs are atom indices.
func Graph(t *topology.Topology) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < t.NAtoms(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range t.Bonds() {
		i, _ := b.At(0)
		j, _ := b.At(1)
		g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
	}
	return g
}

// Fragments returns the connected components of the bond graph. Isolated
// atoms form their own fragment. Each fragment is sorted, and fragments
// are ordered by their lowest atom index.
func Fragments(t *topology.Topology) [][]int {
	components := topo.ConnectedComponents(Graph(t))

	out := make([][]int, 0, len(components))
	for _, nodes := range components {
		out = append(out, nodeIDs(nodes))
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}

// BondPath returns the atoms on a shortest bonded path from one atom to
// another, both ends included.
func BondPath(t *topology.Topology, from, to int) ([]int, error) {
	for _, i := range []int{from, to} {
		if _, err := t.Atom(i); err != nil {
			return nil, err
		}
	}

	g := Graph(t)
	shortest := path.DijkstraFrom(simple.Node(from), g)
	nodes, _ := shortest.To(int64(to))
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %d and %d", ErrNoPath, from, to)
	}

	ids := make([]int, len(nodes))
	for k, n := range nodes {
		ids[k] = int(n.ID())
	}
	return ids, nil
}

// Distance returns the number of bonds on a shortest path between two atoms.
func Distance(t *topology.Topology, from, to int) (int, error) {
	p, err := BondPath(t, from, to)
	if err != nil {
		return 0, err
	}
	return len(p) - 1, nil
}

func nodeIDs(nodes []graph.Node) []int {
	ids := make([]int, len(nodes))
	for k, n := range nodes {
		ids[k] = int(n.ID())
	}
	slices.Sort(ids)
	return ids
}
