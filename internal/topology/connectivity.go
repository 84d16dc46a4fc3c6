package topology

import "slices"

// connectivity holds the bond graph and the angles and dihedrals derived
// from it. All three lists keep insertion (discovery) order; the sets mirror
// them for membership checks.
type connectivity struct {
	bonds     []Bond
	angles    []Angle
	dihedrals []Dihedral

	bondSet     map[Bond]struct{}
	angleSet    map[Angle]struct{}
	dihedralSet map[Dihedral]struct{}

	// neighbors lists the atoms bonded to each atom, in bond order.
	neighbors map[int][]int
}

func newConnectivity() *connectivity {
	return &connectivity{
		bondSet:     make(map[Bond]struct{}),
		angleSet:    make(map[Angle]struct{}),
		dihedralSet: make(map[Dihedral]struct{}),
		neighbors:   make(map[int][]int),
	}
}

func (c *connectivity) hasBond(b Bond) bool {
	_, ok := c.bondSet[b]
	return ok
}

// addBond inserts bond i-j and derives the new angles and dihedrals. Adding
// an existing bond is a no-op. The caller checks the index range.
func (c *connectivity) addBond(i, j int) (bool, error) {
	bond, err := NewBond(i, j)
	if err != nil {
		return false, err
	}
	if c.hasBond(bond) {
		return false, nil
	}

	x, y := bond.data[0], bond.data[1]
	knownAngles := len(c.angles)

	for _, other := range c.bonds {
		switch {
		case other.Contains(x):
			c.addAngle(other.Other(x), x, y)
		case other.Contains(y):
			c.addAngle(other.Other(y), y, x)
		}
	}

	// new bond at the end of an existing angle
	for _, angle := range c.angles[:knownAngles] {
		u, v, w := angle.data[0], angle.data[1], angle.data[2]
		if w == x && y != u && y != v {
			c.addDihedral(u, v, x, y)
		}
		if w == y && x != u && x != v {
			c.addDihedral(u, v, y, x)
		}
		if u == x && y != v && y != w {
			c.addDihedral(y, x, v, w)
		}
		if u == y && x != v && x != w {
			c.addDihedral(x, y, v, w)
		}
	}

	// new bond in the middle
	for _, a := range c.neighbors[x] {
		for _, d := range c.neighbors[y] {
			if a != y && d != x && a != d {
				c.addDihedral(a, x, y, d)
			}
		}
	}

	c.bonds = append(c.bonds, bond)
	c.bondSet[bond] = struct{}{}
	c.neighbors[x] = append(c.neighbors[x], y)
	c.neighbors[y] = append(c.neighbors[y], x)
	return true, nil
}

func (c *connectivity) addAngle(i, j, k int) {
	angle, err := NewAngle(i, j, k)
	if err != nil {
		return
	}
	if _, ok := c.angleSet[angle]; ok {
		return
	}
	c.angles = append(c.angles, angle)
	c.angleSet[angle] = struct{}{}
}

func (c *connectivity) addDihedral(i, j, k, m int) {
	dihedral, err := NewDihedral(i, j, k, m)
	if err != nil {
		return
	}
	if _, ok := c.dihedralSet[dihedral]; ok {
		return
	}
	c.dihedrals = append(c.dihedrals, dihedral)
	c.dihedralSet[dihedral] = struct{}{}
}

// removeBond deletes bond i-j and everything derived from it. Removing an
// absent bond is a no-op.
func (c *connectivity) removeBond(i, j int) bool {
	bond, err := NewBond(i, j)
	if err != nil || !c.hasBond(bond) {
		return false
	}

	c.bonds = slices.DeleteFunc(c.bonds, func(b Bond) bool { return b == bond })
	delete(c.bondSet, bond)

	c.angles = slices.DeleteFunc(c.angles, func(a Angle) bool {
		if a.uses(bond) {
			delete(c.angleSet, a)
			return true
		}
		return false
	})
	c.dihedrals = slices.DeleteFunc(c.dihedrals, func(d Dihedral) bool {
		if d.uses(bond) {
			delete(c.dihedralSet, d)
			return true
		}
		return false
	})

	x, y := bond.data[0], bond.data[1]
	c.neighbors[x] = slices.DeleteFunc(c.neighbors[x], func(n int) bool { return n == y })
	c.neighbors[y] = slices.DeleteFunc(c.neighbors[y], func(n int) bool { return n == x })
	if len(c.neighbors[x]) == 0 {
		delete(c.neighbors, x)
	}
	if len(c.neighbors[y]) == 0 {
		delete(c.neighbors, y)
	}
	return true
}

// removeAtom drops every bond touching atom i, then relabels all indices
// above i down by one.
func (c *connectivity) removeAtom(i int) {
	for _, n := range slices.Clone(c.neighbors[i]) {
		c.removeBond(i, n)
	}

	for k, b := range c.bonds {
		c.bonds[k] = Bond{data: [2]int{shift(b.data[0], i), shift(b.data[1], i)}}
	}
	for k, a := range c.angles {
		c.angles[k] = Angle{data: [3]int{shift(a.data[0], i), shift(a.data[1], i), shift(a.data[2], i)}}
	}
	for k, d := range c.dihedrals {
		c.dihedrals[k] = Dihedral{data: [4]int{
			shift(d.data[0], i), shift(d.data[1], i), shift(d.data[2], i), shift(d.data[3], i),
		}}
	}
	c.reindex()
}

// reindex rebuilds the sets and the adjacency from the lists.
func (c *connectivity) reindex() {
	c.bondSet = make(map[Bond]struct{}, len(c.bonds))
	c.neighbors = make(map[int][]int)
	for _, b := range c.bonds {
		c.bondSet[b] = struct{}{}
		c.neighbors[b.data[0]] = append(c.neighbors[b.data[0]], b.data[1])
		c.neighbors[b.data[1]] = append(c.neighbors[b.data[1]], b.data[0])
	}
	c.angleSet = make(map[Angle]struct{}, len(c.angles))
	for _, a := range c.angles {
		c.angleSet[a] = struct{}{}
	}
	c.dihedralSet = make(map[Dihedral]struct{}, len(c.dihedrals))
	for _, d := range c.dihedrals {
		c.dihedralSet[d] = struct{}{}
	}
}

// maxIndex returns the highest atom index used by any bond, or -1.
func (c *connectivity) maxIndex() int {
	highest := -1
	for _, b := range c.bonds {
		highest = max(highest, b.data[1])
	}
	return highest
}

func (c *connectivity) clone() *connectivity {
	out := &connectivity{
		bonds:     slices.Clone(c.bonds),
		angles:    slices.Clone(c.angles),
		dihedrals: slices.Clone(c.dihedrals),
	}
	out.reindex()
	return out
}
