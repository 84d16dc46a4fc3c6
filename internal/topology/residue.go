package topology

import (
	"fmt"
	"slices"
)

// Residue is a named group of atoms, such as one amino acid or one solvent
// molecule. Membership is a set; insertion order does not matter.
type Residue struct {
	name  string
	id    int64
	hasID bool
	atoms []int // sorted, unique
}

// NewResidue returns an empty residue without an id.
func NewResidue(name string) Residue {
	return Residue{name: name}
}

// NewResidueWithID returns an empty residue carrying a residue id, as used
// by most file formats to number residues.
func NewResidueWithID(name string, id int64) Residue {
	return Residue{name: name, id: id, hasID: true}
}

func (r Residue) Name() string {
	return r.name
}

// ID returns the residue id, if any.
func (r Residue) ID() (int64, bool) {
	return r.id, r.hasID
}

// AddAtom adds atom i to the residue. Adding an atom twice is a no-op.
func (r *Residue) AddAtom(i int) {
	pos, found := slices.BinarySearch(r.atoms, i)
	if found {
		return
	}
	r.atoms = slices.Insert(r.atoms, pos, i)
}

func (r Residue) Contains(i int) bool {
	_, found := slices.BinarySearch(r.atoms, i)
	return found
}

// Atoms returns the member atoms in increasing order.
func (r Residue) Atoms() []int {
	return slices.Clone(r.atoms)
}

func (r Residue) Size() int {
	return len(r.atoms)
}

// Equal reports whether both residues have the same name, id and members.
func (r Residue) Equal(other Residue) bool {
	return r.name == other.name &&
		r.hasID == other.hasID &&
		r.id == other.id &&
		slices.Equal(r.atoms, other.atoms)
}

func (r Residue) Clone() Residue {
	r.atoms = slices.Clone(r.atoms)
	return r
}

func (r Residue) String() string {
	if r.hasID {
		return fmt.Sprintf("Residue(%s %d, %v)", r.name, r.id, r.atoms)
	}
	return fmt.Sprintf("Residue(%s, %v)", r.name, r.atoms)
}

// removeAtom drops atom i and shifts higher members down by one.
func (r *Residue) removeAtom(i int) {
	r.atoms = slices.DeleteFunc(r.atoms, func(a int) bool { return a == i })
	for k, a := range r.atoms {
		r.atoms[k] = shift(a, i)
	}
}

// truncate drops every member at or above n.
func (r *Residue) truncate(n int) {
	pos, _ := slices.BinarySearch(r.atoms, n)
	r.atoms = r.atoms[:pos]
}

// residues is the residue table: the residues in insertion order and the
// owning residue of each atom.
type residues struct {
	list  []Residue
	owner map[int]int
}

func newResidues() *residues {
	return &residues{owner: make(map[int]int)}
}

// add stores a copy of r after checking that no member already belongs to
// another residue.
func (t *residues) add(r Residue) error {
	for _, i := range r.atoms {
		if owner, ok := t.owner[i]; ok {
			return invalidf("can not add residue %q: atom %d is already in residue %d", r.name, i, owner)
		}
	}
	index := len(t.list)
	t.list = append(t.list, r.Clone())
	for _, i := range r.atoms {
		t.owner[i] = index
	}
	return nil
}

func (t *residues) forAtom(i int) (Residue, bool) {
	index, ok := t.owner[i]
	if !ok {
		return Residue{}, false
	}
	return t.list[index].Clone(), true
}

func (t *residues) all() []Residue {
	out := make([]Residue, len(t.list))
	for k, r := range t.list {
		out[k] = r.Clone()
	}
	return out
}

func (t *residues) removeAtom(i int) {
	for k := range t.list {
		t.list[k].removeAtom(i)
	}
	t.reindex()
}

func (t *residues) truncate(n int) {
	for k := range t.list {
		t.list[k].truncate(n)
	}
	t.reindex()
}

func (t *residues) reindex() {
	t.owner = make(map[int]int)
	for k, r := range t.list {
		for _, i := range r.atoms {
			t.owner[i] = k
		}
	}
}

func (t *residues) clone() *residues {
	out := &residues{list: make([]Residue, len(t.list))}
	for k, r := range t.list {
		out.list[k] = r.Clone()
	}
	out.reindex()
	return out
}
