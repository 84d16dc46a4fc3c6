package topology

import "slices"

// Atom is a single atom record. The topology only cares about its identity
// by index; Name and Type are carried for collaborators.
type Atom struct {
	Name string
	Type string
}

// NewAtom returns an atom whose type is its name.
func NewAtom(name string) Atom {
	return Atom{Name: name, Type: name}
}

// atoms is the ordered, index-addressed atom store.
type atoms struct {
	list []Atom
}

func (a *atoms) len() int {
	return len(a.list)
}

func (a *atoms) add(atom Atom) int {
	a.list = append(a.list, atom)
	return len(a.list) - 1
}

func (a *atoms) get(i int) (*Atom, error) {
	if err := outOfBounds("atom", i, len(a.list)); err != nil {
		return nil, err
	}
	return &a.list[i], nil
}

// remove deletes atom i and shifts every later atom down by one.
func (a *atoms) remove(i int) {
	a.list = slices.Delete(a.list, i, i+1)
}

// resize truncates or grows the store to exactly n atoms. New atoms are zero
// values; no dependency checks happen here.
func (a *atoms) resize(n int) {
	if n <= len(a.list) {
		clear(a.list[n:])
		a.list = a.list[:n]
		return
	}
	a.list = append(a.list, make([]Atom, n-len(a.list))...)
}

func (a *atoms) clone() atoms {
	list := make([]Atom, len(a.list))
	copy(list, a.list)
	return atoms{list: list}
}
