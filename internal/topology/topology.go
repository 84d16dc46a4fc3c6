package topology

import (
	"io"
	"log/slog"
	"slices"
)

// Topology owns the atoms, the bond graph and the residues of a system. It
// is the only mutation entry point; every method either applies its change
// completely or returns an error and leaves the topology untouched.
type Topology struct {
	atoms        atoms
	connectivity *connectivity
	residues     *residues
	logger       *slog.Logger
}

type Option func(*Topology)

// WithLogger sets the logger used to trace mutations at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Topology) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func New(opts ...Option) *Topology {
	t := &Topology{
		connectivity: newConnectivity(),
		residues:     newResidues(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddAtom appends atom and returns its index.
func (t *Topology) AddAtom(atom Atom) int {
	index := t.atoms.add(atom)
	t.logger.Debug("atom added", "index", index, "name", atom.Name)
	return index
}

// Atom returns the atom at index i. The pointer stays valid until the next
// structural change (AddAtom, Remove, Resize).
func (t *Topology) Atom(i int) (*Atom, error) {
	return t.atoms.get(i)
}

func (t *Topology) NAtoms() int {
	return t.atoms.len()
}

func (t *Topology) checkAtom(i int) error {
	return outOfBounds("atom", i, t.atoms.len())
}

// AddBond bonds atoms i and j. Bonding an already bonded pair is a no-op.
func (t *Topology) AddBond(i, j int) error {
	if err := t.checkAtom(i); err != nil {
		return err
	}
	if err := t.checkAtom(j); err != nil {
		return err
	}
	added, err := t.connectivity.addBond(i, j)
	if err != nil {
		return err
	}
	if added {
		t.logger.Debug("bond added", "i", i, "j", j,
			"angles", len(t.connectivity.angles),
			"dihedrals", len(t.connectivity.dihedrals),
		)
	}
	return nil
}

// RemoveBond removes the bond between i and j, together with the angles and
// dihedrals built on it. Removing a bond that does not exist is a no-op.
func (t *Topology) RemoveBond(i, j int) error {
	if err := t.checkAtom(i); err != nil {
		return err
	}
	if err := t.checkAtom(j); err != nil {
		return err
	}
	if t.connectivity.removeBond(i, j) {
		t.logger.Debug("bond removed", "i", i, "j", j)
	}
	return nil
}

// Bonds returns the bonds in the order they were added.
func (t *Topology) Bonds() []Bond {
	return slices.Clone(t.connectivity.bonds)
}

// Angles returns the angles in the order they were discovered.
func (t *Topology) Angles() []Angle {
	return slices.Clone(t.connectivity.angles)
}

// Dihedrals returns the dihedrals in the order they were discovered.
func (t *Topology) Dihedrals() []Dihedral {
	return slices.Clone(t.connectivity.dihedrals)
}

// Neighbors returns the atoms bonded to atom i, in bond order.
func (t *Topology) Neighbors(i int) ([]int, error) {
	if err := t.checkAtom(i); err != nil {
		return nil, err
	}
	return slices.Clone(t.connectivity.neighbors[i]), nil
}

// Remove deletes atom i. Bonds, angles and dihedrals involving it are
// removed, residues lose it, and every index above i is shifted down by one.
func (t *Topology) Remove(i int) error {
	if err := t.checkAtom(i); err != nil {
		return err
	}
	t.connectivity.removeAtom(i)
	t.atoms.remove(i)
	t.residues.removeAtom(i)
	t.logger.Debug("atom removed", "index", i, "natoms", t.atoms.len())
	return nil
}

// Resize truncates or grows the topology to n atoms without renumbering.
// It fails if a bond references an atom at or above n; such bonds must be
// removed first. Residue members at or above n are dropped.
func (t *Topology) Resize(n int) error {
	if n < 0 {
		return invalidf("can not resize to a negative size (%d)", n)
	}
	if highest := t.connectivity.maxIndex(); highest >= n {
		return invalidf("can not resize the topology to %d atoms: atom %d is still bonded", n, highest)
	}
	t.atoms.resize(n)
	t.residues.truncate(n)
	t.logger.Debug("topology resized", "natoms", n)
	return nil
}

// AddResidue stores a copy of r. It fails if a member atom does not exist or
// already belongs to another residue.
func (t *Topology) AddResidue(r Residue) error {
	for _, i := range r.atoms {
		if err := outOfBounds("residue atom", i, t.atoms.len()); err != nil {
			return err
		}
	}
	if err := t.residues.add(r); err != nil {
		return err
	}
	t.logger.Debug("residue added", "name", r.name, "size", len(r.atoms))
	return nil
}

// Residue returns the residue containing atom i. An atom outside of every
// residue, or outside of the topology, is not an error: ok is false.
func (t *Topology) Residue(i int) (Residue, bool) {
	return t.residues.forAtom(i)
}

// Residues returns the residues in the order they were added.
func (t *Topology) Residues() []Residue {
	return t.residues.all()
}

// AreLinked reports whether a and b are the same residue or are joined by at
// least one bond. Only direct bonds between the two residues count.
func (t *Topology) AreLinked(a, b Residue) bool {
	if a.Equal(b) {
		return true
	}
	for _, bond := range t.connectivity.bonds {
		i, j := bond.data[0], bond.data[1]
		if (a.Contains(i) && b.Contains(j)) || (a.Contains(j) && b.Contains(i)) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing nothing with t but the logger.
func (t *Topology) Clone() *Topology {
	return &Topology{
		atoms:        t.atoms.clone(),
		connectivity: t.connectivity.clone(),
		residues:     t.residues.clone(),
		logger:       t.logger,
	}
}
