// Package topology provides the in-memory molecular topology model.
//
// A [Topology] tracks which atoms exist, which pairs of atoms are bonded,
// the angles and dihedrals implied by chains of bonds, and how atoms group
// into residues:
//
//   - [Atom]: a named, typed atom addressed by its index
//   - [Bond]: an unordered pair of distinct atoms
//   - [Angle]: two bonds sharing a central atom
//   - [Dihedral]: three consecutive bonds
//   - [Residue]: a named, disjoint group of atoms
//
// Angles and dihedrals are derived data. They are updated incrementally as
// bonds are added and removed, and are listed in the order they were
// discovered.
//
// # Example
//
//	top := topology.New()
//	o := top.AddAtom(topology.NewAtom("O"))
//	h1 := top.AddAtom(topology.NewAtom("H"))
//	h2 := top.AddAtom(topology.NewAtom("H"))
//	_ = top.AddBond(o, h1)
//	_ = top.AddBond(o, h2)
//	top.Angles() // [Angle(1, 0, 2)]
//
// # Indices
//
// Atom indices always form the contiguous range [0, NAtoms()). Removing an
// atom shifts every higher index down by one, and every bond, angle,
// dihedral and residue is relabeled to follow.
//
// # Thread Safety
//
// Topology instances are NOT thread-safe. Concurrent mutation, or mutation
// concurrent with reads, must be synchronized by the caller.
package topology
