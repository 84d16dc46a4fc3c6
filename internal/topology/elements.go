package topology

import (
	"fmt"
	"slices"
)

// Bond is an unordered pair of distinct atoms, stored as (min, max).
type Bond struct {
	data [2]int
}

// NewBond returns the canonical bond between i and j.
func NewBond(i, j int) (Bond, error) {
	if i == j {
		return Bond{}, invalidf("can not have a bond between an atom and itself (%d)", i)
	}
	return Bond{data: [2]int{min(i, j), max(i, j)}}, nil
}

// At returns the k-th atom of the bond, k in {0, 1}.
func (b Bond) At(k int) (int, error) {
	if err := outOfBounds("bond element", k, 2); err != nil {
		return 0, err
	}
	return b.data[k], nil
}

// Contains reports whether atom i is one of the bond's endpoints.
func (b Bond) Contains(i int) bool {
	return b.data[0] == i || b.data[1] == i
}

// Other returns the endpoint that is not i.
func (b Bond) Other(i int) int {
	if b.data[0] == i {
		return b.data[1]
	}
	return b.data[0]
}

func (b Bond) Compare(other Bond) int {
	return slices.Compare(b.data[:], other.data[:])
}

func (b Bond) Less(other Bond) bool {
	return b.Compare(other) < 0
}

func (b Bond) String() string {
	return fmt.Sprintf("Bond(%d, %d)", b.data[0], b.data[1])
}

// Angle is two bonds sharing a central atom: (outer, center, outer). The
// smaller outer atom always comes first.
type Angle struct {
	data [3]int
}

// NewAngle returns the canonical angle i-j-k centered on j.
func NewAngle(i, j, k int) (Angle, error) {
	if i == j || i == k || j == k {
		return Angle{}, invalidf("can not have the same atom twice in an angle (%d, %d, %d)", i, j, k)
	}
	return Angle{data: [3]int{min(i, k), j, max(i, k)}}, nil
}

// At returns the k-th atom of the angle, k in {0, 1, 2}.
func (a Angle) At(k int) (int, error) {
	if err := outOfBounds("angle element", k, 3); err != nil {
		return 0, err
	}
	return a.data[k], nil
}

// Center returns the central atom.
func (a Angle) Center() int {
	return a.data[1]
}

// uses reports whether the bond b is one of the two bonds of the angle.
func (a Angle) uses(b Bond) bool {
	if !b.Contains(a.data[1]) {
		return false
	}
	other := b.Other(a.data[1])
	return other == a.data[0] || other == a.data[2]
}

func (a Angle) Compare(other Angle) int {
	return slices.Compare(a.data[:], other.data[:])
}

func (a Angle) Less(other Angle) bool {
	return a.Compare(other) < 0
}

func (a Angle) String() string {
	return fmt.Sprintf("Angle(%d, %d, %d)", a.data[0], a.data[1], a.data[2])
}

// Dihedral is three consecutive bonds i-j, j-k, k-m. It is stored as the
// lexicographically smaller of (i, j, k, m) and (m, k, j, i).
type Dihedral struct {
	data [4]int
}

// NewDihedral returns the canonical dihedral i-j-k-m.
func NewDihedral(i, j, k, m int) (Dihedral, error) {
	if i == j || i == k || i == m || j == k || j == m || k == m {
		return Dihedral{}, invalidf("can not have the same atom twice in a dihedral (%d, %d, %d, %d)", i, j, k, m)
	}
	forward := [4]int{i, j, k, m}
	reverse := [4]int{m, k, j, i}
	if slices.Compare(reverse[:], forward[:]) < 0 {
		return Dihedral{data: reverse}, nil
	}
	return Dihedral{data: forward}, nil
}

// At returns the k-th atom of the dihedral, k in {0, 1, 2, 3}.
func (d Dihedral) At(k int) (int, error) {
	if err := outOfBounds("dihedral element", k, 4); err != nil {
		return 0, err
	}
	return d.data[k], nil
}

func (d Dihedral) uses(b Bond) bool {
	for k := 0; k < 3; k++ {
		lo, hi := min(d.data[k], d.data[k+1]), max(d.data[k], d.data[k+1])
		if lo == b.data[0] && hi == b.data[1] {
			return true
		}
	}
	return false
}

func (d Dihedral) Compare(other Dihedral) int {
	return slices.Compare(d.data[:], other.data[:])
}

func (d Dihedral) Less(other Dihedral) bool {
	return d.Compare(other) < 0
}

func (d Dihedral) String() string {
	return fmt.Sprintf("Dihedral(%d, %d, %d, %d)", d.data[0], d.data[1], d.data[2], d.data[3])
}

// shift returns v relabeled after atom removed was deleted.
func shift(v, removed int) int {
	if v > removed {
		return v - 1
	}
	return v
}
