package topology_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/moltop/internal/topology"
)

func withAtoms(n int, name string) *topology.Topology {
	top := topology.New()
	for i := 0; i < n; i++ {
		top.AddAtom(topology.NewAtom(name))
	}
	return top
}

var _ = Describe("Topology", func() {
	It("stores atoms and bonds", func() {
		top := topology.New()

		Expect(top.AddAtom(topology.NewAtom("H"))).To(Equal(0))
		atom, err := top.Atom(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(atom.Name).To(Equal("H"))
		Expect(atom.Type).To(Equal("H"))

		Expect(top.AddAtom(topology.NewAtom("H"))).To(Equal(1))
		atom, err = top.Atom(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(atom.Name).To(Equal("H"))

		Expect(top.AddBond(0, 1)).To(Succeed())
		Expect(top.Bonds()).To(Equal([]topology.Bond{bond(0, 1)}))
	})

	It("lets callers edit atoms in place", func() {
		top := withAtoms(1, "C")
		atom, err := top.Atom(0)
		Expect(err).NotTo(HaveOccurred())
		atom.Type = "CT"

		atom, err = top.Atom(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(atom.Type).To(Equal("CT"))
	})

	Describe("angle detection", func() {
		It("appends angles in discovery order", func() {
			top := withAtoms(30, "")
			Expect(top.Angles()).To(BeEmpty())

			Expect(top.AddBond(0, 1)).To(Succeed())
			Expect(top.AddBond(1, 2)).To(Succeed())
			angles := []topology.Angle{angle(0, 1, 2)}
			Expect(top.Angles()).To(Equal(angles))

			Expect(top.AddBond(17, 13)).To(Succeed())
			Expect(top.AddBond(19, 17)).To(Succeed())
			angles = append(angles, angle(13, 17, 19))
			Expect(top.AddBond(22, 21)).To(Succeed())
			Expect(top.AddBond(26, 21)).To(Succeed())
			angles = append(angles, angle(22, 21, 26))
			Expect(top.Angles()).To(Equal(angles))
			Expect(top.Dihedrals()).To(BeEmpty())
		})
	})

	Describe("dihedral detection", func() {
		It("appends dihedrals in discovery order", func() {
			top := withAtoms(30, "")
			Expect(top.Dihedrals()).To(BeEmpty())

			Expect(top.AddBond(0, 1)).To(Succeed())
			Expect(top.AddBond(1, 2)).To(Succeed())
			Expect(top.AddBond(2, 3)).To(Succeed())
			dihedrals := []topology.Dihedral{dihedral(0, 1, 2, 3)}
			Expect(top.Dihedrals()).To(Equal(dihedrals))

			Expect(top.AddBond(12, 19)).To(Succeed())
			Expect(top.AddBond(19, 18)).To(Succeed())
			Expect(top.AddBond(16, 18)).To(Succeed())
			dihedrals = append(dihedrals, dihedral(12, 19, 18, 16))
			Expect(top.Dihedrals()).To(Equal(dihedrals))
		})

		It("finds dihedrals around a new central bond", func() {
			top := withAtoms(4, "C")
			Expect(top.AddBond(0, 1)).To(Succeed())
			Expect(top.AddBond(2, 3)).To(Succeed())
			Expect(top.AddBond(1, 2)).To(Succeed())

			Expect(top.Angles()).To(Equal([]topology.Angle{angle(0, 1, 2), angle(1, 2, 3)}))
			Expect(top.Dihedrals()).To(Equal([]topology.Dihedral{dihedral(0, 1, 2, 3)}))
		})
	})

	Describe("bounds checking", func() {
		var top *topology.Topology

		BeforeEach(func() {
			top = withAtoms(3, "")
		})

		It("fails on atom access", func() {
			_, err := top.Atom(25)
			Expect(err).To(MatchError(topology.ErrOutOfBounds))
			_, err = top.Atom(-1)
			Expect(err).To(MatchError(topology.ErrOutOfBounds))
		})

		It("fails on bond mutation", func() {
			Expect(top.AddBond(0, 25)).To(MatchError(topology.ErrOutOfBounds))
			Expect(top.AddBond(25, 0)).To(MatchError(topology.ErrOutOfBounds))
			Expect(top.RemoveBond(0, 25)).To(MatchError(topology.ErrOutOfBounds))
			Expect(top.RemoveBond(25, 0)).To(MatchError(topology.ErrOutOfBounds))
		})

		It("fails on atom removal", func() {
			Expect(top.Remove(25)).To(MatchError(topology.ErrOutOfBounds))
			Expect(top.NAtoms()).To(Equal(3))
		})

		It("reports the failing index", func() {
			err := top.AddBond(0, 25)
			var indexErr *topology.IndexError
			Expect(err).To(BeAssignableToTypeOf(indexErr))
			Expect(err.(*topology.IndexError).Index).To(Equal(25))
			Expect(err.(*topology.IndexError).Size).To(Equal(3))
		})

		It("rejects self bonds", func() {
			Expect(top.AddBond(1, 1)).To(MatchError(topology.ErrInvalid))
			Expect(top.Bonds()).To(BeEmpty())
		})
	})

	Describe("adding and removing items", func() {
		var top *topology.Topology

		BeforeEach(func() {
			top = topology.New()
			for i := 0; i < 4; i++ {
				top.AddAtom(topology.NewAtom("H"))
			}
			top.AddAtom(topology.NewAtom("O"))
			top.AddAtom(topology.NewAtom("O"))

			Expect(top.AddBond(0, 4)).To(Succeed())
			Expect(top.AddBond(1, 4)).To(Succeed())
			Expect(top.AddBond(2, 5)).To(Succeed())
			Expect(top.AddBond(3, 5)).To(Succeed())
		})

		It("derives angles but no dihedrals for two waters", func() {
			Expect(top.Bonds()).To(Equal([]topology.Bond{bond(0, 4), bond(1, 4), bond(2, 5), bond(3, 5)}))
			Expect(top.Angles()).To(Equal([]topology.Angle{angle(0, 4, 1), angle(2, 5, 3)}))
			Expect(top.Dihedrals()).To(BeEmpty())
		})

		It("cascades atom removal", func() {
			top.AddAtom(topology.NewAtom("O"))
			Expect(top.AddBond(3, 6)).To(Succeed())
			Expect(top.Bonds()).To(HaveLen(5))
			Expect(top.Dihedrals()).To(Equal([]topology.Dihedral{dihedral(2, 5, 3, 6)}))

			Expect(top.Remove(6)).To(Succeed())
			Expect(top.NAtoms()).To(Equal(6))
			Expect(top.Bonds()).To(HaveLen(4))
			Expect(top.Angles()).To(Equal([]topology.Angle{angle(0, 4, 1), angle(2, 5, 3)}))
			Expect(top.Dihedrals()).To(BeEmpty())
		})

		It("guards resize against orphaned bonds", func() {
			Expect(top.Resize(5)).To(MatchError(topology.ErrInvalid))
			Expect(top.NAtoms()).To(Equal(6))

			Expect(top.RemoveBond(2, 5)).To(Succeed())
			Expect(top.RemoveBond(3, 5)).To(Succeed())
			Expect(top.NAtoms()).To(Equal(6))
			Expect(top.Bonds()).To(HaveLen(2))
			Expect(top.Angles()).To(Equal([]topology.Angle{angle(0, 4, 1)}))

			Expect(top.Resize(5)).To(Succeed())
			Expect(top.NAtoms()).To(Equal(5))
		})

		It("rejects a negative size", func() {
			Expect(top.Resize(-1)).To(MatchError(topology.ErrInvalid))
			Expect(top.NAtoms()).To(Equal(6))
		})

		It("grows with empty atoms", func() {
			Expect(top.Resize(8)).To(Succeed())
			Expect(top.NAtoms()).To(Equal(8))
			atom, err := top.Atom(7)
			Expect(err).NotTo(HaveOccurred())
			Expect(*atom).To(Equal(topology.Atom{}))
			Expect(top.Bonds()).To(HaveLen(4))
		})

		It("treats a duplicate bond as a no-op", func() {
			Expect(top.AddBond(4, 0)).To(Succeed())
			Expect(top.Bonds()).To(HaveLen(4))
			Expect(top.Angles()).To(HaveLen(2))
		})

		It("ignores removal of a missing bond", func() {
			Expect(top.RemoveBond(0, 1)).To(Succeed())
			Expect(top.Bonds()).To(HaveLen(4))
		})

		It("renumbers everything above a removed atom", func() {
			Expect(top.Remove(0)).To(Succeed())
			Expect(top.NAtoms()).To(Equal(5))
			Expect(top.Bonds()).To(Equal([]topology.Bond{bond(0, 3), bond(1, 4), bond(2, 4)}))
			Expect(top.Angles()).To(Equal([]topology.Angle{angle(1, 4, 2)}))

			atom, err := top.Atom(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(atom.Name).To(Equal("O"))
		})

		It("lists the neighbours of an atom", func() {
			Expect(top.Neighbors(4)).To(Equal([]int{0, 1}))
			Expect(top.Neighbors(2)).To(Equal([]int{5}))
			_, err := top.Neighbors(6)
			Expect(err).To(MatchError(topology.ErrOutOfBounds))
		})
	})

	Describe("residues", func() {
		var top *topology.Topology

		BeforeEach(func() {
			top = withAtoms(10, "X")
			for _, members := range [][]int{{2, 3, 6}, {0, 1, 9}, {4, 5, 8}} {
				residue := topology.NewResidue("X")
				for _, i := range members {
					residue.AddAtom(i)
				}
				Expect(top.AddResidue(residue)).To(Succeed())
			}
		})

		It("keeps residues disjoint", func() {
			Expect(top.Residues()).To(HaveLen(3))

			residue := topology.NewResidue("X")
			residue.AddAtom(2)
			Expect(top.AddResidue(residue)).To(MatchError(topology.ErrInvalid))
			Expect(top.Residues()).To(HaveLen(3))
		})

		It("rejects residues over missing atoms", func() {
			residue := topology.NewResidue("Y")
			residue.AddAtom(7)
			residue.AddAtom(12)
			Expect(top.AddResidue(residue)).To(MatchError(topology.ErrOutOfBounds))

			_, ok := top.Residue(7)
			Expect(ok).To(BeFalse())
		})

		It("finds residues by atom", func() {
			first, ok := top.Residue(0)
			Expect(ok).To(BeTrue())
			Expect(first.Atoms()).To(Equal([]int{0, 1, 9}))

			second, ok := top.Residue(2)
			Expect(ok).To(BeTrue())
			Expect(second.Atoms()).To(Equal([]int{2, 3, 6}))

			_, ok = top.Residue(7)
			Expect(ok).To(BeFalse())
			_, ok = top.Residue(42)
			Expect(ok).To(BeFalse())
		})

		It("links residues through bonds", func() {
			first, _ := top.Residue(0)
			second, _ := top.Residue(2)

			Expect(top.AreLinked(first, second)).To(BeFalse())
			Expect(top.AddBond(6, 9)).To(Succeed())
			Expect(top.AreLinked(first, second)).To(BeTrue())
			Expect(top.AreLinked(second, first)).To(BeTrue())

			second, _ = top.Residue(0)
			Expect(top.AreLinked(first, second)).To(BeTrue())
		})

		It("only counts direct bonds", func() {
			a, _ := top.Residue(2) // {2, 3, 6}
			b, _ := top.Residue(4) // {4, 5, 8}
			Expect(top.AddBond(6, 7)).To(Succeed())
			Expect(top.AddBond(7, 8)).To(Succeed())
			Expect(top.AreLinked(a, b)).To(BeFalse())
		})

		It("returns copies", func() {
			residue, _ := top.Residue(0)
			residue.AddAtom(7)
			Expect(top.Residues()[1].Atoms()).To(Equal([]int{0, 1, 9}))
		})

		It("follows atom removal", func() {
			Expect(top.Remove(1)).To(Succeed())
			residues := top.Residues()
			Expect(residues[0].Atoms()).To(Equal([]int{1, 2, 5}))
			Expect(residues[1].Atoms()).To(Equal([]int{0, 8}))
			Expect(residues[2].Atoms()).To(Equal([]int{3, 4, 7}))

			residue, ok := top.Residue(8)
			Expect(ok).To(BeTrue())
			Expect(residue.Atoms()).To(Equal([]int{0, 8}))
		})

		It("drops members beyond a resize", func() {
			Expect(top.Resize(6)).To(Succeed())
			residues := top.Residues()
			Expect(residues[0].Atoms()).To(Equal([]int{2, 3}))
			Expect(residues[1].Atoms()).To(Equal([]int{0, 1}))
			Expect(residues[2].Atoms()).To(Equal([]int{4, 5}))
		})
	})

	It("clones deeply", func() {
		top := withAtoms(3, "C")
		Expect(top.AddBond(0, 1)).To(Succeed())

		copied := top.Clone()
		Expect(copied.AddBond(1, 2)).To(Succeed())

		Expect(top.Bonds()).To(HaveLen(1))
		Expect(top.Angles()).To(BeEmpty())
		Expect(copied.Bonds()).To(HaveLen(2))
		Expect(copied.Angles()).To(Equal([]topology.Angle{angle(0, 1, 2)}))
	})
})
