package topology_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/moltop/internal/topology"
)

func bond(i, j int) topology.Bond {
	GinkgoHelper()
	b, err := topology.NewBond(i, j)
	Expect(err).NotTo(HaveOccurred())
	return b
}

func angle(i, j, k int) topology.Angle {
	GinkgoHelper()
	a, err := topology.NewAngle(i, j, k)
	Expect(err).NotTo(HaveOccurred())
	return a
}

func dihedral(i, j, k, m int) topology.Dihedral {
	GinkgoHelper()
	d, err := topology.NewDihedral(i, j, k, m)
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("Connectivity elements", func() {
	Describe("Bond", func() {
		It("is unordered", func() {
			Expect(bond(2, 3)).To(Equal(bond(3, 2)))
		})

		It("exposes the canonical pair", func() {
			b := bond(45, 8)
			Expect(b.At(0)).To(Equal(8))
			Expect(b.At(1)).To(Equal(45))
		})

		It("rejects a bond between an atom and itself", func() {
			_, err := topology.NewBond(2, 2)
			Expect(err).To(MatchError(topology.ErrInvalid))
		})

		It("orders lexicographically", func() {
			Expect(bond(1, 3).Less(bond(2, 3))).To(BeTrue())
			Expect(bond(1, 2).Less(bond(1, 3))).To(BeTrue())
			Expect(bond(1, 2).Less(bond(1, 2))).To(BeFalse())

			Expect(bond(2, 3).Compare(bond(1, 3))).To(Equal(1))
			Expect(bond(1, 3).Compare(bond(1, 2))).To(Equal(1))
			Expect(bond(1, 2).Compare(bond(1, 2))).To(Equal(0))
		})

		It("fails out of bounds access", func() {
			_, err := bond(2, 1).At(2)
			Expect(err).To(MatchError(topology.ErrOutOfBounds))
			_, err = bond(2, 1).At(-1)
			Expect(err).To(MatchError(topology.ErrOutOfBounds))
		})
	})

	Describe("Angle", func() {
		It("is reflectable", func() {
			Expect(angle(2, 3, 4)).To(Equal(angle(4, 3, 2)))
		})

		It("exposes the canonical triple", func() {
			a := angle(4, 5, 8)
			Expect(a.At(0)).To(Equal(4))
			Expect(a.At(1)).To(Equal(5))
			Expect(a.At(2)).To(Equal(8))
			Expect(a.Center()).To(Equal(5))
		})

		DescribeTable("rejects repeated atoms",
			func(i, j, k int) {
				_, err := topology.NewAngle(i, j, k)
				Expect(err).To(MatchError(topology.ErrInvalid))
			},
			Entry("first two", 2, 2, 3),
			Entry("outer atoms", 2, 3, 2),
			Entry("last two", 3, 2, 2),
		)

		It("orders lexicographically", func() {
			Expect(angle(1, 3, 4).Less(angle(2, 3, 4))).To(BeTrue())
			Expect(angle(1, 2, 4).Less(angle(1, 3, 4))).To(BeTrue())
			Expect(angle(1, 2, 3).Less(angle(1, 2, 4))).To(BeTrue())
			Expect(angle(1, 2, 3).Less(angle(1, 2, 3))).To(BeFalse())

			Expect(angle(2, 3, 4).Compare(angle(1, 3, 4))).To(Equal(1))
			Expect(angle(1, 3, 4).Compare(angle(1, 2, 4))).To(Equal(1))
			Expect(angle(1, 2, 4).Compare(angle(1, 2, 3))).To(Equal(1))
		})

		It("fails out of bounds access", func() {
			_, err := angle(3, 2, 1).At(3)
			Expect(err).To(MatchError(topology.ErrOutOfBounds))
		})
	})

	Describe("Dihedral", func() {
		It("is reflectable", func() {
			Expect(dihedral(2, 3, 4, 5)).To(Equal(dihedral(5, 4, 3, 2)))
		})

		It("keeps the smaller direction", func() {
			d := dihedral(6, 7, 5, 8)
			Expect(d.At(0)).To(Equal(6))
			Expect(d.At(1)).To(Equal(7))
			Expect(d.At(2)).To(Equal(5))
			Expect(d.At(3)).To(Equal(8))

			Expect(dihedral(8, 5, 7, 6)).To(Equal(d))
		})

		DescribeTable("rejects repeated atoms",
			func(i, j, k, m int) {
				_, err := topology.NewDihedral(i, j, k, m)
				Expect(err).To(MatchError(topology.ErrInvalid))
			},
			Entry("0 and 1", 2, 2, 3, 4),
			Entry("1 and 2", 1, 2, 2, 4),
			Entry("2 and 3", 1, 2, 3, 3),
			Entry("0 and 2", 2, 3, 2, 4),
			Entry("1 and 3", 1, 2, 3, 2),
			Entry("0 and 3", 1, 2, 3, 1),
		)

		It("orders lexicographically", func() {
			Expect(dihedral(1, 3, 4, 5).Less(dihedral(2, 3, 4, 5))).To(BeTrue())
			Expect(dihedral(1, 2, 4, 5).Less(dihedral(1, 3, 4, 5))).To(BeTrue())
			Expect(dihedral(1, 2, 3, 5).Less(dihedral(1, 2, 4, 5))).To(BeTrue())
			Expect(dihedral(1, 2, 3, 4).Less(dihedral(1, 2, 3, 5))).To(BeTrue())
			Expect(dihedral(1, 2, 3, 4).Less(dihedral(1, 2, 3, 4))).To(BeFalse())

			Expect(dihedral(2, 3, 4, 5).Compare(dihedral(1, 3, 4, 5))).To(Equal(1))
			Expect(dihedral(1, 2, 3, 5).Compare(dihedral(1, 2, 3, 4))).To(Equal(1))
		})

		It("fails out of bounds access", func() {
			_, err := dihedral(2, 1, 4, 6).At(4)
			Expect(err).To(MatchError(topology.ErrOutOfBounds))
		})
	})
})
