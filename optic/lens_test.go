package optic

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/optics/naming"
)

var _ = Describe("Lens", func() {
	It("should get and set the focus", func() {
		p := point{x: 1, y: 2}

		Expect(xLens.Get(p)).To(Equal(1))
		Expect(xLens.Set(p, 5)).To(Equal(point{x: 5, y: 2}))
		Expect(p).To(Equal(point{x: 1, y: 2}))
	})

	It("should report its name", func() {
		Expect(xLens.Name()).To(Equal("x"))
		Expect(fromLens.Name()).To(BeEmpty())
	})

	It("should be named through the naming package", func() {
		var named naming.Named = xLens

		Expect(named.Name()).To(Equal("x"))
		Expect(naming.NameOf(swap.Named("swap"))).To(Equal("swap"))
		Expect(naming.NameOf(coords)).To(Equal("coords"))
	})

	It("should modify the focus with Over", func() {
		p := Over[point, int](xLens, point{x: 1, y: 2}, func(x int) int {
			return x * 10
		})

		Expect(p).To(Equal(point{x: 10, y: 2}))
	})

	It("should compose lenses", func() {
		fromX := Compose[segment, point, int](fromLens, xLens)
		s := segment{from: point{1, 2}, to: point{3, 4}}

		Expect(fromX.Get(s)).To(Equal(1))
		Expect(fromX.Set(s, 7)).To(Equal(
			segment{from: point{7, 2}, to: point{3, 4}}))
	})

	It("should panic without a setter", func() {
		Expect(func() {
			NewLens[point, int](func(p point) int { return p.x }, nil)
		}).To(Panic())
	})
})
