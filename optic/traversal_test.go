package optic

import (
	"errors"
	"fmt"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("PairTraversal", func() {
	var (
		mockCtrl *gomock.Controller
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should visit first then second", func() {
		var visited []int

		TraversePair[point, int, int, point](
			coords, point{3, 4},
			func(v int) int {
				visited = append(visited, v)
				return v
			},
			Identity[int, point]{},
		)

		Expect(visited).To(Equal([]int{3, 4}))
	})

	It("should hand the effects to the combiner in visiting order", func() {
		combiner := NewMockCombiner[int, point, string, string](mockCtrl)
		combiner.EXPECT().
			Combine("3", "4", gomock.Any()).
			DoAndReturn(func(first, second string, join func(int, int) point) string {
				p := join(30, 40)
				return fmt.Sprintf("%s+%s=%v", first, second, p)
			})

		got := TraversePair[point, int, string, string](
			coords, point{3, 4}, strconv.Itoa, combiner)

		Expect(got).To(Equal("3+4={30 40}"))
	})

	It("should split once and join through the traversal", func() {
		pair := NewMockPairTraversal[point, int](mockCtrl)
		gomock.InOrder(
			pair.EXPECT().Split(point{1, 2}).Return(1, 2),
			pair.EXPECT().Join(point{1, 2}, 2, 3).Return(point{2, 3}),
		)

		got := MapPair[point, int](pair, point{1, 2}, func(v int) int {
			return v + 1
		})

		Expect(got).To(Equal(point{2, 3}))
	})

	It("should map both elements", func() {
		got := MapPair[point, int](coords, point{3, 4}, func(v int) int {
			return -v
		})

		Expect(got).To(Equal(point{-3, -4}))
	})

	It("should list elements in order", func() {
		Expect(ToSlice[point, int](coords, point{3, 4})).To(Equal([]int{3, 4}))
	})

	It("should fold from the left", func() {
		got := FoldPair[point, int, string](coords, point{3, 4}, "",
			func(acc string, v int) string {
				return acc + strconv.Itoa(v) + ";"
			})

		Expect(got).To(Equal("3;4;"))
	})

	It("should fail with the first error in visiting order", func() {
		errX := errors.New("x")
		errY := errors.New("y")

		got := TraversePair[point, int, Result[int], Result[point]](
			coords, point{-1, -2},
			func(v int) Result[int] {
				if v == -1 {
					return Failure[int](errX)
				}
				return Failure[int](errY)
			},
			ResultCombiner[int, point]{},
		)

		Expect(got.Err).To(MatchError(errX))
	})

	It("should succeed when every element succeeds", func() {
		got := TraversePair[point, int, Result[int], Result[point]](
			coords, point{1, 2},
			func(v int) Result[int] { return Ok(v * 2) },
			ResultCombiner[int, point]{},
		)

		Expect(got.Err).NotTo(HaveOccurred())
		Expect(got.Value).To(Equal(point{2, 4}))
	})

	It("should produce every combination with lists", func() {
		got := TraversePair[point, int, []int, []point](
			coords, point{1, 2},
			func(v int) []int { return []int{v, -v} },
			ListCombiner[int, point]{},
		)

		Expect(got).To(Equal([]point{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}}))
	})

	It("should traverse through an iso", func() {
		swapped := IsoThenPair[point, point, int](swap, coords)

		Expect(ToSlice[point, int](swapped, point{1, 2})).To(
			Equal([]int{2, 1}))
		Expect(MapPair[point, int](swapped, point{1, 2}, func(v int) int {
			return v * 10
		})).To(Equal(point{10, 20}))
	})

	It("should report its name", func() {
		Expect(coords.Name()).To(Equal("coords"))
	})

	It("should panic without a join", func() {
		Expect(func() {
			NewPair[point, int](func(p point) (int, int) { return p.x, p.y }, nil)
		}).To(Panic())
	})
})
