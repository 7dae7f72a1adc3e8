package complexoptic

import (
	"github.com/sarchlab/optics/optic"
	"golang.org/x/exp/constraints"
)

// Both visits the real part and then the imaginary part.
type Both[T constraints.Float] struct{}

// Name returns "both".
func (Both[T]) Name() string {
	return "both"
}

// Split returns the real and the imaginary part.
func (Both[T]) Split(c Complex[T]) (re, im T) {
	return c.Re, c.Im
}

// Join builds a value from a real and an imaginary part.
func (Both[T]) Join(_ Complex[T], re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Map applies f to the real part and then to the imaginary part.
func (b Both[T]) Map(c Complex[T], f func(T) T) Complex[T] {
	return optic.MapPair[Complex[T], T](b, c, f)
}

// Parts returns the real and the imaginary part, in that order.
func (b Both[T]) Parts(c Complex[T]) []T {
	return optic.ToSlice[Complex[T], T](b, c)
}

// TraverseBoth runs f on the real part and then on the imaginary part, and
// combines the two effects into the effect of the rebuilt value.
func TraverseBoth[T constraints.Float, F, G any](
	c Complex[T],
	f func(T) F,
	combiner optic.Combiner[T, Complex[T], F, G],
) G {
	return optic.TraversePair[Complex[T], T, F, G](Both[T]{}, c, f, combiner)
}
