package complexoptic

import "golang.org/x/exp/constraints"

// Magnitude focuses on the distance from the origin, keeping the direction
// when it can.
//
// Setting a negative magnitude flips the value through the origin; reading it
// back gives the absolute value.
type Magnitude[T constraints.Float] struct{}

// Name returns "magnitude".
func (Magnitude[T]) Name() string {
	return "magnitude"
}

// Get returns the magnitude of c.
func (Magnitude[T]) Get(c Complex[T]) T {
	return magnitudeOf(c)
}

// Set scales c so that its magnitude becomes r. The zero value has no
// direction, so it is taken as phase 0 and the result is (r, 0).
func (Magnitude[T]) Set(c Complex[T], r T) Complex[T] {
	current := magnitudeOf(c)
	if current == 0 {
		return Complex[T]{Re: r}
	}

	return c.Scale(r / current)
}
