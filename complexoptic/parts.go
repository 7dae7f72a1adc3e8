package complexoptic

import "golang.org/x/exp/constraints"

// RealPart focuses on the real part.
type RealPart[T constraints.Float] struct{}

// Name returns "realPart".
func (RealPart[T]) Name() string {
	return "realPart"
}

// Get returns the real part of c.
func (RealPart[T]) Get(c Complex[T]) T {
	return c.Re
}

// Set returns c with its real part replaced.
func (RealPart[T]) Set(c Complex[T], re T) Complex[T] {
	c.Re = re
	return c
}

// ImagPart focuses on the imaginary part.
type ImagPart[T constraints.Float] struct{}

// Name returns "imagPart".
func (ImagPart[T]) Name() string {
	return "imagPart"
}

// Get returns the imaginary part of c.
func (ImagPart[T]) Get(c Complex[T]) T {
	return c.Im
}

// Set returns c with its imaginary part replaced.
func (ImagPart[T]) Set(c Complex[T], im T) Complex[T] {
	c.Im = im
	return c
}
