package complexoptic

import "golang.org/x/exp/constraints"

// Conjugate reflects values across the real axis. It is its own inverse.
type Conjugate[T constraints.Float] struct{}

// Name returns "conjugate".
func (Conjugate[T]) Name() string {
	return "conjugate"
}

// Forward negates the imaginary part.
func (Conjugate[T]) Forward(c Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re, Im: -c.Im}
}

// Backward is the same as Forward.
func (k Conjugate[T]) Backward(c Complex[T]) Complex[T] {
	return k.Forward(c)
}
