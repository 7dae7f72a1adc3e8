package complexoptic

import "golang.org/x/exp/constraints"

// Phase focuses on the angle from the positive real axis, keeping the
// magnitude.
//
// Angles outside (-π, π] are accepted by Set but read back normalized. The
// zero value has no direction and stays zero whatever phase is set.
type Phase[T constraints.Float] struct{}

// Name returns "phase".
func (Phase[T]) Name() string {
	return "phase"
}

// Get returns the phase of c, in (-π, π]. The zero value has phase 0.
func (Phase[T]) Get(c Complex[T]) T {
	return phaseOf(c)
}

// Set rotates c by theta minus its current phase.
func (Phase[T]) Set(c Complex[T], theta T) Complex[T] {
	delta := float64(theta) - float64(phaseOf(c))
	return c.Mul(Unit(T(delta)))
}
