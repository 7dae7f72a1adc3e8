package complexoptic

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Polar is a complex value written as magnitude and phase.
//
// Forms produced by PolarIso have a non-negative magnitude and a phase in
// (-π, π]. Forms built by callers may hold anything.
type Polar[T constraints.Float] struct {
	Magnitude T
	Phase     T
}

// ApproxEqual compares both fields of the forms within tol. Phases are compared
// as plain numbers, so π and -π are far apart.
func (p Polar[T]) ApproxEqual(q Polar[T], tol float64) bool {
	return within(float64(p.Magnitude), float64(q.Magnitude), tol) &&
		within(float64(p.Phase), float64(q.Phase), tol)
}

// PolarIso converts between the rectangular and the polar form.
//
// Backward(Forward(c)) gives back c up to rounding. Forward(Backward(p)) gives
// back p only if p has a positive magnitude and a phase in (-π, π].
type PolarIso[T constraints.Float] struct{}

// Name returns "polar".
func (PolarIso[T]) Name() string {
	return "polar"
}

// Forward returns the magnitude and the phase of c.
func (PolarIso[T]) Forward(c Complex[T]) Polar[T] {
	return Polar[T]{Magnitude: magnitudeOf(c), Phase: phaseOf(c)}
}

// Backward evaluates m·cos(φ) + m·sin(φ)·i for any m and φ.
func (PolarIso[T]) Backward(p Polar[T]) Complex[T] {
	m := float64(p.Magnitude)
	sin, cos := math.Sincos(float64(p.Phase))

	return Complex[T]{Re: T(m * cos), Im: T(m * sin)}
}
