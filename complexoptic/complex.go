package complexoptic

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Complex is the value Re + Im·i.
type Complex[T constraints.Float] struct {
	Re, Im T
}

// New creates a complex value from its parts.
func New[T constraints.Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Unit returns the complex value of magnitude 1 and angle theta.
func Unit[T constraints.Float](theta T) Complex[T] {
	sin, cos := math.Sincos(float64(theta))
	return Complex[T]{Re: T(cos), Im: T(sin)}
}

// FromComplex128 converts a built-in complex128.
func FromComplex128(z complex128) Complex[float64] {
	return Complex[float64]{Re: real(z), Im: imag(z)}
}

// FromComplex64 converts a built-in complex64.
func FromComplex64(z complex64) Complex[float32] {
	return Complex[float32]{Re: real(z), Im: imag(z)}
}

// Complex128 converts c to a built-in complex128.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.Re), float64(c.Im))
}

// Complex64 converts c to a built-in complex64.
func (c Complex[T]) Complex64() complex64 {
	return complex(float32(c.Re), float32(c.Im))
}

// Add returns c + d.
func (c Complex[T]) Add(d Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re + d.Re, Im: c.Im + d.Im}
}

// Sub returns c - d.
func (c Complex[T]) Sub(d Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re - d.Re, Im: c.Im - d.Im}
}

// Neg returns -c.
func (c Complex[T]) Neg() Complex[T] {
	return Complex[T]{Re: -c.Re, Im: -c.Im}
}

// Scale multiplies both parts by the real factor k.
func (c Complex[T]) Scale(k T) Complex[T] {
	return Complex[T]{Re: c.Re * k, Im: c.Im * k}
}

// Mul returns c · d.
func (c Complex[T]) Mul(d Complex[T]) Complex[T] {
	return Complex[T]{
		Re: c.Re*d.Re - c.Im*d.Im,
		Im: c.Re*d.Im + c.Im*d.Re,
	}
}

// ApproxEqual reports whether both parts of c and d differ by at most tol.
// Values with NaN parts are never equal.
func (c Complex[T]) ApproxEqual(d Complex[T], tol float64) bool {
	return within(float64(c.Re), float64(d.Re), tol) &&
		within(float64(c.Im), float64(d.Im), tol)
}

func within(a, b, tol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= tol
}

func magnitudeOf[T constraints.Float](c Complex[T]) T {
	return T(math.Hypot(float64(c.Re), float64(c.Im)))
}

// phaseOf follows atan2, except that the zero value has phase 0 regardless of
// the signs of its zeros, and an angle that rounds to -π in T is reported as
// π.
func phaseOf[T constraints.Float](c Complex[T]) T {
	if c.Re == 0 && c.Im == 0 {
		return 0
	}

	phase := T(math.Atan2(float64(c.Im), float64(c.Re)))
	if phase <= T(-math.Pi) {
		phase = T(math.Pi)
	}

	return phase
}
