package complexoptic

import "github.com/sarchlab/optics/optic"

// Complex128Iso converts between Complex[float64] and the built-in complex128.
func Complex128Iso() optic.FuncIso[Complex[float64], complex128] {
	return optic.NewIso(
		Complex[float64].Complex128,
		FromComplex128,
	).Named("complex128")
}

var (
	_ optic.Lens[Complex[float64], float64]          = RealPart[float64]{}
	_ optic.Lens[Complex[float64], float64]          = ImagPart[float64]{}
	_ optic.Lens[Complex[float64], float64]          = Magnitude[float64]{}
	_ optic.Lens[Complex[float64], float64]          = Phase[float64]{}
	_ optic.Iso[Complex[float64], Polar[float64]]    = PolarIso[float64]{}
	_ optic.Iso[Complex[float64], Complex[float64]]  = Conjugate[float64]{}
	_ optic.PairTraversal[Complex[float64], float64] = Both[float64]{}
	_ optic.Lens[Complex[float32], float32]          = Magnitude[float32]{}
	_ optic.PairTraversal[Complex[float32], float32] = Both[float32]{}
)
