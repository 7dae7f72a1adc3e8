// Package complexoptic provides accessors over complex values.
//
// RealPart and ImagPart are lawful lenses, and Conjugate is an involution.
// PolarIso, Magnitude and Phase are not lawful everywhere:
//
//   - PolarIso.Backward accepts any magnitude and any phase, but
//     PolarIso.Forward only produces non-negative magnitudes and phases in
//     (-π, π]. A negative magnitude comes back positive with the phase moved
//     by π, and a zero magnitude comes back with phase 0.
//   - Magnitude.Set with a negative magnitude flips the direction, so the
//     magnitude read afterwards is the absolute value.
//   - Phase.Set with an angle outside (-π, π] rotates to the equivalent angle,
//     and the phase read afterwards is the normalized one.
//
// Both visits the real and then the imaginary part.
//
// Every accessor is a zero-size value with no state. Set never modifies its
// argument.
package complexoptic
