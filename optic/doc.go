// Package optic defines the shapes shared by all accessors in this module.
//
// A Lens reads and rewrites exactly one part of a whole. An Iso converts
// between two representations of the same information. A PairTraversal visits
// the two parts of a fixed two-element structure under an effectful function,
// with a Combiner merging the two effects in visiting order.
//
// None of the shapes promise to be lawful. Lenses and isos that break the usual
// round-trip laws say so in their own documentation, and the lawcheck package
// can report exactly where.
package optic
