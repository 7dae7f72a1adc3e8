package optic

import (
	"log"

	"github.com/sarchlab/optics/naming"
)

// An Iso converts between two representations of the same information.
//
// Forward and Backward are total. They are not required to be mutual inverses
// outside the canonical part of A.
type Iso[S, A any] interface {
	Forward(s S) A
	Backward(a A) S
}

// FuncIso is an Iso backed by a pair of functions.
type FuncIso[S, A any] struct {
	naming.NamedBase

	forward  func(S) A
	backward func(A) S
}

// NewIso creates an iso from its two directions.
func NewIso[S, A any](forward func(S) A, backward func(A) S) FuncIso[S, A] {
	if forward == nil || backward == nil {
		log.Panic("iso requires both directions")
	}

	return FuncIso[S, A]{forward: forward, backward: backward}
}

// Forward converts s into the other representation.
func (i FuncIso[S, A]) Forward(s S) A {
	return i.forward(s)
}

// Backward converts a back.
func (i FuncIso[S, A]) Backward(a A) S {
	return i.backward(a)
}

// Named returns a copy of the iso that reports the given name.
func (i FuncIso[S, A]) Named(name string) FuncIso[S, A] {
	i.NamedBase = naming.MakeNamedBase(name)
	return i
}

// Invert swaps the directions of an iso.
func Invert[S, A any](i Iso[S, A]) FuncIso[A, S] {
	return NewIso(i.Backward, i.Forward)
}

// ComposeIso chains two isos.
func ComposeIso[S, A, B any](first Iso[S, A], second Iso[A, B]) FuncIso[S, B] {
	return NewIso(
		func(s S) B {
			return second.Forward(first.Forward(s))
		},
		func(b B) S {
			return first.Backward(second.Backward(b))
		},
	)
}

// AsLens views an iso as a lens whose Set ignores the old whole.
func AsLens[S, A any](i Iso[S, A]) FuncLens[S, A] {
	return NewLens(
		i.Forward,
		func(_ S, a A) S {
			return i.Backward(a)
		},
	)
}

// IsoThenLens converts the whole with i, focuses with l, and converts back on
// Set.
func IsoThenLens[S, A, B any](i Iso[S, A], l Lens[A, B]) FuncLens[S, B] {
	return NewLens(
		func(s S) B {
			return l.Get(i.Forward(s))
		},
		func(s S, b B) S {
			return i.Backward(l.Set(i.Forward(s), b))
		},
	)
}
