package optic

import (
	"log"

	"github.com/sarchlab/optics/naming"
)

// A Lens focuses on one part A of a whole S.
type Lens[S, A any] interface {
	// Get reads the focus.
	Get(s S) A

	// Set returns a copy of s with the focus replaced by a.
	Set(s S, a A) S
}

// FuncLens is a Lens backed by a pair of functions.
type FuncLens[S, A any] struct {
	naming.NamedBase

	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from a getter and a setter.
func NewLens[S, A any](get func(S) A, set func(S, A) S) FuncLens[S, A] {
	if get == nil || set == nil {
		log.Panic("lens requires both a getter and a setter")
	}

	return FuncLens[S, A]{get: get, set: set}
}

// Get reads the focus.
func (l FuncLens[S, A]) Get(s S) A {
	return l.get(s)
}

// Set returns a copy of s with the focus replaced by a.
func (l FuncLens[S, A]) Set(s S, a A) S {
	return l.set(s, a)
}

// Named returns a copy of the lens that reports the given name.
func (l FuncLens[S, A]) Named(name string) FuncLens[S, A] {
	l.NamedBase = naming.MakeNamedBase(name)
	return l
}

// Over applies f to the focus of s.
func Over[S, A any](l Lens[S, A], s S, f func(A) A) S {
	return l.Set(s, f(l.Get(s)))
}

// Compose focuses inner on the focus of outer.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) FuncLens[S, B] {
	return NewLens(
		func(s S) B {
			return inner.Get(outer.Get(s))
		},
		func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	)
}
