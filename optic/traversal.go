package optic

import (
	"log"

	"github.com/sarchlab/optics/naming"
)

// A PairTraversal visits the two elements of a fixed two-element structure,
// always first then second.
type PairTraversal[S, A any] interface {
	// Split returns the two elements of s in visiting order.
	Split(s S) (first, second A)

	// Join rebuilds s with its elements replaced.
	Join(s S, first, second A) S
}

// A Combiner merges the effects of visiting the first and the second element
// into the effect of the rebuilt whole. F is the per-element effect and G is
// the effect of the whole.
//
// Implementations must combine first before second.
type Combiner[A, S, F, G any] interface {
	Combine(first, second F, join func(first, second A) S) G
}

// TraversePair applies f to the first and then the second element of s and
// combines the two effects with c.
func TraversePair[S, A, F, G any](
	t PairTraversal[S, A],
	s S,
	f func(A) F,
	c Combiner[A, S, F, G],
) G {
	first, second := t.Split(s)

	firstEffect := f(first)
	secondEffect := f(second)

	return c.Combine(firstEffect, secondEffect, func(a, b A) S {
		return t.Join(s, a, b)
	})
}

// MapPair applies a pure function to both elements.
func MapPair[S, A any](t PairTraversal[S, A], s S, f func(A) A) S {
	return TraversePair[S, A, A, S](t, s, f, Identity[A, S]{})
}

// ToSlice returns the elements of s in visiting order.
func ToSlice[S, A any](t PairTraversal[S, A], s S) []A {
	return TraversePair[S, A, []A, []A](
		t, s,
		func(a A) []A { return []A{a} },
		Collect[A, S, []A]{
			Append: func(x, y []A) []A {
				out := make([]A, 0, len(x)+len(y))
				out = append(out, x...)
				return append(out, y...)
			},
		},
	)
}

// FoldPair folds the elements of s from the left, in visiting order.
func FoldPair[S, A, Z any](
	t PairTraversal[S, A],
	s S,
	zero Z,
	step func(acc Z, a A) Z,
) Z {
	fold := TraversePair[S, A, func(Z) Z, func(Z) Z](
		t, s,
		func(a A) func(Z) Z {
			return func(acc Z) Z { return step(acc, a) }
		},
		Collect[A, S, func(Z) Z]{
			Append: func(earlier, later func(Z) Z) func(Z) Z {
				return func(acc Z) Z { return later(earlier(acc)) }
			},
		},
	)

	return fold(zero)
}

// FuncPair is a PairTraversal backed by functions.
type FuncPair[S, A any] struct {
	naming.NamedBase

	split func(S) (A, A)
	join  func(S, A, A) S
}

// NewPair creates a pair traversal from a split and a join function.
func NewPair[S, A any](
	split func(S) (A, A),
	join func(S, A, A) S,
) FuncPair[S, A] {
	if split == nil || join == nil {
		log.Panic("pair traversal requires both split and join")
	}

	return FuncPair[S, A]{split: split, join: join}
}

// Split returns the two elements of s.
func (p FuncPair[S, A]) Split(s S) (A, A) {
	return p.split(s)
}

// Join rebuilds s from two elements.
func (p FuncPair[S, A]) Join(s S, first, second A) S {
	return p.join(s, first, second)
}

// Named returns a copy of the traversal that reports the given name.
func (p FuncPair[S, A]) Named(name string) FuncPair[S, A] {
	p.NamedBase = naming.MakeNamedBase(name)
	return p
}

// IsoThenPair traverses the pair inside the other representation of an iso.
func IsoThenPair[S, A, B any](i Iso[S, A], t PairTraversal[A, B]) FuncPair[S, B] {
	return NewPair(
		func(s S) (B, B) {
			return t.Split(i.Forward(s))
		},
		func(s S, first, second B) S {
			return i.Backward(t.Join(i.Forward(s), first, second))
		},
	)
}
