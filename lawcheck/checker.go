package lawcheck

import (
	"fmt"
	"log"

	"github.com/sarchlab/optics/hooking"
	"github.com/sarchlab/optics/naming"
	"github.com/sarchlab/optics/optic"
)

// CheckerBuilder builds Checkers.
type CheckerBuilder[S, A any] struct {
	name        string
	sources     []S
	focuses     []A
	sourceEqual func(S, S) bool
	focusEqual  func(A, A) bool
	hooks       []hooking.Hook
}

// MakeCheckerBuilder creates a builder with no samples.
func MakeCheckerBuilder[S, A any]() CheckerBuilder[S, A] {
	return CheckerBuilder[S, A]{}
}

// WithName overrides the name reported for the checked optics.
func (b CheckerBuilder[S, A]) WithName(name string) CheckerBuilder[S, A] {
	b.name = name
	return b
}

// WithSources sets the sample wholes.
func (b CheckerBuilder[S, A]) WithSources(sources ...S) CheckerBuilder[S, A] {
	b.sources = append([]S(nil), sources...)
	return b
}

// WithFocuses sets the sample parts.
func (b CheckerBuilder[S, A]) WithFocuses(focuses ...A) CheckerBuilder[S, A] {
	b.focuses = append([]A(nil), focuses...)
	return b
}

// WithSourceEqual sets how two wholes are compared.
func (b CheckerBuilder[S, A]) WithSourceEqual(
	equal func(S, S) bool,
) CheckerBuilder[S, A] {
	b.sourceEqual = equal
	return b
}

// WithFocusEqual sets how two parts are compared.
func (b CheckerBuilder[S, A]) WithFocusEqual(
	equal func(A, A) bool,
) CheckerBuilder[S, A] {
	b.focusEqual = equal
	return b
}

// WithHook registers a hook on every built checker.
func (b CheckerBuilder[S, A]) WithHook(hook hooking.Hook) CheckerBuilder[S, A] {
	b.hooks = append(append([]hooking.Hook(nil), b.hooks...), hook)
	return b
}

// Build creates a Checker.
func (b CheckerBuilder[S, A]) Build() *Checker[S, A] {
	if b.sourceEqual == nil {
		log.Panic("source equality is not set")
	}

	if b.focusEqual == nil {
		log.Panic("focus equality is not set")
	}

	c := &Checker[S, A]{
		name:        b.name,
		sources:     b.sources,
		focuses:     b.focuses,
		sourceEqual: b.sourceEqual,
		focusEqual:  b.focusEqual,
	}

	for _, h := range b.hooks {
		c.AcceptHook(h)
	}

	return c
}

// Checker runs law checks over a fixed set of samples.
type Checker[S, A any] struct {
	hooking.HookableBase

	name        string
	sources     []S
	focuses     []A
	sourceEqual func(S, S) bool
	focusEqual  func(A, A) bool
}

// CheckLens checks GetSet, SetGet and SetSet.
func (c *Checker[S, A]) CheckLens(l optic.Lens[S, A]) []Violation {
	name := c.opticName(l)

	var found []Violation

	for _, s := range c.sources {
		current := l.Get(s)
		if !c.sourceEqual(l.Set(s, current), s) {
			found = c.report(found, GetSet, name, s, current)
		}
	}

	for _, s := range c.sources {
		for _, a := range c.focuses {
			if !c.focusEqual(l.Get(l.Set(s, a)), a) {
				found = c.report(found, SetGet, name, s, a)
			}
		}
	}

	for _, s := range c.sources {
		for _, a1 := range c.focuses {
			for _, a2 := range c.focuses {
				twice := l.Set(l.Set(s, a1), a2)
				once := l.Set(s, a2)

				if !c.sourceEqual(twice, once) {
					found = c.report(found, SetSet, name, s,
						fmt.Sprintf("%v then %v", a1, a2))
				}
			}
		}
	}

	c.done(name, found)

	return found
}

// CheckIso checks ForwardBackward on the sources and BackwardForward on the
// focuses.
func (c *Checker[S, A]) CheckIso(i optic.Iso[S, A]) []Violation {
	name := c.opticName(i)

	var found []Violation

	for _, s := range c.sources {
		if !c.sourceEqual(i.Backward(i.Forward(s)), s) {
			found = c.report(found, ForwardBackward, name, s, nil)
		}
	}

	for _, a := range c.focuses {
		if !c.focusEqual(i.Forward(i.Backward(a)), a) {
			found = c.report(found, BackwardForward, name, a, nil)
		}
	}

	c.done(name, found)

	return found
}

// CheckInvolution checks that applying Forward twice gives back every source.
func (c *Checker[S, A]) CheckInvolution(i optic.Iso[S, S]) []Violation {
	name := c.opticName(i)

	var found []Violation

	for _, s := range c.sources {
		if !c.sourceEqual(i.Forward(i.Forward(s)), s) {
			found = c.report(found, Involution, name, s, nil)
		}
	}

	c.done(name, found)

	return found
}

func (c *Checker[S, A]) opticName(o any) string {
	if c.name != "" {
		return c.name
	}

	return naming.NameOf(o)
}

func (c *Checker[S, A]) report(
	found []Violation,
	law Law,
	name string,
	source any,
	focus any,
) []Violation {
	v := Violation{
		Law:    law,
		Optic:  name,
		Source: fmt.Sprintf("%v", source),
	}

	if focus != nil {
		v.Focus = fmt.Sprintf("%v", focus)
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosViolation,
		Item:   v,
	})

	return append(found, v)
}

func (c *Checker[S, A]) done(name string, found []Violation) {
	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosCheckDone,
		Item:   name,
		Detail: found,
	})
}
