// Package lawcheck checks lenses and isos against the round-trip laws over
// sample values and reports every counterexample it finds.
package lawcheck

import (
	"fmt"

	"github.com/sarchlab/optics/hooking"
)

// Law names a round-trip law.
type Law string

// The laws that can be checked.
const (
	// GetSet: Set(s, Get(s)) == s.
	GetSet Law = "get-set"

	// SetGet: Get(Set(s, a)) == a.
	SetGet Law = "set-get"

	// SetSet: Set(Set(s, a1), a2) == Set(s, a2).
	SetSet Law = "set-set"

	// ForwardBackward: Backward(Forward(s)) == s.
	ForwardBackward Law = "forward-backward"

	// BackwardForward: Forward(Backward(a)) == a.
	BackwardForward Law = "backward-forward"

	// Involution: Forward(Forward(s)) == s.
	Involution Law = "involution"
)

// HookPosViolation marks a law violation. The item is a Violation.
var HookPosViolation = &hooking.HookPos{Name: "Law Violation"}

// HookPosCheckDone marks the end of a check. The item is the name of the
// checked optic and the detail holds the []Violation found.
var HookPosCheckDone = &hooking.HookPos{Name: "Law Check Done"}

// Violation is one counterexample.
type Violation struct {
	Law    Law
	Optic  string
	Source string
	Focus  string
}

func (v Violation) String() string {
	if v.Focus == "" {
		return fmt.Sprintf("%s breaks %s at %s", v.Optic, v.Law, v.Source)
	}

	return fmt.Sprintf("%s breaks %s at %s with %s",
		v.Optic, v.Law, v.Source, v.Focus)
}
