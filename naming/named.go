// Package naming gives optics and checkers human-readable names.
package naming

import "fmt"

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

// Name returns the name given at construction.
func (b NamedBase) Name() string {
	return b.name
}

// MakeNamedBase creates a new NamedBase
func MakeNamedBase(name string) NamedBase {
	return NamedBase{name: name}
}

// NameOf returns the name of v if v is Named. Otherwise, the Go type of v is
// used.
func NameOf(v any) string {
	if n, ok := v.(Named); ok && n.Name() != "" {
		return n.Name()
	}

	return fmt.Sprintf("%T", v)
}
