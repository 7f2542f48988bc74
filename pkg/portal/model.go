package portal

import (
	"fmt"
	"slices"
)

// Kind identifies a component type on a model.
type Kind int

const (
	KindSet Kind = iota
	KindParam
)

// String returns the component kind name used in data command files.
func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindParam:
		return "param"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Model exposes the components a data manager loads into or writes from.
// Managers treat it as read-only.
type Model interface {
	// ComponentMap returns the names of all components of kind in a stable order.
	ComponentMap(kind Kind) []string
}

// StaticModel is an in-memory [Model] with fixed component lists.
type StaticModel struct {
	Sets   []string // Set component names, in declaration order
	Params []string // Param component names, in declaration order
}

// ComponentMap implements [Model].
func (m *StaticModel) ComponentMap(kind Kind) []string {
	switch kind {
	case KindSet:
		return slices.Clone(m.Sets)
	case KindParam:
		return slices.Clone(m.Params)
	}
	return nil
}
