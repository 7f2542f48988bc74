package portal

import (
	"iter"

	"github.com/matzehuels/dataportal/internal/ordered"
)

// Namespace labels a block of set and param statements.
type Namespace string

// Global is the absence-marker namespace: statements outside any namespace block.
const Global Namespace = ""

// Index keys one entry of an indexed component.
type Index string

// NoIndex is the absence-marker index used by non-indexed components.
const NoIndex Index = ""

// Component holds the values of one named model component.
type Component interface {
	Kind() Kind
}

// SetValues maps each index of a set to its members.
// A non-indexed set has a single entry under [NoIndex].
type SetValues struct {
	m ordered.Map[Index, []any]
}

// NewSet returns the values of a non-indexed set holding members.
func NewSet(members ...any) *SetValues {
	s := &SetValues{}
	s.Add(NoIndex, members...)
	return s
}

// Kind implements [Component].
func (s *SetValues) Kind() Kind { return KindSet }

// Add replaces the members stored under index.
func (s *SetValues) Add(index Index, members ...any) {
	s.m.Set(index, members)
}

// Members returns the members stored under index.
func (s *SetValues) Members(index Index) ([]any, bool) {
	return s.m.Get(index)
}

// Indices returns the indices in insertion order.
func (s *SetValues) Indices() []Index { return s.m.Keys() }

// All iterates over index/members pairs in insertion order.
func (s *SetValues) All() iter.Seq2[Index, []any] { return s.m.All() }

// Len returns the number of indices.
func (s *SetValues) Len() int { return s.m.Len() }

// ParamValues maps each index of a param to its value.
type ParamValues struct {
	m ordered.Map[Index, any]
}

// Kind implements [Component].
func (p *ParamValues) Kind() Kind { return KindParam }

// Set stores v under index.
func (p *ParamValues) Set(index Index, v any) { p.m.Set(index, v) }

// Get returns the value stored under index.
func (p *ParamValues) Get(index Index) (any, bool) { return p.m.Get(index) }

// All iterates over index/value pairs in insertion order.
func (p *ParamValues) All() iter.Seq2[Index, any] { return p.m.All() }

// Len returns the number of indices.
func (p *ParamValues) Len() int { return p.m.Len() }

// Block holds the components of one namespace.
type Block struct {
	m ordered.Map[string, Component]
}

// Put stores c under name, replacing any previous component.
func (b *Block) Put(name string, c Component) { b.m.Set(name, c) }

// Get returns the component stored under name.
func (b *Block) Get(name string) (Component, bool) { return b.m.Get(name) }

// Names returns the component names in insertion order.
func (b *Block) Names() []string { return b.m.Keys() }

// Len returns the number of components.
func (b *Block) Len() int { return b.m.Len() }

// Set returns the set stored under name, creating it when absent.
// It returns nil if name holds a component of another kind.
func (b *Block) Set(name string) *SetValues {
	if c, ok := b.m.Get(name); ok {
		s, _ := c.(*SetValues)
		return s
	}
	s := &SetValues{}
	b.m.Set(name, s)
	return s
}

// Param returns the param stored under name, creating it when absent.
// It returns nil if name holds a component of another kind.
func (b *Block) Param(name string) *ParamValues {
	if c, ok := b.m.Get(name); ok {
		p, _ := c.(*ParamValues)
		return p
	}
	p := &ParamValues{}
	b.m.Set(name, p)
	return p
}

// Data maps namespaces to their component blocks.
type Data struct {
	m ordered.Map[Namespace, *Block]
}

// NewData creates empty Data.
func NewData() *Data {
	return &Data{}
}

// Namespace returns the block for ns, creating it when absent.
func (d *Data) Namespace(ns Namespace) *Block {
	if b, ok := d.m.Get(ns); ok {
		return b
	}
	b := &Block{}
	d.m.Set(ns, b)
	return b
}

// Lookup returns the block for ns without creating it.
func (d *Data) Lookup(ns Namespace) (*Block, bool) {
	return d.m.Get(ns)
}

// Namespaces returns the namespaces in insertion order.
func (d *Data) Namespaces() []Namespace { return d.m.Keys() }

// All iterates over namespace/block pairs in insertion order.
func (d *Data) All() iter.Seq2[Namespace, *Block] { return d.m.All() }

// Len returns the number of namespaces.
func (d *Data) Len() int { return d.m.Len() }
