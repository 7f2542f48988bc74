// Package ordered provides an insertion-ordered map.
//
// Data command files are written in the order their namespaces, components
// and indices were added, so every mapping in the portal data model iterates
// in insertion order rather than Go's randomized map order.
package ordered

import "iter"

// Map is a map that remembers key insertion order.
// Re-setting an existing key keeps its original position.
// The zero value is ready to use.
type Map[K comparable, V any] struct {
	keys  []K
	index map[K]int
	vals  []V
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Set stores v under k. New keys are appended to the iteration order.
func (m *Map[K, V]) Set(k K, v V) {
	if i, ok := m.index[k]; ok {
		m.vals[i] = v
		return
	}
	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if i, ok := m.index[k]; ok {
		return m.vals[i], true
	}
	var zero V
	return zero, false
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.index[k]
	return ok
}

// Delete removes k, preserving the relative order of the remaining keys.
func (m *Map[K, V]) Delete(k K) {
	i, ok := m.index[k]
	if !ok {
		return
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	delete(m.index, k)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	return append([]K(nil), m.keys...)
}

// All iterates over key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}
