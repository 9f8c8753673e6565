package ir

import "iter"

// OrderedMap is a map that remembers insertion order.
// The zero value is ready to use.
type OrderedMap[K comparable, V any] struct {
	keys  []K
	vals  []V
	index map[K]int
}

// Insert adds k if it is absent and reports whether it did.
func (m *OrderedMap[K, V]) Insert(k K, v V) bool {
	if _, ok := m.index[k]; ok {
		return false
	}
	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	return true
}

// Set inserts or overwrites k; an overwritten key keeps its position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if i, ok := m.index[k]; ok {
		m.vals[i] = v
		return
	}
	m.Insert(k, v)
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	if m != nil {
		if i, ok := m.index[k]; ok {
			return m.vals[i], true
		}
	}
	var zero V
	return zero, false
}

func (m *OrderedMap[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	return append([]K(nil), m.keys...)
}

// Values returns the values in insertion order. The slice is a copy.
func (m *OrderedMap[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	return append([]V(nil), m.vals...)
}

// All iterates key/value pairs in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
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
