package lisp

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// HashMap maps HashableValue keys to Values, remembering the order in which
// keys were first inserted.  A HashMap is populated when it is constructed
// and treated as immutable once it is wrapped in a Value.
type HashMap struct {
	m *linkedhashmap.Map
}

// NewHashMap returns an empty HashMap.
func NewHashMap() *HashMap {
	return &HashMap{m: linkedhashmap.New()}
}

// Put binds key to val.  Rebinding a key keeps its original position.
func (m *HashMap) Put(key HashableValue, val Value) {
	m.m.Put(key, val)
}

// Get returns the value bound to key.
func (m *HashMap) Get(key HashableValue) (Value, bool) {
	v, ok := m.m.Get(key)
	if !ok {
		return Value{}, false
	}
	return v.(Value), true
}

// Len returns the number of keys in m.
func (m *HashMap) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Size()
}

// Keys returns the keys of m in insertion order.
func (m *HashMap) Keys() []HashableValue {
	keys := make([]HashableValue, 0, m.Len())
	m.Each(func(k HashableValue, _ Value) {
		keys = append(keys, k)
	})
	return keys
}

// Each calls fn for every entry of m in insertion order.
func (m *HashMap) Each(fn func(k HashableValue, v Value)) {
	if m == nil {
		return
	}
	it := m.m.Iterator()
	for it.Next() {
		fn(it.Key().(HashableValue), it.Value().(Value))
	}
}

func mapEqual(a, b *HashMap) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Each(func(k HashableValue, v Value) {
		if !equal {
			return
		}
		w, ok := b.Get(k)
		equal = ok && Equal(v, w)
	})
	return equal
}
