package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashMap(t *testing.T) {
	m := NewHashMap()
	assert.Equal(t, 0, m.Len())
	ka := HashableValue{Type: LKeyword, Str: "a"}
	kb := HashableValue{Type: LString, Str: "a"}
	k1 := HashableValue{Type: LInt, Int: 1}
	m.Put(ka, Int(1))
	m.Put(kb, Int(2))
	m.Put(k1, Int(3))
	m.Put(ka, Int(4))

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []HashableValue{ka, kb, k1}, m.Keys())
	v, ok := m.Get(ka)
	if assert.True(t, ok) {
		assert.Equal(t, Int(4), v)
	}
	v, ok = m.Get(kb)
	if assert.True(t, ok) {
		assert.Equal(t, Int(2), v)
	}
	_, ok = m.Get(HashableValue{Type: LInt, Int: 2})
	assert.False(t, ok)

	var nilmap *HashMap
	assert.Equal(t, 0, nilmap.Len())
	assert.Empty(t, nilmap.Keys())
}
