package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_Eviction(t *testing.T) {
	c := New[uint64, string](2)

	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")

	_, ok := c.Get(1)
	assert.False(t, ok)

	v, ok := c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	assert.Equal(t, 2, c.Len())
}

func TestCache_RecencyBump(t *testing.T) {
	c := New[uint64, string](2)

	c.Put(1, "a")
	c.Put(2, "b")

	_, _ = c.Get(1)
	c.Put(3, "c")

	_, ok := c.Get(2)
	assert.False(t, ok)

	_, ok = c.Get(1)
	assert.True(t, ok)

	assert.Equal(t, []uint64{1, 3}, c.Keys())
}

func TestCache_Update(t *testing.T) {
	c := New[uint64, string](2)

	c.Put(1, "a")
	c.Put(1, "a2")

	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a2", v)
	assert.Equal(t, 1, c.Len())
}
