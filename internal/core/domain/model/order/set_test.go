package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSet(t *testing.T) {
	s := newOrderedSet("b", "a", "b")

	assert.Equal(t, []string{"b", "a"}, s.values())
	assert.True(t, s.add("c"))
	assert.False(t, s.add("a"))
	assert.True(t, s.has("c"))

	assert.True(t, s.remove("a"))
	assert.False(t, s.remove("a"))
	assert.Equal(t, []string{"b", "c"}, s.values())
	assert.Equal(t, 2, s.len())

	values := s.values()
	values[0] = "mutated"
	assert.Equal(t, []string{"b", "c"}, s.values())

	s.clear()
	assert.Equal(t, 0, s.len())
	assert.False(t, s.has("b"))
}

func TestOrderedSet_ZeroValue(t *testing.T) {
	var s orderedSet[int]

	assert.False(t, s.has(1))
	assert.True(t, s.add(1))
	assert.Equal(t, []int{1}, s.values())
}
