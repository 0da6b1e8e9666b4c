package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/selection"
)

func TestSet_AddPreservesOrderAndUniqueness(t *testing.T) {
	s := selection.NewSet()
	s.Add("b", "a", "b", "c")

	assert.Equal(t, []graph.NodeID{"b", "a", "c"}, s.IDs())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))
	assert.True(t, s.Any())
}

func TestSet_RemoveAndRetain(t *testing.T) {
	s := selection.NewSet()
	s.Add("a", "b", "c", "d")

	s.Remove("b", "z")
	assert.Equal(t, []graph.NodeID{"a", "c", "d"}, s.IDs())

	s.Retain(func(id graph.NodeID) bool { return id != "c" })
	assert.Equal(t, []graph.NodeID{"a", "d"}, s.IDs())
	assert.False(t, s.Has("c"))
}

func TestSet_ReplaceAndClear(t *testing.T) {
	s := selection.NewSet()
	s.Add("a", "b")

	s.Replace("x", "y")
	assert.Equal(t, []graph.NodeID{"x", "y"}, s.IDs())

	s.Clear()
	assert.False(t, s.Any())
	assert.Empty(t, s.IDs())
}

func TestSet_IDsReturnsCopy(t *testing.T) {
	s := selection.NewSet()
	s.Add("a", "b")

	ids := s.IDs()
	ids[0] = "mutated"
	assert.Equal(t, []graph.NodeID{"a", "b"}, s.IDs())
}
