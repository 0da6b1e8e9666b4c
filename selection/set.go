// Package selection: the ordered selection set.

package selection

import (
	"github.com/verdelin/nodenet/graph"
)

// Set is an insertion-ordered set of node ids. The zero value is not ready;
// use NewSet.
type Set struct {
	ids   []graph.NodeID
	index map[graph.NodeID]struct{}
}

// NewSet returns an empty selection.
func NewSet() *Set {
	return &Set{index: make(map[graph.NodeID]struct{})}
}

// Add appends ids not already selected, preserving call order.
func (s *Set) Add(ids ...graph.NodeID) {
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

// Replace resets the selection to exactly ids.
func (s *Set) Replace(ids ...graph.NodeID) {
	s.Clear()
	s.Add(ids...)
}

// Remove drops ids from the selection; unknown ids are ignored.
func (s *Set) Remove(ids ...graph.NodeID) {
	drop := make(map[graph.NodeID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	s.Retain(func(id graph.NodeID) bool {
		_, gone := drop[id]
		return !gone
	})
}

// Retain keeps only ids for which keep returns true.
func (s *Set) Retain(keep func(graph.NodeID) bool) {
	kept := s.ids[:0]
	for _, id := range s.ids {
		if keep(id) {
			kept = append(kept, id)
		} else {
			delete(s.index, id)
		}
	}
	s.ids = kept
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.ids = s.ids[:0]
	for id := range s.index {
		delete(s.index, id)
	}
}

// Has reports whether id is selected. O(1).
func (s *Set) Has(id graph.NodeID) bool {
	_, ok := s.index[id]
	return ok
}

// IDs returns the selected ids in insertion order. The slice is a copy.
func (s *Set) IDs() []graph.NodeID {
	return append([]graph.NodeID(nil), s.ids...)
}

// Len returns the number of selected ids.
func (s *Set) Len() int { return len(s.ids) }

// Any reports whether anything is selected.
func (s *Set) Any() bool { return len(s.ids) > 0 }
