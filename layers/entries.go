// Package layers: inherited flags and the panel projection.

package layers

import (
	"github.com/verdelin/nodenet/graph"
)

// Collapsed is the set of layers whose children are folded in the panel.
// Owned by the embedding editor; the derivation only reads it.
type Collapsed map[graph.NodeID]bool

// ParentsVisible reports whether every strict ancestor of id is visible.
func (s *Structure) ParentsVisible(net *graph.Network, id graph.NodeID) bool {
	for _, ancestor := range s.Ancestors(id) {
		node, ok := net.Node(ancestor)
		if !ok || !node.Visible {
			return false
		}
	}
	return true
}

// ParentsUnlocked reports whether every strict ancestor of id is unlocked.
func (s *Structure) ParentsUnlocked(net *graph.Network, id graph.NodeID) bool {
	for _, ancestor := range s.Ancestors(id) {
		node, ok := net.Node(ancestor)
		if !ok || node.Locked {
			return false
		}
	}
	return true
}

// EffectiveVisible is the AND of the layer's own flag and its ancestry.
func (s *Structure) EffectiveVisible(net *graph.Network, id graph.NodeID) bool {
	node, ok := net.Node(id)
	return ok && node.Visible && s.ParentsVisible(net, id)
}

// EffectiveUnlocked is the AND of the layer's own flag and its ancestry.
func (s *Structure) EffectiveUnlocked(net *graph.Network, id graph.NodeID) bool {
	node, ok := net.Node(id)
	return ok && !node.Locked && s.ParentsUnlocked(net, id)
}

// Entry is one layer-panel row.
type Entry struct {
	ID              graph.NodeID   `json:"id"`
	Classification  Classification `json:"classification"`
	Name            string         `json:"name"`
	Depth           int            `json:"depth"`
	Parent          graph.NodeID   `json:"parent,omitempty"`
	Expanded        bool           `json:"expanded"`
	HasChildren     bool           `json:"hasChildren"`
	Visible         bool           `json:"visible"`
	ParentsVisible  bool           `json:"parentsVisible"`
	Unlocked        bool           `json:"unlocked"`
	ParentsUnlocked bool           `json:"parentsUnlocked"`
}

// Entries projects the panel rows in pre-order. collapsed may be nil.
func (s *Structure) Entries(net *graph.Network, collapsed Collapsed) []Entry {
	var rows []Entry
	for _, id := range s.order {
		node, ok := net.Node(id)
		if !ok {
			continue
		}
		name := node.Alias
		if name == "" {
			name = node.Type
		}
		parent, _ := s.Parent(id)
		rows = append(rows, Entry{
			ID:              id,
			Classification:  s.Classify(id),
			Name:            name,
			Depth:           s.Depth(id),
			Parent:          parent,
			Expanded:        s.HasChildren(id) && !collapsed[id],
			HasChildren:     s.HasChildren(id),
			Visible:         node.Visible,
			ParentsVisible:  s.ParentsVisible(net, id),
			Unlocked:        !node.Locked,
			ParentsUnlocked: s.ParentsUnlocked(net, id),
		})
	}
	return rows
}
