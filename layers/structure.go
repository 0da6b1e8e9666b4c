// Package layers: tree derivation from primary-input chains.

package layers

import (
	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/selection"
)

// Metadata supplies the external classification predicates. Implementations
// belong to the embedding editor; the core never persists classifications.
type Metadata interface {
	IsArtboard(id graph.NodeID) bool
	IsFolder(id graph.NodeID) bool
}

// Classification of a layer-panel row.
type Classification int

const (
	ClassLayer Classification = iota
	ClassFolder
	ClassArtboard
)

// String returns the panel label of the classification.
func (c Classification) String() string {
	switch c {
	case ClassArtboard:
		return "Artboard"
	case ClassFolder:
		return "Folder"
	default:
		return "Layer"
	}
}

// Structure is the tree derived from one network. Zero value is unusable;
// construct with NewStructure and populate with Rebuild.
type Structure struct {
	meta     Metadata
	parent   map[graph.NodeID]graph.NodeID
	children map[graph.NodeID][]graph.NodeID
	order    []graph.NodeID // pre-order over the tree, for stable listings
}

// NewStructure returns an empty structure. meta may be nil, in which case
// nothing classifies as an artboard and layers with children classify as
// folders.
func NewStructure(meta Metadata) *Structure {
	return &Structure{
		meta:     meta,
		parent:   make(map[graph.NodeID]graph.NodeID),
		children: make(map[graph.NodeID][]graph.NodeID),
	}
}

// Rebuild re-derives the tree from net and prunes ids of vanished nodes
// from sel. Called by the mutation engine after every structural edit.
//
// Derivation: walking backward along primary (index-0) Connection inputs
// from each export yields the root chain; every IsLayer node on it is a
// top-level layer. For each discovered layer, the primary chain hanging off
// its secondary (index-1) input yields its children, in chain order.
// Complexity: O(V + E).
func (s *Structure) Rebuild(net *graph.Network, sel *selection.Set) {
	s.parent = make(map[graph.NodeID]graph.NodeID)
	s.children = make(map[graph.NodeID][]graph.NodeID)
	s.order = s.order[:0]

	if net == nil {
		return
	}
	if sel != nil {
		sel.Retain(func(id graph.NodeID) bool {
			_, ok := net.Node(id)
			return ok
		})
	}

	seen := make(map[graph.NodeID]struct{}, len(net.Nodes))

	// 1. Top-level layers: primary chains from the current exports.
	var queue []graph.NodeID
	for _, port := range net.Exports {
		for _, layer := range s.primaryChainLayers(net, port.Node, seen) {
			s.order = append(s.order, layer)
			queue = append(queue, layer)
		}
	}

	// 2. Breadth-first over discovered layers: secondary input opens the
	// child chain.
	for len(queue) > 0 {
		layer := queue[0]
		queue = queue[1:]

		node, ok := net.Node(layer)
		if !ok {
			continue
		}
		conn, ok := node.SecondaryConnection()
		if !ok {
			continue
		}
		for _, child := range s.primaryChainLayers(net, conn.Node, seen) {
			s.parent[child] = layer
			s.children[layer] = append(s.children[layer], child)
			s.order = append(s.order, child)
			queue = append(queue, child)
		}
	}
}

// primaryChainLayers walks the primary-input chain starting at id and
// returns the IsLayer nodes encountered, in chain order. The shared seen
// set bounds the walk on malformed graphs and keeps chains disjoint.
func (s *Structure) primaryChainLayers(net *graph.Network, id graph.NodeID, seen map[graph.NodeID]struct{}) []graph.NodeID {
	var found []graph.NodeID
	current := id
	for {
		if _, visited := seen[current]; visited {
			return found
		}
		seen[current] = struct{}{}

		node, ok := net.Node(current)
		if !ok {
			return found
		}
		if node.IsLayer {
			found = append(found, current)
		}
		conn, ok := node.PrimaryConnection()
		if !ok {
			return found
		}
		current = conn.Node
	}
}

// Remove detaches a layer from the tree ahead of its physical deletion:
// its children are spliced onto its parent. The next Rebuild re-derives
// the exact shape.
func (s *Structure) Remove(id graph.NodeID) {
	parent, hasParent := s.parent[id]
	orphans := s.children[id]
	delete(s.children, id)
	delete(s.parent, id)

	if hasParent {
		kept := s.children[parent][:0]
		for _, child := range s.children[parent] {
			if child != id {
				kept = append(kept, child)
			}
		}
		s.children[parent] = append(kept, orphans...)
	}
	for _, orphan := range orphans {
		if hasParent {
			s.parent[orphan] = parent
		} else {
			delete(s.parent, orphan)
		}
	}

	kept := s.order[:0]
	for _, layer := range s.order {
		if layer != id {
			kept = append(kept, layer)
		}
	}
	s.order = kept
}

// Parent returns the parent layer of id, if any.
func (s *Structure) Parent(id graph.NodeID) (graph.NodeID, bool) {
	p, ok := s.parent[id]
	return p, ok
}

// Children returns the child layers of id in chain order.
func (s *Structure) Children(id graph.NodeID) []graph.NodeID {
	return s.children[id]
}

// HasChildren reports whether id has child layers.
func (s *Structure) HasChildren(id graph.NodeID) bool {
	return len(s.children[id]) > 0
}

// Ancestors returns the strict ancestors of id, nearest first.
func (s *Structure) Ancestors(id graph.NodeID) []graph.NodeID {
	var chain []graph.NodeID
	current := id
	for {
		parent, ok := s.parent[current]
		if !ok {
			return chain
		}
		chain = append(chain, parent)
		current = parent
	}
}

// Depth returns the nesting depth of id; top-level layers are depth 0.
func (s *Structure) Depth(id graph.NodeID) int {
	return len(s.Ancestors(id))
}

// Layers returns all tracked layers in pre-order.
func (s *Structure) Layers() []graph.NodeID {
	return append([]graph.NodeID(nil), s.order...)
}

// Classify decides the panel classification of id.
func (s *Structure) Classify(id graph.NodeID) Classification {
	if s.meta != nil {
		if s.meta.IsArtboard(id) {
			return ClassArtboard
		}
		if s.meta.IsFolder(id) {
			return ClassFolder
		}
		return ClassLayer
	}
	if s.HasChildren(id) {
		return ClassFolder
	}
	return ClassLayer
}
