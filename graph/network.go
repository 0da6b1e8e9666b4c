// Package graph: the Network store — an arena of nodes plus its
// import/export boundary bookkeeping and nested-network resolution.

package graph

import "sort"

// Network is a DAG of nodes plus its external boundaries. Nodes are stored
// in an arena keyed by NodeID; insertion order is irrelevant.
type Network struct {
	Nodes map[NodeID]*Node `json:"nodes"`

	// Imports is the ordered external input boundary. Import nodes are
	// never removable by ordinary edits.
	Imports []NodeID `json:"imports,omitempty"`

	// Exports is the ordered list of currently visible outputs. Exports[0]
	// is the network's primary output and the target of preview overrides.
	Exports []Port `json:"exports,omitempty"`

	// PreviousExports stashes Exports while a preview override is active;
	// nil when no preview is in effect. At most one stash exists at a time.
	PreviousExports []Port `json:"previousExports,omitempty"`
}

func (*Network) isImplementation() {}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{Nodes: make(map[NodeID]*Node)}
}

// Node looks the node up by id. O(1).
func (net *Network) Node(id NodeID) (*Node, bool) {
	n, ok := net.Nodes[id]
	return n, ok
}

// Insert adds a fully formed node to the arena.
// Returns ErrNilNode or ErrDuplicateNode on misuse. O(1) amortized.
func (net *Network) Insert(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, exists := net.Nodes[n.ID]; exists {
		return ErrDuplicateNode
	}
	if net.Nodes == nil {
		net.Nodes = make(map[NodeID]*Node)
	}
	net.Nodes[n.ID] = n
	return nil
}

// Remove deletes the node from the arena. Imports and current export nodes
// are rejected with ErrBoundaryProtected; reference rewriting is the
// caller's responsibility (package mutate). O(1).
func (net *Network) Remove(id NodeID) error {
	if _, exists := net.Nodes[id]; !exists {
		return ErrNodeNotFound
	}
	if net.IsBoundary(id) {
		return ErrBoundaryProtected
	}
	delete(net.Nodes, id)
	return nil
}

// Nested resolves a path of compound-node ids against this network,
// descending one sub-network per path element. An empty path yields the
// network itself. A path element that is missing or not compound resolves
// to (nil, false) and the caller must treat the operation as a no-op.
func (net *Network) Nested(path []NodeID) (*Network, bool) {
	current := net
	for _, id := range path {
		node, ok := current.Node(id)
		if !ok {
			return nil, false
		}
		sub, ok := node.Nested()
		if !ok {
			return nil, false
		}
		current = sub
	}
	return current, true
}

// IsImport reports whether id is part of the network's input boundary.
func (net *Network) IsImport(id NodeID) bool {
	for _, imp := range net.Imports {
		if imp == id {
			return true
		}
	}
	return false
}

// OutputsContain reports whether id backs one of the current exports.
func (net *Network) OutputsContain(id NodeID) bool {
	for _, p := range net.Exports {
		if p.Node == id {
			return true
		}
	}
	return false
}

// PreviousOutputsContain reports whether id backs one of the stashed
// exports; the second return is false when no preview stash exists.
func (net *Network) PreviousOutputsContain(id NodeID) (bool, bool) {
	if net.PreviousExports == nil {
		return false, false
	}
	for _, p := range net.PreviousExports {
		if p.Node == id {
			return true, true
		}
	}
	return false, true
}

// OriginalOutputs returns the exports as they were before any preview
// override: the stash when one exists, the current exports otherwise.
func (net *Network) OriginalOutputs() []Port {
	if net.PreviousExports != nil {
		return net.PreviousExports
	}
	return net.Exports
}

// OriginalOutputsContain reports whether id backs one of OriginalOutputs.
func (net *Network) OriginalOutputsContain(id NodeID) bool {
	for _, p := range net.OriginalOutputs() {
		if p.Node == id {
			return true
		}
	}
	return false
}

// IsBoundary reports whether id is an import or a current export node.
// Boundary nodes may never be deleted, hidden, or locked.
func (net *Network) IsBoundary(id NodeID) bool {
	return net.IsImport(id) || net.OutputsContain(id)
}

// OccupiesPosition reports whether any stored node sits exactly at pos.
func (net *Network) OccupiesPosition(pos IVec2) bool {
	for _, n := range net.Nodes {
		if n.Position == pos {
			return true
		}
	}
	return false
}

// SortedIDs returns all node ids in lexicographic order. Used wherever a
// deterministic iteration over the arena is required.
func (net *Network) SortedIDs() []NodeID {
	ids := make([]NodeID, 0, len(net.Nodes))
	for id := range net.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Copy returns a deep copy of the network: nodes, boundaries, and any
// preview stash. O(V + E).
func (net *Network) Copy() *Network {
	dup := NewNetwork()
	for id, n := range net.Nodes {
		dup.Nodes[id] = n.Copy()
	}
	dup.Imports = append([]NodeID(nil), net.Imports...)
	dup.Exports = append([]Port(nil), net.Exports...)
	if net.PreviousExports != nil {
		dup.PreviousExports = append([]Port(nil), net.PreviousExports...)
	}
	return dup
}
