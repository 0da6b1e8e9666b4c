// Package graph: the Node model and its shape helpers.

package graph

import "github.com/zclconf/go-cty/cty"

// Implementation is what a node executes: either a Primitive operation tag
// or a nested *Network (a compound node).
type Implementation interface {
	isImplementation()
}

// Primitive tags a node as a built-in operation resolved by the executor.
type Primitive string

func (Primitive) isImplementation() {}

// Node is one computation node inside a Network.
//
// Inputs are ordered; index 0 is the primary input. The flag set mirrors the
// editor semantics: IsLayer marks participation in the derived layer
// hierarchy, DisplayAsLayer controls the panel rendering of an eligible
// node, HasPrimaryOutput gates layer eligibility, Visible/Locked are the
// user-facing toggles inherited down the layer tree.
type Node struct {
	ID               NodeID
	Type             string
	Alias            string
	Inputs           []Input
	IsLayer          bool
	DisplayAsLayer   bool
	HasPrimaryOutput bool
	Visible          bool
	Locked           bool
	Position         IVec2
	Impl             Implementation
}

// Nested returns the node's sub-network when the node is compound.
func (n *Node) Nested() (*Network, bool) {
	net, ok := n.Impl.(*Network)
	return net, ok
}

// Input returns the input at index, or ErrInputOutOfRange.
func (n *Node) Input(index int) (Input, error) {
	if index < 0 || index >= len(n.Inputs) {
		return nil, ErrInputOutOfRange
	}
	return n.Inputs[index], nil
}

// PrimaryConnection returns the node's index-0 input when it is a Connection.
func (n *Node) PrimaryConnection() (Connection, bool) {
	if len(n.Inputs) == 0 {
		return Connection{}, false
	}
	return AsConnection(n.Inputs[0])
}

// SecondaryConnection returns the node's index-1 input when it is a Connection.
func (n *Node) SecondaryConnection() (Connection, bool) {
	if len(n.Inputs) < 2 {
		return Connection{}, false
	}
	return AsConnection(n.Inputs[1])
}

// ConnectionCount counts inputs that are Connections.
func (n *Node) ConnectionCount() int {
	var count int
	for _, in := range n.Inputs {
		if _, ok := in.(Connection); ok {
			count++
		}
	}
	return count
}

// ExposedValueCount counts Value inputs currently shown as ports.
func (n *Node) ExposedValueCount() int {
	var count int
	for _, in := range n.Inputs {
		if v, ok := in.(Value); ok && v.Exposed {
			count++
		}
	}
	return count
}

// ValidLayerShape reports whether the node may be displayed as a layer:
// it must own a primary output and have exactly one connection input plus
// one exposed value input.
func (n *Node) ValidLayerShape() bool {
	return n.HasPrimaryOutput && n.ConnectionCount()+n.ExposedValueCount() == 2
}

// Copy returns a deep copy of the node. Inputs are value types (cty values
// are immutable), so the input slice is the only shared structure to clone;
// nested networks are copied recursively.
func (n *Node) Copy() *Node {
	dup := *n
	dup.Inputs = make([]Input, len(n.Inputs))
	copy(dup.Inputs, n.Inputs)
	if nested, ok := n.Nested(); ok {
		dup.Impl = nested.Copy()
	}
	return &dup
}

// MapIDs rewrites every Connection input through the id remap. Connections
// to nodes outside the remap are replaced by fallback(n.Type, index); when
// fallback yields nothing (or is nil) the input degrades to an exposed null
// value, so no dangling reference ever survives the remap.
//
// Used by copy/paste and duplication to sever external dependencies while
// preserving internal topology. Complexity: O(len(Inputs)).
func (n *Node) MapIDs(remap map[NodeID]NodeID, fallback func(typeName string, index int) (Input, bool)) {
	for i, in := range n.Inputs {
		conn, ok := AsConnection(in)
		if !ok {
			continue
		}
		if to, ok := remap[conn.Node]; ok {
			conn.Node = to
			n.Inputs[i] = conn
			continue
		}
		// External dependency severed by the copy boundary.
		if fallback != nil {
			if def, ok := fallback(n.Type, i); ok {
				n.Inputs[i] = def
				continue
			}
		}
		n.Inputs[i] = Value{Data: cty.NullVal(cty.DynamicPseudoType), Exposed: true}
	}
}
