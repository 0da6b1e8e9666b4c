// Package mutate: the Engine, its construction, and node insertion.

package mutate

import (
	"fmt"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/registry"
	"github.com/verdelin/nodenet/selection"
)

// Engine owns the document root and applies editing commands to it. All
// operations address a network through an explicit path of compound-node
// ids, resolved against the root on every call; there is no ambient
// "current network" state.
type Engine struct {
	root      *graph.Network
	reg       registry.Registry
	sel       *selection.Set
	structure Structure
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSelection shares an existing selection set with the engine.
func WithSelection(sel *selection.Set) Option {
	return func(e *Engine) { e.sel = sel }
}

// WithStructure attaches the layer-hierarchy collaborator.
func WithStructure(s Structure) Option {
	return func(e *Engine) { e.structure = s }
}

// New creates an engine over root, resolving type defaults through reg.
func New(root *graph.Network, reg registry.Registry, opts ...Option) *Engine {
	e := &Engine{root: root, reg: reg, sel: selection.NewSet()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Root returns the document root network.
func (e *Engine) Root() *graph.Network { return e.root }

// Selection returns the selection set consumed by batch operations.
func (e *Engine) Selection() *selection.Set { return e.sel }

// network resolves path against the document root.
func (e *Engine) network(path []graph.NodeID) (*graph.Network, error) {
	net, ok := e.root.Nested(path)
	if !ok {
		log.Warn("no network at path {{path}}", "path", path)
		return nil, fmt.Errorf("%w: path %v", graph.ErrNetworkNotFound, path)
	}
	return net, nil
}

// node resolves id inside the network at path.
func (e *Engine) node(path []graph.NodeID, id graph.NodeID) (*graph.Network, *graph.Node, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, nil, err
	}
	node, ok := net.Node(id)
	if !ok {
		log.Warn("no node {{node}} at path {{path}}", "node", id, "path", path)
		return nil, nil, fmt.Errorf("%w: %s", graph.ErrNodeNotFound, id)
	}
	return net, node, nil
}

// rebuild refreshes the derived layer structure and appends the matching
// effects. Invoked by every operation that adds/removes a Connection edge
// or a node.
func (e *Engine) rebuild(net *graph.Network, effects []Effect) []Effect {
	if e.structure != nil {
		e.structure.Rebuild(net, e.sel)
	}
	return append(effects, StructureChanged, LayerPanelChanged)
}

// defaultInput resolves the registry default for (typeName, index). Used
// as the severed-dependency fallback during id remapping.
func (e *Engine) defaultInput(typeName string, index int) (graph.Input, bool) {
	return registry.DefaultInput(e.reg, typeName, index)
}

// NewNode builds a fully formed node of typeName at pos: fresh id,
// registry-declared default inputs, primary output derived from the
// descriptor. The node is not yet part of any network.
func (e *Engine) NewNode(typeName string, pos graph.IVec2) (*graph.Node, error) {
	desc, ok := e.reg.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, typeName)
	}
	inputs := make([]graph.Input, 0, len(desc.Inputs))
	for _, in := range desc.Inputs {
		inputs = append(inputs, in.Default)
	}
	return &graph.Node{
		ID:               graph.NewNodeID(),
		Type:             typeName,
		Inputs:           inputs,
		HasPrimaryOutput: len(desc.Outputs) > 0,
		Visible:          true,
		Position:         pos,
		Impl:             graph.Primitive(typeName),
	}, nil
}

// Insert adds a fully formed node into the network at path. Beyond the
// store mutation it has no side effects and does not trigger re-execution.
func (e *Engine) Insert(path []graph.NodeID, node *graph.Node) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}
	if err := net.Insert(node); err != nil {
		return nil, err
	}
	return nil, nil
}

// Descend validates that id names a compound node inside the network at
// path and returns the extended path addressing its nested network.
func (e *Engine) Descend(path []graph.NodeID, id graph.NodeID) ([]graph.NodeID, error) {
	_, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	if _, ok := node.Nested(); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCompound, id)
	}
	extended := append(append([]graph.NodeID(nil), path...), id)
	return extended, nil
}

// Ascend returns the path addressing the parent network, or the root path
// unchanged when already at the root.
func (e *Engine) Ascend(path []graph.NodeID) []graph.NodeID {
	if len(path) == 0 {
		return nil
	}
	return append([]graph.NodeID(nil), path[:len(path)-1]...)
}

// SetName updates a node's display alias.
func (e *Engine) SetName(path []graph.NodeID, id graph.NodeID, name string) ([]Effect, error) {
	_, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	node.Alias = name
	return []Effect{SendGraph}, nil
}
