// Package mutate: input editing — set, connect, disconnect, expose.

package mutate

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/registry"
	"github.com/verdelin/nodenet/topology"
)

// SetInput replaces one input of a node. When either the old or the new
// input is a Connection the edit is structural: derived caches are rebuilt
// and StructureChanged is emitted; a pure value change leaves them intact.
//
// A new Connection is validated before mutation: its source must exist in
// the same network scope and must not make the graph cyclic (ErrCycle).
func (e *Engine) SetInput(path []graph.NodeID, id graph.NodeID, index int, input graph.Input) ([]Effect, error) {
	net, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	old, err := node.Input(index)
	if err != nil {
		return nil, fmt.Errorf("%w: node %s index %d", graph.ErrInputOutOfRange, id, index)
	}

	if conn, ok := graph.AsConnection(input); ok {
		if _, exists := net.Node(conn.Node); !exists {
			return nil, fmt.Errorf("%w: connection source %s", graph.ErrNodeNotFound, conn.Node)
		}
		if conn.Node == id || topology.UpstreamOf(net, conn.Node, id) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrCycle, conn.Node, id)
		}
	}

	_, oldConn := graph.AsConnection(old)
	_, newConn := graph.AsConnection(input)
	node.Inputs[index] = input

	if oldConn || newConn {
		return e.rebuild(net, nil), nil
	}
	return nil, nil
}

// SetInputValue replaces the literal data of one input, preserving the
// port visibility the input had before. Re-execution is requested when the
// node is observable at the output.
func (e *Engine) SetInputValue(path []graph.NodeID, id graph.NodeID, index int, value cty.Value) ([]Effect, error) {
	net, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	old, err := node.Input(index)
	if err != nil {
		return nil, fmt.Errorf("%w: node %s index %d", graph.ErrInputOutOfRange, id, index)
	}
	exposed := false
	if v, ok := graph.AsValue(old); ok {
		exposed = v.Exposed
	}

	connected := topology.ConnectedToOutput(net, id)
	effects, err := e.SetInput(path, id, index, graph.Value{Data: value, Exposed: exposed})
	if err != nil {
		return nil, err
	}
	effects = append(effects, PropertiesChanged)
	if connected {
		effects = append(effects, RunGraph)
	}
	return effects, nil
}

// ConnectByLink wires output outIndex of source into the connector-th
// exposed input of target. The connector ordinal counts exposed inputs
// only, matching what the panel displays as ports.
func (e *Engine) ConnectByLink(path []graph.NodeID, source graph.NodeID, outIndex int, target graph.NodeID, connector int) ([]Effect, error) {
	net, node, err := e.node(path, target)
	if err != nil {
		return nil, err
	}
	index, _, err := exposedInput(node, connector)
	if err != nil {
		return nil, err
	}

	connected := topology.ConnectedToOutput(net, target)
	effects, err := e.SetInput(path, target, index, graph.Connection{Node: source, Output: outIndex})
	if err != nil {
		return nil, err
	}
	if connected {
		effects = append(effects, RunGraph)
	}
	return append(effects, SendGraph), nil
}

// Disconnect resets the connector-th exposed input of a node back to its
// registry-declared default, preserving the exposed/hidden flag the input
// had before disconnecting.
func (e *Engine) Disconnect(path []graph.NodeID, id graph.NodeID, connector int) ([]Effect, error) {
	net, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	index, existing, err := exposedInput(node, connector)
	if err != nil {
		return nil, err
	}
	def, ok := registry.DefaultInput(e.reg, node.Type, index)
	if !ok {
		log.Warn("node type {{type}} not in registry", "type", node.Type)
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, node.Type)
	}
	if v, isValue := graph.AsValue(def); isValue {
		v.Exposed = existing.IsExposed()
		def = v
	}

	connected := topology.ConnectedToOutput(net, id)
	effects, err := e.SetInput(path, id, index, def)
	if err != nil {
		return nil, err
	}
	if connected {
		effects = append(effects, RunGraph)
	}
	return append(effects, SendGraph), nil
}

// ExposeInput toggles whether a Value input is shown as a port, then
// re-validates the node's layer shape: when the shape leaves the
// {one connection, one exposed value} form, DisplayAsLayer reverts to off.
func (e *Engine) ExposeInput(path []graph.NodeID, id graph.NodeID, index int, exposed bool) ([]Effect, error) {
	_, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	old, err := node.Input(index)
	if err != nil {
		return nil, fmt.Errorf("%w: node %s index %d", graph.ErrInputOutOfRange, id, index)
	}

	// Determine the replacement input before touching anything.
	var replacement graph.Input
	if v, ok := graph.AsValue(old); ok {
		v.Exposed = exposed
		replacement = v
	} else {
		// A wired or boundary input becomes the declared default literal
		// with the requested visibility.
		def, ok := registry.DefaultInput(e.reg, node.Type, index)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, node.Type)
		}
		v, isValue := graph.AsValue(def)
		if !isValue {
			log.Warn("default for {{type}}[{{index}}] is not a literal", "type", node.Type, "index", index)
			return nil, fmt.Errorf("%w: %q index %d", ErrUnknownNodeType, node.Type, index)
		}
		v.Exposed = exposed
		replacement = v
	}

	effects, err := e.SetInput(path, id, index, replacement)
	if err != nil {
		return nil, err
	}

	// Shape re-validation happens on the post-edit state.
	if node.DisplayAsLayer && !node.ValidLayerShape() {
		node.DisplayAsLayer = false
		effects = append(effects, LayerPanelChanged)
	}
	return append(effects, PropertiesChanged, SendGraph), nil
}

// exposedInput resolves the connector-th exposed input of node to its real
// index. Out-of-range ordinals are a malformed-input error.
func exposedInput(node *graph.Node, connector int) (int, graph.Input, error) {
	if connector >= 0 {
		seen := 0
		for i, in := range node.Inputs {
			if !in.IsExposed() {
				continue
			}
			if seen == connector {
				return i, in, nil
			}
			seen++
		}
	}
	return 0, nil, fmt.Errorf("%w: exposed input %d of node %s", graph.ErrInputOutOfRange, connector, node.ID)
}
