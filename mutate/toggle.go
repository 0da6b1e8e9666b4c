package mutate

import (
	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/topology"
)

// SetDisplayAsLayer sets whether an eligible node is rendered as a layer.
// Nodes without a primary output cannot be layers; asking to enable layer
// display on a node whose input shape does not qualify is forced back off
// with a warning rather than rejected.
func (e *Engine) SetDisplayAsLayer(path []graph.NodeID, id graph.NodeID, display bool) ([]Effect, error) {
	net, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	if !node.HasPrimaryOutput {
		log.Warn("node {{node}} has no primary output, cannot display as layer", "node", id)
		return nil, nil
	}
	if display && !node.ValidLayerShape() {
		log.Warn("node {{node}} input shape does not qualify as a layer", "node", id)
		display = false
	}
	if node.DisplayAsLayer == display {
		return nil, nil
	}
	node.DisplayAsLayer = display
	node.IsLayer = display

	effects := e.rebuild(net, nil)
	effects = append(effects, RunGraph, SendGraph)
	return effects, nil
}

// ToggleSelectedAsLayers flips layer display on every selected eligible
// node: if any selected node is displayed as a layer, all are switched off,
// otherwise all eligible ones are switched on.
func (e *Engine) ToggleSelectedAsLayers(path []graph.NodeID) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}
	var anyLayer bool
	for _, id := range e.sel.IDs() {
		if node, ok := net.Node(id); ok && node.DisplayAsLayer {
			anyLayer = true
			break
		}
	}
	var effects []Effect
	for _, id := range e.sel.IDs() {
		more, err := e.SetDisplayAsLayer(path, id, !anyLayer)
		if err != nil {
			return nil, err
		}
		effects = mergeEffects(effects, more)
	}
	return effects, nil
}

// SetVisibility sets a node's visibility flag. Import and export nodes may
// always be shown but never hidden.
func (e *Engine) SetVisibility(path []graph.NodeID, id graph.NodeID, visible bool) ([]Effect, error) {
	net, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	if !visible && net.IsBoundary(id) {
		log.Warn("refusing to hide boundary node {{node}}", "node", id)
		return nil, nil
	}
	if node.Visible == visible {
		return nil, nil
	}
	node.Visible = visible

	var effects []Effect
	if topology.ConnectedToOutput(net, id) {
		effects = append(effects, RunGraph)
	}
	effects = e.rebuild(net, effects)
	effects = append(effects, SendGraph)
	return effects, nil
}

// ToggleVisibility flips a node's visibility flag.
func (e *Engine) ToggleVisibility(path []graph.NodeID, id graph.NodeID) ([]Effect, error) {
	_, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	return e.SetVisibility(path, id, !node.Visible)
}

// ToggleSelectedVisibility hides the whole selection when every selected
// node is visible, and shows the whole selection otherwise.
func (e *Engine) ToggleSelectedVisibility(path []graph.NodeID) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}
	allVisible := true
	for _, id := range e.sel.IDs() {
		if node, ok := net.Node(id); ok && !node.Visible {
			allVisible = false
			break
		}
	}
	var effects []Effect
	for _, id := range e.sel.IDs() {
		more, err := e.SetVisibility(path, id, !allVisible)
		if err != nil {
			return nil, err
		}
		effects = mergeEffects(effects, more)
	}
	return effects, nil
}

// SetLocked sets a node's locked flag. Import and export nodes may always
// be unlocked but never locked.
func (e *Engine) SetLocked(path []graph.NodeID, id graph.NodeID, locked bool) ([]Effect, error) {
	net, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	if locked && net.IsBoundary(id) {
		log.Warn("refusing to lock boundary node {{node}}", "node", id)
		return nil, nil
	}
	if node.Locked == locked {
		return nil, nil
	}
	node.Locked = locked

	var effects []Effect
	if topology.ConnectedToOutput(net, id) {
		effects = append(effects, RunGraph)
	}
	effects = e.rebuild(net, effects)
	effects = append(effects, SendGraph)
	return effects, nil
}

// ToggleLocked flips a node's locked flag.
func (e *Engine) ToggleLocked(path []graph.NodeID, id graph.NodeID) ([]Effect, error) {
	_, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	return e.SetLocked(path, id, !node.Locked)
}

// ToggleSelectedLocked locks the whole selection unless any selected node
// is already locked, in which case everything is unlocked.
func (e *Engine) ToggleSelectedLocked(path []graph.NodeID) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}
	anyLocked := false
	for _, id := range e.sel.IDs() {
		if node, ok := net.Node(id); ok && node.Locked {
			anyLocked = true
			break
		}
	}
	var effects []Effect
	for _, id := range e.sel.IDs() {
		more, err := e.SetLocked(path, id, !anyLocked)
		if err != nil {
			return nil, err
		}
		effects = mergeEffects(effects, more)
	}
	return effects, nil
}

// TogglePreview points the network's first export at the node's primary
// output, stashing the current exports so a second toggle restores them
// exactly. Toggling a node that is already previewed restores the stash.
func (e *Engine) TogglePreview(path []graph.NodeID, id graph.NodeID) ([]Effect, error) {
	net, _, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	switch {
	case !net.OutputsContain(id):
		if net.PreviousExports == nil {
			stash := make([]graph.Port, len(net.Exports))
			copy(stash, net.Exports)
			net.PreviousExports = stash
		}
		port := graph.Port{Node: id, Output: 0}
		if len(net.Exports) == 0 {
			net.Exports = []graph.Port{port}
		} else {
			net.Exports[0] = port
		}
	case net.PreviousExports != nil:
		net.Exports = net.PreviousExports
		net.PreviousExports = nil
	default:
		// Previewing a node that is a genuine export already.
		return nil, nil
	}
	return []Effect{RunGraph}, nil
}

// mergeEffects unions two effect lists preserving first-seen order.
func mergeEffects(base, more []Effect) []Effect {
	for _, eff := range more {
		seen := false
		for _, have := range base {
			if have == eff {
				seen = true
				break
			}
		}
		if !seen {
			base = append(base, eff)
		}
	}
	return base
}
