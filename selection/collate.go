// Package selection: properties-panel collation.

package selection

import (
	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/topology"
)

// Collate returns the node ids whose properties the panel should show for
// the current selection, in display order. A nil or empty result means the
// panel shows nothing.
//
// Rules (see package doc): with no layer selected every selected node is
// shown independently; with exactly one layer selected the layer's local
// chain is flattened by walking upstream (all edges) and stopping before
// the next layer; any other combination is ambiguous.
func Collate(net *graph.Network, sel *Set) []graph.NodeID {
	if net == nil || sel == nil {
		return nil
	}

	// 1. Partition the selection into layers and plain nodes.
	var layers, nodes []graph.NodeID
	for _, id := range sel.IDs() {
		node, ok := net.Node(id)
		if !ok {
			continue
		}
		if node.IsLayer {
			layers = append(layers, id)
		} else {
			nodes = append(nodes, id)
		}
	}

	switch len(layers) {
	case 0:
		// 2a. Plain nodes only: each selected node stands alone.
		return nodes

	case 1:
		// 2b. One layer: every other selected node must feed it.
		layer := layers[0]
		for _, id := range nodes {
			if !topology.UpstreamOf(net, layer, id) {
				return nil
			}
		}

		// 3. Flatten the layer's local chain: walk upstream and cut before
		// the next layer, which is where horizontal flow turns vertical.
		var shown []graph.NodeID
		flow := topology.UpstreamFlow(net, []graph.NodeID{layer}, false)
		for {
			id, ok := flow.Next()
			if !ok {
				return shown
			}
			node, ok := net.Node(id)
			if !ok {
				continue
			}
			if len(shown) > 0 && node.IsLayer {
				return shown
			}
			shown = append(shown, id)
		}

	default:
		// 2c. Multiple layers: ambiguous.
		return nil
	}
}
