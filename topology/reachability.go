// Package topology: export connectivity and cycle-freedom checks.

package topology

import (
	"github.com/verdelin/nodenet/graph"
)

// ConnectedToOutput reports whether id is observable at the network's
// current exports: walking upstream from every export node (all edges)
// encounters id. Edits to unconnected nodes never trigger re-execution.
func ConnectedToOutput(net *graph.Network, id graph.NodeID) bool {
	if net == nil {
		return false
	}
	roots := make([]graph.NodeID, 0, len(net.Exports))
	for _, p := range net.Exports {
		roots = append(roots, p.Node)
	}
	flow := UpstreamFlow(net, roots, false)
	for {
		current, ok := flow.Next()
		if !ok {
			return false
		}
		if current == id {
			return true
		}
	}
}

// UpstreamOf reports whether candidate feeds root, directly or transitively,
// following all Connection edges backward from root.
func UpstreamOf(net *graph.Network, root, candidate graph.NodeID) bool {
	flow := UpstreamFlow(net, []graph.NodeID{root}, false)
	for {
		current, ok := flow.Next()
		if !ok {
			return false
		}
		if current == candidate {
			return true
		}
	}
}

// IsAcyclic reports whether the network's Connection edges form a DAG.
//
// Standard three-color depth-first scan over the backward edges; iterative,
// with every node entered at most once, so the check terminates in bounded
// steps regardless of input. Complexity: O(V + E).
func IsAcyclic(net *graph.Network) bool {
	if net == nil {
		return true
	}

	const (
		white = iota // unvisited
		gray         // on the current path
		black        // fully explored
	)
	state := make(map[graph.NodeID]int, len(net.Nodes))

	// frame mirrors one recursion step: the node and its next input index.
	type frame struct {
		id   graph.NodeID
		next int
	}

	for _, start := range net.SortedIDs() {
		if state[start] != white {
			continue
		}
		stack := []frame{{id: start}}
		state[start] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			node, ok := net.Node(top.id)
			if !ok || top.next >= len(node.Inputs) {
				state[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			in := node.Inputs[top.next]
			top.next++
			conn, isConn := graph.AsConnection(in)
			if !isConn {
				continue
			}
			if _, exists := net.Node(conn.Node); !exists {
				continue
			}
			switch state[conn.Node] {
			case gray:
				return false
			case white:
				state[conn.Node] = gray
				stack = append(stack, frame{id: conn.Node})
			}
		}
	}
	return true
}
