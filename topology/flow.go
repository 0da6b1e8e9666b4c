// Package topology: the forward link index and the backward flow iterator.

package topology

import (
	"github.com/verdelin/nodenet/graph"
)

// OutwardLinks builds the forward index of net: for every node id, the ids
// of the nodes consuming one of its outputs through a Connection input.
//
// The index is derived by scanning all inputs once, in sorted node order so
// consumer lists are deterministic. It must be rebuilt after any edit that
// adds or removes a Connection edge. Complexity: O(V + E).
func OutwardLinks(net *graph.Network) map[graph.NodeID][]graph.NodeID {
	links := make(map[graph.NodeID][]graph.NodeID)
	if net == nil {
		return links
	}
	for _, id := range net.SortedIDs() {
		node := net.Nodes[id]
		for _, in := range node.Inputs {
			if conn, ok := graph.AsConnection(in); ok {
				links[conn.Node] = append(links[conn.Node], id)
			}
		}
	}
	return links
}

// Flow is a lazy backward walk over Connection inputs. It is finite (each
// node is yielded at most once) and non-restartable: once Next returns
// false it keeps returning false.
type Flow struct {
	net         *graph.Network
	stack       []graph.NodeID
	visited     map[graph.NodeID]struct{}
	primaryOnly bool
}

// UpstreamFlow starts a walk from roots, following Connection inputs
// backward. Roots themselves are yielded first, provided they exist in the
// network. When primaryOnly is set only index-0 edges are followed,
// otherwise all connection inputs are.
//
// A nil network yields an empty flow.
func UpstreamFlow(net *graph.Network, roots []graph.NodeID, primaryOnly bool) *Flow {
	f := &Flow{
		net:         net,
		visited:     make(map[graph.NodeID]struct{}, len(roots)),
		primaryOnly: primaryOnly,
	}
	if net != nil {
		// Reverse-push so Next yields roots in their given order.
		for i := len(roots) - 1; i >= 0; i-- {
			f.stack = append(f.stack, roots[i])
		}
	}
	return f
}

// Next yields the next reachable node id, or false when the walk is done.
// Ids that do not resolve in the network are skipped.
func (f *Flow) Next() (graph.NodeID, bool) {
	for len(f.stack) > 0 {
		id := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		if _, seen := f.visited[id]; seen {
			continue
		}
		f.visited[id] = struct{}{}

		node, ok := f.net.Node(id)
		if !ok {
			continue
		}

		// Queue the node's upstream sources before yielding it.
		limit := len(node.Inputs)
		if f.primaryOnly && limit > 1 {
			limit = 1
		}
		for i := limit - 1; i >= 0; i-- {
			if conn, ok := graph.AsConnection(node.Inputs[i]); ok {
				if _, seen := f.visited[conn.Node]; !seen {
					f.stack = append(f.stack, conn.Node)
				}
			}
		}
		return id, true
	}
	return "", false
}

// Collect drains the flow into a slice. Intended for call sites that need
// the full reachable set anyway; prefer Next for early-exit scans.
func (f *Flow) Collect() []graph.NodeID {
	var ids []graph.NodeID
	for {
		id, ok := f.Next()
		if !ok {
			return ids
		}
		ids = append(ids, id)
	}
}
