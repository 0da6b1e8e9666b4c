// Package mutate: deletion with reconnection and sole-dependent pruning.

package mutate

import (
	"fmt"
	"sort"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/registry"
	"github.com/verdelin/nodenet/topology"
)

// Delete removes ids from the network at path. With reconnect set, each
// deleted node's consumers are bridged to its own primary source, and the
// subtree hanging off its secondary input is pruned of nodes that no
// surviving consumer can observe (sole dependents).
//
// Imports and current export nodes are rejected per id with a warning; the
// rest of the batch proceeds. Unknown ids fail the whole batch up front
// with no mutation.
func (e *Engine) Delete(path []graph.NodeID, ids []graph.NodeID, reconnect bool) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}

	// 1. Validate the batch before anything mutates.
	for _, id := range ids {
		if _, ok := net.Node(id); !ok {
			return nil, fmt.Errorf("%w: %s", graph.ErrNodeNotFound, id)
		}
	}

	// 2. Seed the delete set and, when reconnecting, grow it with the sole
	// dependents of each node's secondary (child) subtree.
	deleteSet := make(map[graph.NodeID]struct{}, len(ids))
	for _, id := range ids {
		deleteSet[id] = struct{}{}
	}
	if reconnect {
		outward := topology.OutwardLinks(net)
		for _, id := range ids {
			node, _ := net.Node(id)
			child, ok := node.SecondaryConnection()
			if !ok {
				continue
			}
			flow := topology.UpstreamFlow(net, []graph.NodeID{child.Node}, false)
			for {
				candidate, more := flow.Next()
				if !more {
					break
				}
				if _, dying := deleteSet[candidate]; dying {
					continue
				}
				if soleDependent(net, outward, candidate, deleteSet, ids) {
					deleteSet[candidate] = struct{}{}
				}
			}
		}
	}

	ordered := make([]graph.NodeID, 0, len(deleteSet))
	for id := range deleteSet {
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	// 3. Re-execution is owed when any dying node was observable.
	var runNeeded bool
	for _, id := range ordered {
		if topology.ConnectedToOutput(net, id) {
			runNeeded = true
			break
		}
	}

	// 4. Detach dying layers from the hierarchy before physical removal.
	if e.structure != nil {
		for _, id := range ordered {
			if node, ok := net.Node(id); ok && node.IsLayer {
				e.structure.Remove(id)
			}
		}
	}

	// 5. Rewrite references, then remove node and selection entry.
	var removed bool
	for _, id := range ordered {
		if e.removeNode(net, id, reconnect) {
			removed = true
		}
	}

	var effects []Effect
	if removed {
		effects = append(effects, SelectionChanged)
		effects = e.rebuild(net, effects)
		if runNeeded {
			effects = append(effects, RunGraph)
		}
		effects = append(effects, SendGraph)
	}
	return effects, nil
}

// soleDependent reports whether every forward path from start terminates
// inside the delete set without reaching an original output through a
// surviving node. Paths hitting a node scheduled for deletion continue
// through that sibling's own forward links, so branches feeding a now-dead
// sibling are still pruned.
//
// The walk is bounded by a visited set plus a step budget; on budget
// exhaustion the candidate is conservatively kept.
func soleDependent(net *graph.Network, outward map[graph.NodeID][]graph.NodeID, start graph.NodeID, deleteSet map[graph.NodeID]struct{}, scheduled []graph.NodeID) bool {
	budget := (len(net.Nodes) + len(scheduled) + 1) * 2
	visited := map[graph.NodeID]struct{}{start: {}}
	stack := []graph.NodeID{start}

	for len(stack) > 0 {
		budget--
		if budget < 0 {
			return false
		}
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, downstream := range outward[current] {
			if net.OriginalOutputsContain(downstream) {
				// A surviving live consumer observes this branch.
				return false
			}
			if _, dying := deleteSet[downstream]; !dying {
				if _, seen := visited[downstream]; !seen {
					visited[downstream] = struct{}{}
					stack = append(stack, downstream)
				}
				continue
			}
			// Sibling continuation: walk on through scheduled nodes whose
			// primary input is the current node.
			for _, sid := range scheduled {
				snode, ok := net.Node(sid)
				if !ok {
					continue
				}
				if conn, ok := snode.PrimaryConnection(); ok && conn.Node == current {
					if _, seen := visited[sid]; !seen {
						visited[sid] = struct{}{}
						stack = append(stack, sid)
					}
				}
			}
		}
	}
	return true
}

// removeNode rewrites all references to id and removes it from the store
// and the selection set. Returns false when the node is boundary-protected
// or a consumer's type cannot be resolved for its replacement default.
func (e *Engine) removeNode(net *graph.Network, id graph.NodeID, reconnect bool) bool {
	if net.IsImport(id) {
		log.Warn("refusing to delete import node {{node}}", "node", id)
		return false
	}
	if net.OutputsContain(id) {
		log.Warn("refusing to delete output node {{node}}", "node", id)
		return false
	}

	// Bridge consumers of the primary output to the deleted node's own
	// primary source when reconnecting.
	var bridge *graph.Connection
	if reconnect {
		if node, ok := net.Node(id); ok {
			if conn, ok := node.PrimaryConnection(); ok {
				bridge = &conn
			}
		}
	}

	for _, survivorID := range net.SortedIDs() {
		if survivorID == id {
			continue
		}
		survivor := net.Nodes[survivorID]
		for index, in := range survivor.Inputs {
			conn, ok := graph.AsConnection(in)
			if !ok || conn.Node != id {
				continue
			}
			if bridge != nil && conn.Output == 0 {
				survivor.Inputs[index] = *bridge
				continue
			}
			def, ok := registry.DefaultInput(e.reg, survivor.Type, index)
			if !ok {
				log.Warn("cannot rewrite input of unregistered type {{type}}", "type", survivor.Type)
				return false
			}
			if v, isValue := graph.AsValue(def); isValue {
				// Detached literal, forced onto the panel as a port.
				v.Exposed = true
				survivor.Inputs[index] = v
			} else {
				survivor.Inputs[index] = def
			}
		}
	}

	if err := net.Remove(id); err != nil {
		log.LogError(err, "removing node", "node", id)
		return false
	}
	e.sel.Remove(id)
	return true
}
