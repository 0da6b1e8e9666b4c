package mutate

import (
	"fmt"

	"github.com/verdelin/nodenet/graph"
)

// Move translates every listed node by delta. Unknown ids fail the whole
// batch with no mutation.
func (e *Engine) Move(path []graph.NodeID, ids []graph.NodeID, delta graph.IVec2) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := net.Node(id); !ok {
			return nil, fmt.Errorf("%w: %s", graph.ErrNodeNotFound, id)
		}
	}
	for _, id := range ids {
		node := net.Nodes[id]
		node.Position = node.Position.Add(delta)
	}
	return []Effect{SendGraph}, nil
}

// Shift moves the node at id horizontally by displacement and cascades the
// shift downstream so that every consumer keeps at least Spacing columns of
// clearance from its producers. A zero displacement still runs the cascade,
// restoring clearance around a node placed on top of its neighbors.
func (e *Engine) Shift(path []graph.NodeID, id graph.NodeID, displacement int) ([]Effect, error) {
	net, node, err := e.node(path, id)
	if err != nil {
		return nil, err
	}
	node.Position.X += displacement

	// Re-establish clearance against the shifted node's own producers
	// before cascading to its consumers.
	for _, in := range node.Inputs {
		conn, ok := graph.AsConnection(in)
		if !ok {
			continue
		}
		producer, ok := net.Node(conn.Node)
		if !ok {
			continue
		}
		shiftDescendants(net, producer, node, map[graph.NodeID]struct{}{id: {}})
	}

	visited := map[graph.NodeID]struct{}{}
	shiftConsumers(net, id, node, visited)
	return []Effect{SendGraph}, nil
}

// requiredShift is how far right must move to keep Spacing clearance from
// left. A right node already left of its producer is considered manually
// arranged and is never pushed.
func requiredShift(left, right graph.IVec2) int {
	if right.X < left.X {
		return 0
	}
	if gap := right.X - left.X; gap < Spacing {
		return Spacing - gap
	}
	return 0
}

func shiftConsumers(net *graph.Network, producerID graph.NodeID, producer *graph.Node, visited map[graph.NodeID]struct{}) {
	for _, consumerID := range net.SortedIDs() {
		if _, seen := visited[consumerID]; seen {
			continue
		}
		consumer := net.Nodes[consumerID]
		var feeds bool
		for _, in := range consumer.Inputs {
			if conn, ok := graph.AsConnection(in); ok && conn.Node == producerID {
				feeds = true
				break
			}
		}
		if !feeds {
			continue
		}
		shiftDescendants(net, producer, consumer, visited)
	}
}

func shiftDescendants(net *graph.Network, producer, consumer *graph.Node, visited map[graph.NodeID]struct{}) {
	shift := requiredShift(producer.Position, consumer.Position)
	if shift == 0 {
		return
	}
	consumer.Position.X += shift
	visited[consumer.ID] = struct{}{}
	shiftConsumers(net, consumer.ID, consumer, visited)
}
