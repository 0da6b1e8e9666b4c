package mutate

import (
	"fmt"
	"strconv"

	"github.com/verdelin/nodenet/clipboard"
	"github.com/verdelin/nodenet/graph"
)

// Copy serializes the current selection into a clipboard payload. Export
// nodes are skipped. Node ids in the payload are remapped to small
// sequential tokens so that copying the same structure twice yields the
// same bytes regardless of the ids it carried in the store.
func (e *Engine) Copy(path []graph.NodeID) (string, error) {
	net, err := e.network(path)
	if err != nil {
		return "", err
	}
	pairs := e.copyNodes(net, e.sel.IDs())
	return clipboard.Encode(pairs)
}

// Cut copies the selection, then deletes it with reconnection.
func (e *Engine) Cut(path []graph.NodeID) (string, []Effect, error) {
	payload, err := e.Copy(path)
	if err != nil {
		return "", nil, err
	}
	effects, err := e.Delete(path, e.sel.IDs(), true)
	if err != nil {
		return "", nil, err
	}
	return payload, effects, nil
}

// Paste decodes a clipboard payload into the network at path, offset so it
// does not land exactly on occupied positions, and selects the new nodes.
// An empty payload is a silent no-op.
func (e *Engine) Paste(path []graph.NodeID, payload string) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}
	pairs, err := clipboard.Decode(payload)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, nil
	}

	// Nudge the whole group until at least one pasted node lands on a free
	// spot. The group moves as a unit so internal geometry is preserved.
	for {
		collision := false
		for _, p := range pairs {
			if net.OccupiesPosition(p.Node.Position) {
				collision = true
				break
			}
		}
		if !collision {
			break
		}
		for _, p := range pairs {
			p.Node.Position = p.Node.Position.Add(pasteOffset)
		}
	}

	fresh := e.insertRemapped(net, pairs)
	e.sel.Replace(fresh...)

	effects := []Effect{SelectionChanged}
	effects = e.rebuild(net, effects)
	effects = append(effects, SendGraph, PropertiesChanged)
	return effects, nil
}

// Duplicate clones the selected nodes in place, offset slightly, and moves
// the selection onto the clones.
func (e *Engine) Duplicate(path []graph.NodeID) ([]Effect, error) {
	net, err := e.network(path)
	if err != nil {
		return nil, err
	}
	pairs := e.copyNodes(net, e.sel.IDs())
	if len(pairs) == 0 {
		return nil, nil
	}
	for _, p := range pairs {
		p.Node.Position = p.Node.Position.Add(duplicateOffset)
	}

	fresh := e.insertRemapped(net, pairs)
	e.sel.Replace(fresh...)

	effects := []Effect{SelectionChanged}
	effects = e.rebuild(net, effects)
	effects = append(effects, SendGraph)
	return effects, nil
}

// copyNodes deep-copies the listed nodes with ids remapped to sequential
// tokens in selection order. Connections reaching outside the copied set
// are replaced by the consumer type's default input value. Export nodes
// are excluded.
func (e *Engine) copyNodes(net *graph.Network, ids []graph.NodeID) []clipboard.Pair {
	remap := make(map[graph.NodeID]graph.NodeID, len(ids))
	kept := make([]graph.NodeID, 0, len(ids))
	for _, id := range ids {
		if _, ok := net.Node(id); !ok {
			continue
		}
		if net.OutputsContain(id) {
			continue
		}
		remap[id] = graph.NodeID(strconv.Itoa(len(kept)))
		kept = append(kept, id)
	}

	pairs := make([]clipboard.Pair, 0, len(kept))
	for _, id := range kept {
		node := net.Nodes[id].Copy()
		node.MapIDs(remap, e.defaultInput)
		node.ID = remap[id]
		pairs = append(pairs, clipboard.Pair{ID: remap[id], Node: node})
	}
	return pairs
}

// insertRemapped gives every pair a fresh store id, rewires the internal
// connections accordingly, and inserts the nodes. Returns the new ids in
// payload order.
func (e *Engine) insertRemapped(net *graph.Network, pairs []clipboard.Pair) []graph.NodeID {
	remap := make(map[graph.NodeID]graph.NodeID, len(pairs))
	for _, p := range pairs {
		remap[p.ID] = graph.NewNodeID()
	}
	fresh := make([]graph.NodeID, 0, len(pairs))
	for _, p := range pairs {
		p.Node.MapIDs(remap, e.defaultInput)
		p.Node.ID = remap[p.ID]
		if err := net.Insert(p.Node); err != nil {
			log.LogError(err, fmt.Sprintf("inserting pasted node %s", p.Node.ID))
			continue
		}
		fresh = append(fresh, p.Node.ID)
	}
	return fresh
}
