package watch

import (
	"encoding/json"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/mutate"
	"github.com/verdelin/nodenet/registry"
	"github.com/verdelin/nodenet/selection"
)

// Link is one rendered wire: producer output to consumer input. EndInput
// counts exposed inputs only, matching the ports the consumer displays.
type Link struct {
	Start       graph.NodeID `json:"start"`
	StartOutput int          `json:"startOutput"`
	End         graph.NodeID `json:"end"`
	EndInput    int          `json:"endInput"`
}

// PortView is one rendered input or output connector.
type PortView struct {
	Name      string       `json:"name"`
	DataType  string       `json:"dataType"`
	Connected graph.NodeID `json:"connected,omitempty"`
}

// NodeView is one rendered node.
type NodeView struct {
	ID             graph.NodeID `json:"id"`
	Type           string       `json:"type"`
	Alias          string       `json:"alias"`
	IsLayer        bool         `json:"isLayer"`
	PrimaryInput   *PortView    `json:"primaryInput,omitempty"`
	ExposedInputs  []PortView   `json:"exposedInputs"`
	PrimaryOutput  *PortView    `json:"primaryOutput,omitempty"`
	ExposedOutputs []PortView   `json:"exposedOutputs"`
	Position       graph.IVec2  `json:"position"`
	Previewed      bool         `json:"previewed"`
	Visible        bool         `json:"visible"`
	Locked         bool         `json:"locked"`
}

// GraphView is the full snapshot payload for one network.
type GraphView struct {
	Nodes []NodeView `json:"nodes"`
	Links []Link     `json:"links"`
}

// Snapshot renders the network into the wire representation. Nodes whose
// type is not in the registry are skipped with a warning; their wires are
// still emitted so partial catalogs stay debuggable.
func Snapshot(net *graph.Network, reg registry.Registry) *GraphView {
	links := collectLinks(net)
	return &GraphView{Nodes: collectNodes(net, reg, links), Links: links}
}

func collectLinks(net *graph.Network) []Link {
	var links []Link
	for _, end := range net.SortedIDs() {
		node := net.Nodes[end]
		exposed := 0
		for _, in := range node.Inputs {
			if !in.IsExposed() {
				continue
			}
			if conn, ok := graph.AsConnection(in); ok {
				links = append(links, Link{
					Start:       conn.Node,
					StartOutput: conn.Output,
					End:         end,
					EndInput:    exposed,
				})
			}
			exposed++
		}
	}
	return links
}

func collectNodes(net *graph.Network, reg registry.Registry, links []Link) []NodeView {
	// Producer port to consumer, for the "connected" decoration on outputs.
	consumers := make(map[graph.Port]graph.NodeID, len(links))
	for _, link := range links {
		consumers[graph.Port{Node: link.Start, Output: link.StartOutput}] = link.End
	}

	var nodes []NodeView
	for _, id := range net.SortedIDs() {
		node := net.Nodes[id]
		desc, ok := reg.Lookup(node.Type)
		if !ok {
			log.Warn("node type {{type}} not in registry, skipped in snapshot", "type", node.Type)
			continue
		}

		var inputs []PortView
		for index, in := range node.Inputs {
			if !in.IsExposed() {
				continue
			}
			view := PortView{Name: node.Type, DataType: "any"}
			if index < len(desc.Inputs) {
				view.Name = desc.Inputs[index].Name
				view.DataType = desc.Inputs[index].Type.FriendlyName()
			}
			if conn, ok := graph.AsConnection(in); ok {
				view.Connected = conn.Node
			}
			inputs = append(inputs, view)
		}

		var outputs []PortView
		for index, out := range desc.Outputs {
			outputs = append(outputs, PortView{
				Name:      out.Name,
				DataType:  out.Type.FriendlyName(),
				Connected: consumers[graph.Port{Node: id, Output: index}],
			})
		}

		view := NodeView{
			ID:             id,
			Type:           node.Type,
			Alias:          alias(node),
			IsLayer:        node.DisplayAsLayer,
			ExposedInputs:  inputs,
			ExposedOutputs: outputs,
			Position:       node.Position,
			Previewed:      net.OutputsContain(id),
			Visible:        node.Visible,
			Locked:         node.Locked,
		}
		if len(view.ExposedInputs) > 0 && len(node.Inputs) > 0 && node.Inputs[0].IsExposed() {
			view.PrimaryInput = &view.ExposedInputs[0]
			view.ExposedInputs = view.ExposedInputs[1:]
		}
		if node.HasPrimaryOutput && len(view.ExposedOutputs) > 0 {
			view.PrimaryOutput = &view.ExposedOutputs[0]
			view.ExposedOutputs = view.ExposedOutputs[1:]
		}
		nodes = append(nodes, view)
	}
	return nodes
}

func alias(node *graph.Node) string {
	if node.Alias != "" {
		return node.Alias
	}
	return node.Type
}

// Dispatch publishes one event per engine effect. SendGraph ships a full
// Snapshot, SelectionChanged ships the selected ids, everything else is a
// bare notification. Marshal failures are logged and the event dropped.
func Dispatch(hub *Hub, effects []mutate.Effect, net *graph.Network, reg registry.Registry, sel *selection.Set) {
	for _, effect := range effects {
		event := Event{Kind: effect.String()}
		var payload any
		switch effect {
		case mutate.SendGraph:
			payload = Snapshot(net, reg)
		case mutate.SelectionChanged:
			payload = sel.IDs()
		}
		if payload != nil {
			data, err := json.Marshal(payload)
			if err != nil {
				log.LogError(err, "encoding event payload", "kind", event.Kind)
				continue
			}
			event.Payload = data
		}
		hub.Publish(event)
	}
}
