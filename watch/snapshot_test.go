package watch_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/mutate"
	"github.com/verdelin/nodenet/registry"
	"github.com/verdelin/nodenet/selection"
	"github.com/verdelin/nodenet/watch"
)

func buildCatalog(t *testing.T) *registry.Catalog {
	t.Helper()
	cat := registry.NewCatalog()
	require.NoError(t, cat.Register(&registry.Descriptor{
		Type: "stroke",
		Inputs: []registry.InputDescriptor{
			{Name: "Primary", Type: cty.DynamicPseudoType, Default: graph.Value{Data: cty.NullVal(cty.DynamicPseudoType), Exposed: true}},
			{Name: "Width", Type: cty.Number, Default: graph.Value{Data: cty.NumberIntVal(1)}},
		},
		Outputs: []registry.OutputDescriptor{{Name: "Out", Type: cty.DynamicPseudoType}},
	}))
	return cat
}

func buildNet(t *testing.T) *graph.Network {
	t.Helper()
	net := graph.NewNetwork()
	require.NoError(t, net.Insert(&graph.Node{
		ID:   "a",
		Type: "stroke",
		Inputs: []graph.Input{
			graph.Value{Data: cty.NullVal(cty.DynamicPseudoType), Exposed: true},
			graph.Value{Data: cty.NumberIntVal(2)},
		},
		HasPrimaryOutput: true,
		Visible:          true,
		Impl:             graph.Primitive("stroke"),
	}))
	require.NoError(t, net.Insert(&graph.Node{
		ID:    "b",
		Type:  "stroke",
		Alias: "Outline",
		Inputs: []graph.Input{
			graph.Connection{Node: "a"},
			graph.Value{Data: cty.NumberIntVal(3), Exposed: true},
		},
		HasPrimaryOutput: true,
		Visible:          true,
		Impl:             graph.Primitive("stroke"),
	}))
	net.Exports = []graph.Port{{Node: "b", Output: 0}}
	return net
}

func TestSnapshot_LinksCountExposedPortsOnly(t *testing.T) {
	view := watch.Snapshot(buildNet(t), buildCatalog(t))

	require.Len(t, view.Links, 1)
	link := view.Links[0]
	assert.Equal(t, graph.NodeID("a"), link.Start)
	assert.Equal(t, 0, link.StartOutput)
	assert.Equal(t, graph.NodeID("b"), link.End)
	assert.Equal(t, 0, link.EndInput)
}

func TestSnapshot_NodeViews(t *testing.T) {
	view := watch.Snapshot(buildNet(t), buildCatalog(t))
	require.Len(t, view.Nodes, 2)

	a, b := view.Nodes[0], view.Nodes[1]
	require.Equal(t, graph.NodeID("a"), a.ID)
	assert.Equal(t, "stroke", a.Alias, "alias falls back to the type name")
	require.NotNil(t, a.PrimaryInput)
	assert.Equal(t, "Primary", a.PrimaryInput.Name)
	assert.Empty(t, a.ExposedInputs, "the hidden width is not a port")
	require.NotNil(t, a.PrimaryOutput)
	assert.Equal(t, graph.NodeID("b"), a.PrimaryOutput.Connected)
	assert.False(t, a.Previewed)

	assert.Equal(t, "Outline", b.Alias)
	require.NotNil(t, b.PrimaryInput)
	assert.Equal(t, graph.NodeID("a"), b.PrimaryInput.Connected)
	require.Len(t, b.ExposedInputs, 1)
	assert.Equal(t, "Width", b.ExposedInputs[0].Name)
	assert.Equal(t, "number", b.ExposedInputs[0].DataType)
	assert.True(t, b.Previewed, "export nodes render as previewed")
}

func TestSnapshot_SkipsUnregisteredTypes(t *testing.T) {
	net := buildNet(t)
	require.NoError(t, net.Insert(&graph.Node{ID: "z", Type: "hologram", Visible: true, Impl: graph.Primitive("hologram")}))

	view := watch.Snapshot(net, buildCatalog(t))
	assert.Len(t, view.Nodes, 2)
}

func TestDispatch_TranslatesEffects(t *testing.T) {
	hub := watch.NewHub()
	all := &recorder{}
	hub.Subscribe(all)

	net := buildNet(t)
	sel := selection.NewSet()
	sel.Add("a")

	watch.Dispatch(hub, []mutate.Effect{mutate.SendGraph, mutate.SelectionChanged, mutate.RunGraph}, net, buildCatalog(t), sel)
	require.Len(t, all.events, 3)

	assert.Equal(t, "graph-snapshot", all.events[0].Kind)
	var view watch.GraphView
	require.NoError(t, json.Unmarshal(all.events[0].Payload, &view))
	assert.Len(t, view.Nodes, 2)

	assert.Equal(t, "selection-changed", all.events[1].Kind)
	var ids []graph.NodeID
	require.NoError(t, json.Unmarshal(all.events[1].Payload, &ids))
	assert.Equal(t, []graph.NodeID{"a"}, ids)

	assert.Equal(t, "run-graph", all.events[2].Kind)
	assert.Empty(t, all.events[2].Payload)
}
