package mutate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/mutate"
	"github.com/verdelin/nodenet/topology"
)

func TestSetInput_ValueEditIsNotStructural(t *testing.T) {
	e, net := buildChainEngine(t)

	effects, err := e.SetInput(nil, "a", 1, graph.Value{Data: cty.NumberIntVal(5)})
	require.NoError(t, err)
	assert.Empty(t, effects)
	val, _ := graph.AsValue(net.Nodes["a"].Inputs[1])
	assert.True(t, val.Data.RawEquals(cty.NumberIntVal(5)))
}

func TestSetInput_ConnectionEditIsStructural(t *testing.T) {
	e, _ := buildChainEngine(t)

	effects, err := e.SetInput(nil, "a", 1, graph.Connection{Node: "c"})
	require.NoError(t, err)
	assert.Contains(t, effects, mutate.StructureChanged)
	assert.Contains(t, effects, mutate.LayerPanelChanged)
}

func TestSetInput_RejectsCycles(t *testing.T) {
	e, net := buildChainEngine(t)

	// c feeding from a would close a <- b <- c <- a.
	_, err := e.SetInput(nil, "c", 0, graph.Connection{Node: "a"})
	assert.ErrorIs(t, err, mutate.ErrCycle)

	// Self-loops are cycles too.
	_, err = e.SetInput(nil, "a", 0, graph.Connection{Node: "a"})
	assert.ErrorIs(t, err, mutate.ErrCycle)

	assert.True(t, topology.IsAcyclic(net), "rejected edits must leave the graph untouched")
}

func TestSetInput_RejectsUnknownSourceAndIndex(t *testing.T) {
	e, _ := buildChainEngine(t)

	_, err := e.SetInput(nil, "a", 0, graph.Connection{Node: "ghost"})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, err = e.SetInput(nil, "a", 9, graph.Value{})
	assert.ErrorIs(t, err, graph.ErrInputOutOfRange)
}

func TestSetInputValue_PreservesExposureAndTriggersRun(t *testing.T) {
	e, net := buildChainEngine(t)

	// c's input 0 is an exposed literal; a is observable at the export.
	effects, err := e.SetInputValue(nil, "c", 0, cty.StringVal("red"))
	require.NoError(t, err)
	assert.Contains(t, effects, mutate.PropertiesChanged)
	assert.Contains(t, effects, mutate.RunGraph)

	val, _ := graph.AsValue(net.Nodes["c"].Inputs[0])
	assert.True(t, val.Exposed, "exposure survives the value edit")
	assert.True(t, val.Data.RawEquals(cty.StringVal("red")))

	// A node cut off from the export re-executes nothing.
	addNode(t, net, "stray", "stroke", graph.Value{Data: cty.False})
	effects, err = e.SetInputValue(nil, "stray", 0, cty.True)
	require.NoError(t, err)
	assert.NotContains(t, effects, mutate.RunGraph)
}

func TestConnectByLink_ResolvesExposedOrdinal(t *testing.T) {
	e, net := buildChainEngine(t)

	// a's inputs: 0 = exposed connection, 1 = hidden width literal. Expose
	// the width so the node shows two ports, then wire port 1.
	_, err := e.ExposeInput(nil, "a", 1, true)
	require.NoError(t, err)

	effects, err := e.ConnectByLink(nil, "c", 0, "a", 1)
	require.NoError(t, err)
	assert.Contains(t, effects, mutate.SendGraph)
	assert.Contains(t, effects, mutate.RunGraph)

	conn := connTo(t, net, "a", 1)
	assert.Equal(t, graph.NodeID("c"), conn.Node)
}

func TestConnectByLink_OrdinalOutOfRange(t *testing.T) {
	e, _ := buildChainEngine(t)

	// a exposes only one port (the hidden width does not count).
	_, err := e.ConnectByLink(nil, "c", 0, "a", 1)
	assert.ErrorIs(t, err, graph.ErrInputOutOfRange)
}

func TestDisconnect_RestoresRegistryDefault(t *testing.T) {
	e, net := buildChainEngine(t)

	effects, err := e.Disconnect(nil, "a", 0)
	require.NoError(t, err)
	assert.Contains(t, effects, mutate.StructureChanged)
	assert.Contains(t, effects, mutate.SendGraph)

	val, ok := graph.AsValue(net.Nodes["a"].Inputs[0])
	require.True(t, ok, "connection replaced by the declared default literal")
	assert.True(t, val.Exposed, "a disconnected port stays a port")
	assert.True(t, val.Data.IsNull())
}

func TestExposeInput_TogglesLiteralVisibility(t *testing.T) {
	e, net := buildChainEngine(t)

	effects, err := e.ExposeInput(nil, "a", 1, true)
	require.NoError(t, err)
	assert.Contains(t, effects, mutate.PropertiesChanged)
	val, _ := graph.AsValue(net.Nodes["a"].Inputs[1])
	assert.True(t, val.Exposed)

	_, err = e.ExposeInput(nil, "a", 1, false)
	require.NoError(t, err)
	val, _ = graph.AsValue(net.Nodes["a"].Inputs[1])
	assert.False(t, val.Exposed)
}

func TestExposeInput_RevertsInvalidLayerShape(t *testing.T) {
	e, net := buildChainEngine(t)

	// Make a a layer: 1 connection + 1 exposed value is the valid shape.
	_, err := e.ExposeInput(nil, "a", 1, true)
	require.NoError(t, err)
	_, err = e.SetDisplayAsLayer(nil, "a", true)
	require.NoError(t, err)
	require.True(t, net.Nodes["a"].DisplayAsLayer)

	// Hiding the value leaves {1 connection}: no longer layer-shaped.
	effects, err := e.ExposeInput(nil, "a", 1, false)
	require.NoError(t, err)
	assert.False(t, net.Nodes["a"].DisplayAsLayer)
	assert.Contains(t, effects, mutate.LayerPanelChanged)
}
