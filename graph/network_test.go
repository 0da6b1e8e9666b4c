package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/verdelin/nodenet/graph"
)

// buildNode creates a primitive node of the given type with the provided
// inputs at the origin.
func buildNode(id graph.NodeID, typ string, inputs ...graph.Input) *graph.Node {
	return &graph.Node{
		ID:               id,
		Type:             typ,
		Inputs:           inputs,
		HasPrimaryOutput: true,
		Visible:          true,
		Impl:             graph.Primitive(typ),
	}
}

// buildChain creates a network out <- n0 <- n1 <- ... <- n(k-1) where "out"
// is the single export and each link is a primary connection.
func buildChain(k int) (*graph.Network, []graph.NodeID) {
	net := graph.NewNetwork()
	ids := make([]graph.NodeID, 0, k)
	prev := graph.NodeID("")
	for i := k - 1; i >= 0; i-- {
		id := graph.NodeID(rune('a' + i))
		var inputs []graph.Input
		if prev != "" {
			inputs = []graph.Input{graph.Connection{Node: prev}}
		} else {
			inputs = []graph.Input{graph.Value{Data: cty.NumberIntVal(0), Exposed: true}}
		}
		net.Insert(buildNode(id, "stroke", inputs...))
		prev = id
		ids = append([]graph.NodeID{id}, ids...)
	}
	out := buildNode("out", "output", graph.Connection{Node: ids[0]})
	net.Insert(out)
	net.Exports = []graph.Port{{Node: "out", Output: 0}}
	return net, ids
}

func TestNetwork_InsertErrors(t *testing.T) {
	net := graph.NewNetwork()
	assert.ErrorIs(t, net.Insert(nil), graph.ErrNilNode)

	require.NoError(t, net.Insert(buildNode("a", "stroke")))
	assert.ErrorIs(t, net.Insert(buildNode("a", "stroke")), graph.ErrDuplicateNode)
}

func TestNetwork_RemoveProtectsBoundary(t *testing.T) {
	net, _ := buildChain(2)
	net.Imports = []graph.NodeID{"a"}

	assert.ErrorIs(t, net.Remove("out"), graph.ErrBoundaryProtected)
	assert.ErrorIs(t, net.Remove("a"), graph.ErrBoundaryProtected)
	assert.ErrorIs(t, net.Remove("missing"), graph.ErrNodeNotFound)
	assert.NoError(t, net.Remove("b"))
	_, ok := net.Node("b")
	assert.False(t, ok)
}

func TestNetwork_NestedPathResolution(t *testing.T) {
	inner := graph.NewNetwork()
	require.NoError(t, inner.Insert(buildNode("leaf", "stroke")))

	compound := buildNode("comp", "group")
	compound.Impl = inner

	root := graph.NewNetwork()
	require.NoError(t, root.Insert(compound))
	require.NoError(t, root.Insert(buildNode("plain", "stroke")))

	got, ok := root.Nested([]graph.NodeID{"comp"})
	require.True(t, ok)
	_, ok = got.Node("leaf")
	assert.True(t, ok)

	// Empty path is the network itself.
	self, ok := root.Nested(nil)
	require.True(t, ok)
	assert.Same(t, root, self)

	// A non-compound segment does not resolve.
	_, ok = root.Nested([]graph.NodeID{"plain"})
	assert.False(t, ok)
	_, ok = root.Nested([]graph.NodeID{"missing"})
	assert.False(t, ok)
}

func TestNetwork_OriginalOutputsFollowStash(t *testing.T) {
	net, ids := buildChain(2)

	assert.True(t, net.OriginalOutputsContain("out"))
	_, hasStash := net.PreviousOutputsContain("out")
	assert.False(t, hasStash)

	// Simulate a preview override.
	net.PreviousExports = append([]graph.Port(nil), net.Exports...)
	net.Exports = []graph.Port{{Node: ids[0], Output: 0}}

	assert.True(t, net.OutputsContain(ids[0]))
	assert.True(t, net.OriginalOutputsContain("out"))
	assert.False(t, net.OriginalOutputsContain(ids[0]))
	was, hasStash := net.PreviousOutputsContain("out")
	assert.True(t, was)
	assert.True(t, hasStash)
}

func TestNetwork_SortedIDsDeterministic(t *testing.T) {
	net, _ := buildChain(3)
	assert.Equal(t, []graph.NodeID{"a", "b", "c", "out"}, net.SortedIDs())
}

func TestNetwork_CopyIsDeep(t *testing.T) {
	net, ids := buildChain(2)
	dup := net.Copy()

	dup.Nodes[ids[0]].Position = graph.IVec2{X: 99, Y: 99}
	dup.Nodes[ids[0]].Inputs[0] = graph.Boundary{}

	assert.Equal(t, graph.IVec2{}, net.Nodes[ids[0]].Position)
	_, isConn := graph.AsConnection(net.Nodes[ids[0]].Inputs[0])
	assert.True(t, isConn)
}

func TestNode_ValidLayerShape(t *testing.T) {
	layer := buildNode("l", "merge",
		graph.Connection{Node: "x"},
		graph.Value{Data: cty.NumberIntVal(1), Exposed: true},
	)
	assert.True(t, layer.ValidLayerShape())

	// A second exposed value breaks the shape.
	layer.Inputs = append(layer.Inputs, graph.Value{Data: cty.True, Exposed: true})
	assert.False(t, layer.ValidLayerShape())

	// Hidden values do not count.
	layer.Inputs[2] = graph.Value{Data: cty.True, Exposed: false}
	assert.True(t, layer.ValidLayerShape())

	layer.HasPrimaryOutput = false
	assert.False(t, layer.ValidLayerShape())
}

func TestNode_MapIDsRewritesAndSevers(t *testing.T) {
	n := buildNode("n", "stroke",
		graph.Connection{Node: "kept", Output: 1},
		graph.Connection{Node: "external"},
	)
	fallback := func(typeName string, index int) (graph.Input, bool) {
		return graph.Value{Data: cty.StringVal(typeName), Exposed: true}, true
	}
	n.MapIDs(map[graph.NodeID]graph.NodeID{"kept": "fresh"}, fallback)

	conn, ok := graph.AsConnection(n.Inputs[0])
	require.True(t, ok)
	assert.Equal(t, graph.NodeID("fresh"), conn.Node)
	assert.Equal(t, 1, conn.Output)

	val, ok := graph.AsValue(n.Inputs[1])
	require.True(t, ok)
	assert.Equal(t, "stroke", val.Data.AsString())
	assert.True(t, val.Exposed)
}

func TestNode_MapIDsNeverLeavesDanglingConnections(t *testing.T) {
	n := buildNode("n", "alien",
		graph.Connection{Node: "external"},
		graph.Connection{Node: "other"},
	)
	noDefault := func(typeName string, index int) (graph.Input, bool) {
		return nil, false
	}

	// Unresolvable externals degrade to exposed nulls, with or without a
	// fallback to consult.
	n.MapIDs(map[graph.NodeID]graph.NodeID{}, noDefault)
	for i := range n.Inputs {
		val, ok := graph.AsValue(n.Inputs[i])
		require.True(t, ok, "input %d must not stay a connection", i)
		assert.True(t, val.Data.IsNull())
		assert.True(t, val.Exposed)
	}

	m := buildNode("m", "alien", graph.Connection{Node: "external"})
	m.MapIDs(nil, nil)
	val, ok := graph.AsValue(m.Inputs[0])
	require.True(t, ok)
	assert.True(t, val.Data.IsNull())
	assert.True(t, val.Exposed)
}
