// Package mutate: effects, sentinel errors, and layout constants.

package mutate

import (
	"errors"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/selection"
)

// Spacing is the minimum horizontal distance, in grid units, that Shift
// maintains between a node and its neighbors.
const Spacing = 8

// duplicateOffset displaces duplicated nodes from their originals.
var duplicateOffset = graph.IVec2{X: 2, Y: 2}

// pasteOffset is applied repeatedly to a pasted cluster until no pasted
// node lands exactly on an existing one.
var pasteOffset = graph.IVec2{X: 2, Y: 2}

// Sentinel errors of the engine. Store-level conditions reuse the graph
// package sentinels (graph.ErrNodeNotFound, graph.ErrNetworkNotFound,
// graph.ErrInputOutOfRange, graph.ErrBoundaryProtected).
var (
	// ErrCycle indicates a connection that would make the network cyclic.
	ErrCycle = errors.New("mutate: connection would create a cycle")

	// ErrUnknownNodeType indicates a type name the registry cannot resolve.
	ErrUnknownNodeType = errors.New("mutate: node type not in registry")

	// ErrNotCompound indicates a descend into a node without a nested network.
	ErrNotCompound = errors.New("mutate: node has no nested network")
)

// Effect is one follow-up action requested by an operation, to be executed
// by the embedding dispatcher after the command returns. Effects are
// ordered; duplicates are allowed and may be coalesced by the dispatcher.
type Effect int

const (
	// StructureChanged: connection topology or node population changed;
	// derived caches were rebuilt.
	StructureChanged Effect = iota

	// SelectionChanged: the selection set was modified.
	SelectionChanged

	// RunGraph: an observable part of the network changed; re-execute.
	RunGraph

	// SendGraph: push a fresh graph snapshot (nodes + links) to consumers.
	SendGraph

	// LayerPanelChanged: the derived layer entries need re-publishing.
	LayerPanelChanged

	// PropertiesChanged: the properties panel must refresh.
	PropertiesChanged
)

// String names the effect for logs and wire payloads.
func (e Effect) String() string {
	switch e {
	case StructureChanged:
		return "structure-changed"
	case SelectionChanged:
		return "selection-changed"
	case RunGraph:
		return "run-graph"
	case SendGraph:
		return "graph-snapshot"
	case LayerPanelChanged:
		return "layer-panel-changed"
	case PropertiesChanged:
		return "properties-changed"
	default:
		return "unknown"
	}
}

// Structure is the layer-hierarchy collaborator notified of structural
// edits. *layers.Structure implements it; the engine works without one.
type Structure interface {
	// Rebuild re-derives the layer tree after a structural edit.
	Rebuild(net *graph.Network, sel *selection.Set)

	// Remove detaches a layer ahead of its physical deletion.
	Remove(id graph.NodeID)
}
