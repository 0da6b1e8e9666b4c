// Package nodenet is the document core of a node-based editor: a nested
// network of computation nodes, the commands that edit it, and the derived
// views the surrounding application renders.
//
// 🚀 What is nodenet?
//
//	An embeddable engine that brings together:
//		• Data model: networks, nodes, tagged inputs (literal / wire / boundary)
//		• Topology: outward links, lazy upstream flow, reachability, acyclicity
//		• Mutation: pure commands returning effects instead of side channels
//		• Layers: a panel tree derived from primary-input chains, never stored
//		• Clipboard: canonical, prefix-tagged copy/paste payloads
//		• Watch: websocket fan-out of snapshots and change notifications
//
// ✨ Why this shape?
//
//   - Explicit addressing – every command takes a path of compound-node ids;
//     there is no ambient "current network" state to desynchronize
//   - Effects, not cascades – commands report what must happen next
//     (re-execute, re-send, refresh) and an external dispatcher does it
//   - Derived, not duplicated – the layer tree and panel rows are recomputed
//     projections of the graph, so they cannot drift from it
//
// Everything is organized under flat subpackages:
//
//	graph/     — Network, Node, Input variants, ids, positions, JSON codec
//	topology/  — OutwardLinks, UpstreamFlow, ConnectedToOutput, IsAcyclic
//	registry/  — node-type descriptors, builtin catalog, YAML loading
//	mutate/    — the Engine and its command surface
//	selection/ — ordered selection set & properties-panel collation
//	layers/    — layer hierarchy derivation & panel entries
//	clipboard/ — copy/paste payload codec
//	watch/     — websocket hub, graph snapshots, effect dispatch
//
// Quick ASCII example:
//
//	out ◄── layer ◄── base
//	          │
//	          └── blur ◄── stroke
//
//	a layer on the primary chain with a private effect stack on its
//	secondary input.
//
//	go get github.com/verdelin/nodenet
package nodenet
