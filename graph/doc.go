// Package graph defines the node-network data model and its owning store:
// nodes, typed inputs, import/export boundaries, and nested sub-networks.
//
// What:
//
//   - NodeID: opaque, uuid-minted identifier, unique within one network.
//   - Input: tagged variant — Value (a literal, optionally exposed as a
//     port), Connection (a reference to another node's output), and
//     Boundary (a placeholder used at a network's input boundary).
//   - Node: type name, alias, ordered inputs (index 0 = primary), display
//     flags, integer grid position, and an implementation that is either a
//     Primitive operation tag or a nested *Network.
//   - Network: the arena — nodes keyed by NodeID, ordered import ids,
//     ordered export ports, and an optional preview stash of the exports.
//
// Why:
//
//   - All edges are id references into the arena, never pointers, so cycles
//     cannot leak memory and existence checks are O(1) before traversal.
//   - The store owns referential bookkeeping only; editing rules live in
//     package mutate, reachability in package topology.
//
// Invariants (maintained by callers, checked where cheap):
//
//   - Connection edges form an acyclic graph.
//   - Imports and current export nodes are never removed by Remove.
//   - At most one outstanding preview stash per network.
//
// Errors:
//
//   - ErrNilNode            nil node passed to Insert.
//   - ErrDuplicateNode      Insert with an id already present.
//   - ErrNodeNotFound       operation referenced a missing node.
//   - ErrNetworkNotFound    a nested path does not resolve to a network.
//   - ErrBoundaryProtected  Remove targeted an import or current export.
//   - ErrInputOutOfRange    an input index exceeds a node's input list.
//
// The model is exclusively owned by a single edit turn (see package mutate);
// no internal locking is performed.
package graph
