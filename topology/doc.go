// Package topology answers reachability questions over a graph.Network:
// which nodes consume a given output (outward links), which nodes feed a
// set of roots (upstream flow), whether a node is still observable at the
// network's exports, and whether the connection edges are cycle-free.
//
// What:
//
//   - OutwardLinks: the forward index — for every node, the consumers that
//     reference one of its outputs. Rebuilt whenever structure changes.
//   - UpstreamFlow: a lazy, finite, non-restartable walk backward along
//     Connection inputs from a set of roots, optionally restricted to
//     primary (index-0) edges.
//   - ConnectedToOutput: whether the current export set can observe a node.
//   - IsAcyclic: a termination-bounded validity check.
//
// Why:
//
//   - Deletion-with-reconnection needs both directions: upstream flow seeds
//     candidates, outward links drive the sole-dependent test.
//   - Edits only trigger re-execution when they touch something the output
//     can observe.
//
// All walks are bounded by visited-set tracking, so they terminate in a
// bounded number of steps per node even if misused on a graph holding an
// accidental cycle. That is a defensive property, not a cycle detector;
// use IsAcyclic for validation.
//
// Complexity: every query in this package is O(V + E) worst case and
// allocates O(V) for bookkeeping.
package topology
