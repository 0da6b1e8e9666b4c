// Package mutate is the editing engine of the node network: insertion,
// deletion with reconnection, disconnection, duplication and copy/paste
// with identifier remapping, spacing-preserving movement, layer and
// visibility toggles, and preview overrides.
//
// Every operation is a pure step from (state, command) to (state', effects):
// it resolves the addressed network from an explicit path, validates every
// referenced network/node/input index, mutates the store, rebuilds the
// derived layer structure when connection topology changed, and returns the
// ordered list of follow-up Effects. An external dispatcher executes the
// effects (re-run the graph, push a snapshot, refresh panels); the engine
// itself never depends on a message-passing runtime.
//
// Error policy:
//
//   - not-found (missing network/node/index): the operation is a no-op and
//     returns the wrapped sentinel; no partial mutation occurs.
//   - boundary-protected (deleting/hiding/locking an import or current
//     export): rejected per id with a warning, the rest of a batch
//     proceeds.
//   - malformed input (bad paste payload, out-of-range index): rejected
//     before any mutation.
//   - shape-invalid (layer toggle on an ineligible node): auto-corrected by
//     forcing DisplayAsLayer off rather than erroring.
//
// Nothing escapes as a fault: after any operation returns, the store is
// acyclic and referentially consistent again.
//
// Concurrency: single-threaded by contract. Each command runs to completion
// on the one edit turn; the store is never observed mid-command, and no
// locking exists because there is no concurrent mutator.
package mutate
