// Package layers projects a parent/child tree out of a network's DAG and
// derives the read-only layer-panel view from it.
//
// What:
//
//   - Structure: the derived tree. Top-level layers are the IsLayer nodes
//     found on the primary-input chain walking back from the network's
//     exports; each layer's children are the layer nodes on the primary
//     chain hanging off its secondary (index-1) input.
//   - Classification: Artboard, Folder, or Layer, decided by external
//     Metadata predicates.
//   - Entries: panel rows carrying the classification, depth, and the
//     inherited visibility/lock state.
//
// Effective visibility (and lock) of a layer is the AND of its own flag and
// every strict ancestor's flag. It is computed on demand from the node
// flags and never stored redundantly.
//
// The structure is a cache: the mutation engine calls Rebuild after every
// structural edit, and Remove when a layer node is about to be deleted.
package layers
