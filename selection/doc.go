// Package selection tracks the set of selected node identifiers and derives
// the properties-panel content from it.
//
// Set keeps insertion order and uniqueness; it is consumed by the mutation
// engine (delete and duplicate targets) and by Collate, which implements the
// panel rules:
//
//   - zero layers selected: show properties for each selected node,
//   - exactly one layer selected: flatten that layer's local upstream chain,
//     provided every other selected node feeds it; stop before the next
//     layer so nested layers are never crossed,
//   - more than one layer selected: ambiguous, show nothing.
package selection
