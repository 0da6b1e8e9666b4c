// Package registry resolves node type names to structured descriptors:
// ordered input descriptors (display name, data type, default input) and
// output descriptors (display name, data type).
//
// The mutation engine consults the registry for defaults on insertion,
// disconnection, and reference rewriting, and for layer-shape validation.
// Lookup is keyed by the stable type name and resolved once per node, never
// re-dispatched per access.
//
// Two implementations are provided:
//
//   - Catalog: the in-memory implementation, populated via Register.
//   - Load: fills a Catalog from a YAML type catalog read through a
//     vfs.FileSystem, so tests can feed it from memoryfs.
//
// Data types are cty types (number, string, bool, any, list(...)), matching
// the typed values carried by graph.Value inputs.
//
// Errors:
//
//	ErrDuplicateType  Register called twice for one type name.
//	ErrBadCatalog     catalog file is malformed (wrapped with detail).
//	ErrUnknownType    a catalog entry declares an unknown data type.
package registry
