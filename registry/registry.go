// Package registry: descriptor types and the in-memory Catalog.

package registry

import (
	"errors"

	"github.com/zclconf/go-cty/cty"

	"github.com/verdelin/nodenet/graph"
)

var (
	// ErrDuplicateType indicates Register was called twice for one name.
	ErrDuplicateType = errors.New("registry: type already registered")

	// ErrBadCatalog indicates a malformed catalog file.
	ErrBadCatalog = errors.New("registry: malformed type catalog")

	// ErrUnknownType indicates a catalog entry declared an unknown data type.
	ErrUnknownType = errors.New("registry: unknown data type")
)

// InputDescriptor describes one ordered input of a node type.
type InputDescriptor struct {
	// Name is the display name of the input.
	Name string

	// Type is the data-type tag of values accepted on this input.
	Type cty.Type

	// Default is the input installed on insert, disconnect, and reference
	// rewrite. Usually a graph.Value; its exposed flag is the declared
	// default port visibility.
	Default graph.Input
}

// OutputDescriptor describes one ordered output of a node type.
type OutputDescriptor struct {
	Name string
	Type cty.Type
}

// Descriptor is the structured description of one node type.
type Descriptor struct {
	Type    string
	Inputs  []InputDescriptor
	Outputs []OutputDescriptor
}

// Registry resolves type names to descriptors. Implementations outside this
// package are expected: the registry is an external collaborator of the
// mutation engine.
type Registry interface {
	Lookup(typeName string) (*Descriptor, bool)
}

// DefaultInput returns the registry-declared default input of typeName at
// index. The second return is false when the type or index is unknown.
func DefaultInput(reg Registry, typeName string, index int) (graph.Input, bool) {
	desc, ok := reg.Lookup(typeName)
	if !ok || index < 0 || index >= len(desc.Inputs) || desc.Inputs[index].Default == nil {
		return nil, false
	}
	return desc.Inputs[index].Default, true
}

// Catalog is the builtin map-backed Registry. It is owned by the single
// edit turn like the rest of the document state; no locking.
type Catalog struct {
	types map[string]*Descriptor
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{types: make(map[string]*Descriptor)}
}

// Register adds a descriptor. Returns ErrDuplicateType if the name is taken.
func (c *Catalog) Register(d *Descriptor) error {
	if _, exists := c.types[d.Type]; exists {
		return ErrDuplicateType
	}
	c.types[d.Type] = d
	return nil
}

// Lookup resolves a type name. O(1).
func (c *Catalog) Lookup(typeName string) (*Descriptor, bool) {
	d, ok := c.types[typeName]
	return d, ok
}

// Types returns the registered type names, for catalog listings.
func (c *Catalog) Types() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	return names
}

var _ Registry = (*Catalog)(nil)
