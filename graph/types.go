// Package graph: identifiers, input variants, and sentinel errors.
//
// This file declares the value types shared by the store (network.go) and
// the node model (node.go). JSON codecs live in json.go.

package graph

import (
	"errors"

	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"
)

// Sentinel errors for store operations.
var (
	// ErrNilNode indicates a nil *Node was passed to Insert.
	ErrNilNode = errors.New("graph: node is nil")

	// ErrDuplicateNode indicates Insert was called with an id already present.
	ErrDuplicateNode = errors.New("graph: node id already present")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNetworkNotFound indicates a nested path did not resolve to a network.
	ErrNetworkNotFound = errors.New("graph: network not found")

	// ErrBoundaryProtected indicates an attempt to remove an import or a
	// current export node.
	ErrBoundaryProtected = errors.New("graph: boundary node is protected")

	// ErrInputOutOfRange indicates an input index beyond a node's input list.
	ErrInputOutOfRange = errors.New("graph: input index out of range")
)

// NodeID identifies a node within one network. IDs are stable for the life
// of a node and are remapped — never reused — when nodes are copied.
type NodeID string

// NewNodeID mints a fresh, globally unique NodeID.
func NewNodeID() NodeID { return NodeID(uuid.NewString()) }

// IVec2 is an integer 2-D grid position or displacement.
type IVec2 struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the component-wise sum of v and o.
func (v IVec2) Add(o IVec2) IVec2 { return IVec2{v.X + o.X, v.Y + o.Y} }

// Port addresses one output of a node; Output 0 is the primary output.
type Port struct {
	Node   NodeID `json:"node"`
	Output int    `json:"output"`
}

// Input is the tagged variant stored in Node.Inputs. Exactly three concrete
// types implement it: Value, Connection, and Boundary.
type Input interface {
	// IsExposed reports whether the input is shown as a connectable port.
	IsExposed() bool

	isInput()
}

// Value is a literal input, optionally exposed as a graph port.
type Value struct {
	Data    cty.Value
	Exposed bool
}

func (Value) isInput() {}

// IsExposed reports the port flag of the literal.
func (v Value) IsExposed() bool { return v.Exposed }

// Connection references another node's output within the same network scope.
type Connection struct {
	Node   NodeID
	Output int
	// Lambda marks the edge as passing the source as a callable rather
	// than its evaluated result.
	Lambda bool
}

func (Connection) isInput() {}

// IsExposed is always true: a wired input is necessarily a visible port.
func (Connection) IsExposed() bool { return true }

// Boundary is the generic stand-in used at a network's input boundary
// before wiring.
type Boundary struct{}

func (Boundary) isInput() {}

// IsExposed is always true: boundary placeholders occupy a visible port.
func (Boundary) IsExposed() bool { return true }

// AsConnection returns in as a Connection when it is one.
func AsConnection(in Input) (Connection, bool) {
	c, ok := in.(Connection)
	return c, ok
}

// AsValue returns in as a Value when it is one.
func AsValue(in Input) (Value, bool) {
	v, ok := in.(Value)
	return v, ok
}
