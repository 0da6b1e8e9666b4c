// Package graph: JSON codec for the Input variant and the Node model.
//
// The codec backs the copy/paste payload (package clipboard). Inputs are
// encoded as a tagged envelope; literal values carry their cty type next to
// the data so they round-trip without a schema.

package graph

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Envelope tags for the Input variant.
const (
	kindValue      = "value"
	kindConnection = "connection"
	kindBoundary   = "boundary"
)

type inputJSON struct {
	Kind    string          `json:"kind"`
	Exposed bool            `json:"exposed,omitempty"`
	Type    json.RawMessage `json:"type,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Node    NodeID          `json:"node,omitempty"`
	Output  int             `json:"output,omitempty"`
	Lambda  bool            `json:"lambda,omitempty"`
}

func marshalInput(in Input) (inputJSON, error) {
	switch v := in.(type) {
	case Value:
		env := inputJSON{Kind: kindValue, Exposed: v.Exposed}
		if v.Data != cty.NilVal {
			t, err := ctyjson.MarshalType(v.Data.Type())
			if err != nil {
				return env, fmt.Errorf("graph: encoding value type: %w", err)
			}
			d, err := ctyjson.Marshal(v.Data, v.Data.Type())
			if err != nil {
				return env, fmt.Errorf("graph: encoding value data: %w", err)
			}
			env.Type, env.Data = t, d
		}
		return env, nil
	case Connection:
		return inputJSON{Kind: kindConnection, Node: v.Node, Output: v.Output, Lambda: v.Lambda}, nil
	case Boundary:
		return inputJSON{Kind: kindBoundary}, nil
	default:
		return inputJSON{}, fmt.Errorf("graph: unknown input variant %T", in)
	}
}

func unmarshalInput(env inputJSON) (Input, error) {
	switch env.Kind {
	case kindValue:
		val := Value{Exposed: env.Exposed}
		if len(env.Type) > 0 {
			t, err := ctyjson.UnmarshalType(env.Type)
			if err != nil {
				return nil, fmt.Errorf("graph: decoding value type: %w", err)
			}
			d, err := ctyjson.Unmarshal(env.Data, t)
			if err != nil {
				return nil, fmt.Errorf("graph: decoding value data: %w", err)
			}
			val.Data = d
		} else {
			val.Data = cty.NilVal
		}
		return val, nil
	case kindConnection:
		if env.Node == "" {
			return nil, fmt.Errorf("graph: connection without node id")
		}
		return Connection{Node: env.Node, Output: env.Output, Lambda: env.Lambda}, nil
	case kindBoundary:
		return Boundary{}, nil
	default:
		return nil, fmt.Errorf("graph: unknown input kind %q", env.Kind)
	}
}

type nodeJSON struct {
	ID               NodeID      `json:"id"`
	Type             string      `json:"type"`
	Alias            string      `json:"alias,omitempty"`
	Inputs           []inputJSON `json:"inputs"`
	IsLayer          bool        `json:"isLayer,omitempty"`
	DisplayAsLayer   bool        `json:"displayAsLayer,omitempty"`
	HasPrimaryOutput bool        `json:"hasPrimaryOutput,omitempty"`
	Visible          bool        `json:"visible"`
	Locked           bool        `json:"locked,omitempty"`
	Position         IVec2       `json:"position"`
	Primitive        string      `json:"primitive,omitempty"`
	Network          *Network    `json:"network,omitempty"`
}

// MarshalJSON encodes the node, its tagged inputs, and its implementation.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		ID:               n.ID,
		Type:             n.Type,
		Alias:            n.Alias,
		Inputs:           make([]inputJSON, 0, len(n.Inputs)),
		IsLayer:          n.IsLayer,
		DisplayAsLayer:   n.DisplayAsLayer,
		HasPrimaryOutput: n.HasPrimaryOutput,
		Visible:          n.Visible,
		Locked:           n.Locked,
		Position:         n.Position,
	}
	for _, in := range n.Inputs {
		env, err := marshalInput(in)
		if err != nil {
			return nil, err
		}
		out.Inputs = append(out.Inputs, env)
	}
	switch impl := n.Impl.(type) {
	case Primitive:
		out.Primitive = string(impl)
	case *Network:
		out.Network = impl
	case nil:
	default:
		return nil, fmt.Errorf("graph: unknown implementation variant %T", n.Impl)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a node encoded by MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in nodeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Primitive != "" && in.Network != nil {
		return fmt.Errorf("graph: node %s has both primitive and network implementations", in.ID)
	}
	n.ID = in.ID
	n.Type = in.Type
	n.Alias = in.Alias
	n.IsLayer = in.IsLayer
	n.DisplayAsLayer = in.DisplayAsLayer
	n.HasPrimaryOutput = in.HasPrimaryOutput
	n.Visible = in.Visible
	n.Locked = in.Locked
	n.Position = in.Position
	n.Inputs = make([]Input, 0, len(in.Inputs))
	for _, env := range in.Inputs {
		decoded, err := unmarshalInput(env)
		if err != nil {
			return err
		}
		n.Inputs = append(n.Inputs, decoded)
	}
	switch {
	case in.Primitive != "":
		n.Impl = Primitive(in.Primitive)
	case in.Network != nil:
		n.Impl = in.Network
	default:
		n.Impl = nil
	}
	return nil
}
