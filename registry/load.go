// Package registry: YAML catalog loading through a virtual filesystem.

package registry

import (
	"fmt"
	"strings"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/verdelin/nodenet/graph"
)

// catalogFile mirrors the YAML layout:
//
//	types:
//	  - name: Opacity
//	    inputs:
//	      - name: Primary
//	        type: any
//	        exposed: true
//	      - name: Factor
//	        type: number
//	        default: 1
//	        exposed: true
//	    outputs:
//	      - name: Out
//	        type: any
type catalogFile struct {
	Types []typeEntry `yaml:"types"`
}

type typeEntry struct {
	Name    string        `yaml:"name"`
	Inputs  []inputEntry  `yaml:"inputs"`
	Outputs []outputEntry `yaml:"outputs"`
}

type inputEntry struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default any    `yaml:"default"`
	Exposed bool   `yaml:"exposed"`
}

type outputEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Load reads a YAML type catalog from fs and returns the populated Catalog.
// The whole file is validated before anything is registered; a malformed
// catalog yields ErrBadCatalog (or ErrUnknownType) and no partial result.
func Load(fs vfs.FileSystem, path string) (*Catalog, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("registry: reading catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadCatalog, path, err)
	}

	catalog := NewCatalog()
	for _, entry := range file.Types {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: type entry without name", ErrBadCatalog)
		}
		desc, err := buildDescriptor(entry)
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(desc); err != nil {
			return nil, fmt.Errorf("%w: type %q listed twice", ErrBadCatalog, entry.Name)
		}
	}
	return catalog, nil
}

func buildDescriptor(entry typeEntry) (*Descriptor, error) {
	desc := &Descriptor{Type: entry.Name}
	for _, in := range entry.Inputs {
		t, err := ParseType(in.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: type %q input %q: %v", ErrUnknownType, entry.Name, in.Name, err)
		}
		def, err := defaultValue(t, in.Default)
		if err != nil {
			return nil, fmt.Errorf("%w: type %q input %q default: %v", ErrBadCatalog, entry.Name, in.Name, err)
		}
		desc.Inputs = append(desc.Inputs, InputDescriptor{
			Name:    in.Name,
			Type:    t,
			Default: graph.Value{Data: def, Exposed: in.Exposed},
		})
	}
	for _, out := range entry.Outputs {
		t, err := ParseType(out.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: type %q output %q: %v", ErrUnknownType, entry.Name, out.Name, err)
		}
		desc.Outputs = append(desc.Outputs, OutputDescriptor{Name: out.Name, Type: t})
	}
	return desc, nil
}

// ParseType maps a catalog type tag to a cty type. Supported tags:
// number, string, bool, any, and list(<tag>).
func ParseType(tag string) (cty.Type, error) {
	tag = strings.TrimSpace(tag)
	switch tag {
	case "number":
		return cty.Number, nil
	case "string":
		return cty.String, nil
	case "bool":
		return cty.Bool, nil
	case "any", "":
		return cty.DynamicPseudoType, nil
	}
	if strings.HasPrefix(tag, "list(") && strings.HasSuffix(tag, ")") {
		inner, err := ParseType(tag[len("list(") : len(tag)-1])
		if err != nil {
			return cty.NilType, err
		}
		return cty.List(inner), nil
	}
	return cty.NilType, fmt.Errorf("unsupported tag %q", tag)
}

// defaultValue converts a decoded YAML scalar into a cty value of type t.
// A missing default becomes the null value of t.
func defaultValue(t cty.Type, raw any) (cty.Value, error) {
	if raw == nil {
		return cty.NullVal(t), nil
	}
	switch v := raw.(type) {
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported default literal %T", raw)
	}
}
