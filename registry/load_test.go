package registry_test

import (
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/verdelin/nodenet/graph"
	"github.com/verdelin/nodenet/registry"
)

const catalogYAML = `
types:
  - name: Opacity
    inputs:
      - name: Primary
        type: any
        exposed: true
      - name: Factor
        type: number
        default: 1
    outputs:
      - name: Out
        type: any
  - name: Text
    inputs:
      - name: Content
        type: string
        default: hello
        exposed: true
    outputs:
      - name: Out
        type: string
`

func writeCatalog(t *testing.T, content string) vfs.FileSystem {
	t.Helper()
	fs := memoryfs.New()
	require.NoError(t, vfs.WriteFile(fs, "catalog.yaml", []byte(content), 0o644))
	return fs
}

func TestLoad_FullCatalog(t *testing.T) {
	fs := writeCatalog(t, catalogYAML)

	cat, err := registry.Load(fs, "catalog.yaml")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Opacity", "Text"}, cat.Types())

	desc, ok := cat.Lookup("Opacity")
	require.True(t, ok)
	require.Len(t, desc.Inputs, 2)
	assert.Equal(t, "Primary", desc.Inputs[0].Name)
	assert.True(t, desc.Inputs[0].Type.Equals(cty.DynamicPseudoType))

	primary, isValue := graph.AsValue(desc.Inputs[0].Default)
	require.True(t, isValue)
	assert.True(t, primary.Exposed)
	assert.True(t, primary.Data.IsNull())

	factor, isValue := graph.AsValue(desc.Inputs[1].Default)
	require.True(t, isValue)
	assert.False(t, factor.Exposed)
	assert.True(t, factor.Data.RawEquals(cty.NumberIntVal(1)))

	text, ok := cat.Lookup("Text")
	require.True(t, ok)
	content, _ := graph.AsValue(text.Inputs[0].Default)
	assert.True(t, content.Data.RawEquals(cty.StringVal("hello")))
}

func TestLoad_MissingFile(t *testing.T) {
	fs := memoryfs.New()
	_, err := registry.Load(fs, "nope.yaml")
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownDataType(t *testing.T) {
	fs := writeCatalog(t, `
types:
  - name: Broken
    inputs:
      - name: In
        type: quaternion
`)
	_, err := registry.Load(fs, "catalog.yaml")
	assert.ErrorIs(t, err, registry.ErrUnknownType)
}

func TestLoad_RejectsNamelessAndDuplicateEntries(t *testing.T) {
	fs := writeCatalog(t, "types:\n  - inputs: []\n")
	_, err := registry.Load(fs, "catalog.yaml")
	assert.ErrorIs(t, err, registry.ErrBadCatalog)

	fs = writeCatalog(t, `
types:
  - name: Twice
  - name: Twice
`)
	_, err = registry.Load(fs, "catalog.yaml")
	assert.ErrorIs(t, err, registry.ErrBadCatalog)
}

func TestLoad_RejectsNonScalarDefault(t *testing.T) {
	fs := writeCatalog(t, `
types:
  - name: Broken
    inputs:
      - name: In
        type: number
        default: [1, 2]
`)
	_, err := registry.Load(fs, "catalog.yaml")
	assert.ErrorIs(t, err, registry.ErrBadCatalog)
}
