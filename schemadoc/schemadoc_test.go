package schemadoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mallet "github.com/reoring/mallet"
	"github.com/reoring/mallet/schemadoc"
)

const userYAML = `
kind: object
fields:
  - name: id
    required: true
    schema:
      kind: string
      validators:
        - regex: "^[a-z0-9-]+$"
  - name: email
    schema:
      kind: string
      validators:
        - email: true
  - name: balance
    schema:
      kind: money
      validators:
        - range: {min: 0}
  - name: tags
    schema:
      kind: array
      items:
        kind: string
      validators:
        - length: {min: 1, max: 5}
`

func TestFromYAML_UserDocument(t *testing.T) {
	node, err := schemadoc.FromYAML([]byte(userYAML))
	require.NoError(t, err)
	require.Equal(t, mallet.KindMapping, node.Kind)
	require.Len(t, node.Children, 4)

	assert.Equal(t, "id", node.Children[0].Name)
	assert.True(t, node.Children[0].Required)
	assert.Equal(t, mallet.KindString, node.Children[0].Kind)
	assert.False(t, node.Children[1].Required)
	assert.Equal(t, mallet.KindFixedPoint, node.Children[2].Kind)
	assert.Equal(t, mallet.KindSequence, node.Children[3].Kind)

	doc, diags, err := mallet.Convert(node)
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, doc.Required)
	assert.Equal(t, "^[a-z0-9-]+$", doc.Properties["id"].Pattern)
	assert.Equal(t, "email", doc.Properties["email"].Format)
	require.NotNil(t, doc.Properties["balance"].Minimum)
	assert.Equal(t, 0.0, *doc.Properties["balance"].Minimum)
	require.NotNil(t, doc.Properties["tags"].MinItems)
	assert.Equal(t, 1, *doc.Properties["tags"].MinItems)
	// money maps to number and is flagged lossy
	assert.True(t, diags.HasWarnings())
	assert.Equal(t, mallet.CodeLossyConversion, diags[0].Code)
	assert.Equal(t, "$.balance", diags[0].Path)
}

func TestFromJSON_TupleDocument(t *testing.T) {
	doc := `{
		"kind": "tuple",
		"elements": [
			{"kind": "string"},
			{"kind": "integer"}
		]
	}`
	node, err := schemadoc.FromJSON([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, mallet.KindTuple, node.Kind)
	require.Len(t, node.Children, 2)
	assert.Equal(t, mallet.KindString, node.Children[0].Kind)
	assert.Equal(t, mallet.KindInteger, node.Children[1].Kind)
}

func TestFromYAML_FieldOrderPreserved(t *testing.T) {
	doc := `
kind: object
fields:
  - name: z
    required: true
    schema: {kind: string}
  - name: a
    required: true
    schema: {kind: string}
`
	node, err := schemadoc.FromYAML([]byte(doc))
	require.NoError(t, err)
	out, _, err := mallet.Convert(node)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, out.Required)
}

func TestFromYAML_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown kind":        `{kind: blob}`,
		"nested unknown kind": "kind: object\nfields:\n  - name: x\n    schema: {kind: widget}",
		"array without items": `{kind: array}`,
		"duplicate field":     "kind: object\nfields:\n  - name: x\n    schema: {kind: string}\n  - name: x\n    schema: {kind: string}",
		"empty validator":     "kind: string\nvalidators:\n  - {}",
		"ambiguous validator": "kind: string\nvalidators:\n  - {email: true, luhn: true}",
		"invalid yaml":        `{kind: "unterminated`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := schemadoc.FromYAML([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestFromYAML_AllComposite(t *testing.T) {
	doc := `
kind: string
validators:
  - all:
      - length: {min: 8}
      - regex: "^[0-9]+$"
`
	node, err := schemadoc.FromYAML([]byte(doc))
	require.NoError(t, err)
	require.Len(t, node.Validators, 1)
	all, ok := node.Validators[0].(mallet.All)
	require.True(t, ok, "expected All validator, got %T", node.Validators[0])
	require.Len(t, all.Validators, 2)
}
