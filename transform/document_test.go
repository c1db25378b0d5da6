package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
openrpc: 1.3.2
info:
  title: yaml
  version: 0.0.1
methods:
  - name: status
    params: []
    result:
      name: response
      schema:
        $ref: '#/components/schemas/Status'
components:
  schemas:
    Status:
      type: object
      properties:
        chain_id:
          type: string
      required: [chain_id]
`

func TestParseDocumentYAML(t *testing.T) {
	d, err := ParseDocument([]byte(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, "1.3.2", d.OpenRPC())
	assert.Equal(t, "yaml", d.Title())
	require.Len(t, d.Methods(), 1)
	assert.Equal(t, "Status", d.Methods()[0].Result)

	s, err := Transform(d, nil)
	require.NoError(t, err)
	out, err := Marshal(s)
	require.NoError(t, err)
	testJSON(t, out, map[string]interface{}{
		"definitions.Status.properties.chain_id.type": "string",
		"x-openrpc-methods.0.name":                    "status",
	})
}

func TestParseDocumentErrors(t *testing.T) {
	_, err := ParseDocument([]byte("  "))
	assert.Error(t, err)

	_, err = ParseDocument([]byte(`{"openrpc":"1.3.2","methods":[]}`))
	assert.True(t, errors.Is(err, ErrMissingComponents))

	_, err = ParseDocument([]byte(`{"methods":[{"name":"a"},{"name":"a"}],"components":{"schemas":{}}}`))
	assert.Error(t, err)
}

func TestApplyPatch(t *testing.T) {
	d, err := ParseDocument([]byte(composeDoc))
	require.NoError(t, err)
	require.Equal(t, []string{"compose", "ping"}, d.MethodNames())

	err = d.ApplyPatch([]byte(`[
		{"op": "remove", "path": "/methods/1"},
		{"op": "add", "path": "/components/schemas/D", "value": {"type": "object", "properties": {"d": {"type": "string"}}}}
	]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"compose"}, d.MethodNames())

	out := mustTransform(t, string(d.Bytes()))
	testJSON(t, out, map[string]interface{}{
		"definitions.D.properties.d.type": "string",
		"x-openrpc-methods.#":             float64(1),
	})

	// A patch leaving the document unusable is rejected and rolled back.
	err = d.ApplyPatch([]byte(`[{"op": "remove", "path": "/components"}]`))
	assert.True(t, errors.Is(err, ErrMissingComponents))
	assert.Equal(t, []string{"compose"}, d.MethodNames())
	assert.Contains(t, string(d.Bytes()), `"components"`)

	assert.Error(t, d.ApplyPatch([]byte(`not a patch`)))
	assert.Error(t, d.ApplyPatch([]byte(`[{"op": "remove", "path": "/nope"}]`)))
}
