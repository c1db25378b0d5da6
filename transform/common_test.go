package transform

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// testJSON asserts gjson paths of jsonBytes against want.
// A *regexp.Regexp value matches the path's string form.
func testJSON(t *testing.T, jsonBytes []byte, want map[string]interface{}) {
	t.Helper()
	for k, v := range want {
		got := gjson.GetBytes(jsonBytes, k)
		if re, ok := v.(*regexp.Regexp); ok {
			assert.Regexp(t, re, got.String(), k)
			continue
		}
		assert.Equal(t, v, got.Value(), k)
	}
}

func mustTransform(t *testing.T, doc string) []byte {
	t.Helper()
	d, err := ParseDocument([]byte(doc))
	require.NoError(t, err)
	s, err := Transform(d, nil)
	require.NoError(t, err)
	out, err := Marshal(s)
	require.NoError(t, err)
	return out
}

func transformErr(t *testing.T, doc string) error {
	t.Helper()
	d, err := ParseDocument([]byte(doc))
	require.NoError(t, err)
	_, err = Transform(d, nil)
	return err
}

const composeDoc = `{
  "openrpc": "1.3.2",
  "info": {"title": "compose", "version": "0.0.1"},
  "methods": [
    {
      "name": "compose",
      "summary": "Composes things.",
      "params": [{"name": "request", "required": true, "schema": {"$ref": "#/components/schemas/Composed"}}],
      "result": {"name": "response", "schema": {"$ref": "#/components/schemas/Merged"}}
    },
    {
      "name": "ping",
      "params": [],
      "result": {"name": "response", "schema": {"type": "null"}}
    }
  ],
  "components": {
    "schemas": {
      "A": {"title": "A", "type": "object", "properties": {"a": {"type": "string"}, "shared": {"type": "string"}}, "required": ["a"]},
      "B": {"title": "B", "type": "object", "properties": {"b": {"type": "integer"}}, "required": ["b"]},
      "C": {"title": "C", "type": "object", "properties": {"c": {"type": "boolean"}, "request_type": {"type": "string", "const": "c"}}, "required": ["c", "request_type"]},
      "BorC": {"oneOf": [{"$ref": "#/components/schemas/B"}, {"$ref": "#/components/schemas/C"}]},
      "Composed": {"title": "Composed", "description": "A with B or C.", "allOf": [{"$ref": "#/components/schemas/A"}, {"$ref": "#/components/schemas/BorC"}]},
      "Merged": {"allOf": [{"$ref": "#/components/schemas/A"}, {"$ref": "#/components/schemas/B"}]},
      "Side": {"oneOf": [
        {"title": "left", "type": "object", "properties": {"l": {"type": "string"}}, "required": ["l"]},
        {"title": "right", "type": "object", "properties": {"r": {"type": "string"}}, "required": ["r"]}
      ]},
      "Nested": {"allOf": [{"$ref": "#/components/schemas/Composed"}, {"$ref": "#/components/schemas/Side"}]},
      "Single": {"description": "Just A.", "allOf": [{"$ref": "#/components/schemas/A"}]},
      "Maybe": {"type": "object", "properties": {"n": {"anyOf": [{"$ref": "#/components/schemas/A"}, {"type": "null"}]}}}
    }
  }
}`
