package schema_test

import (
	"reflect"
	"testing"

	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/effective-security/transend-mcp/pkg/schema"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flexID string

func (flexID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "integer"},
		},
	}
}

type lookup struct {
	VHID   string         `json:"vhid" jsonschema:"description=Vehicle VHID"`
	PHID   *string        `json:"phid,omitempty" jsonschema:"description=Product hierarchy ID"`
	Year   *int           `json:"year" jsonschema:"description=Model year"`
	ItemID flexID         `json:"item_id" jsonschema:"description=Item ID"`
	Data   map[string]any `json:"data" jsonschema:"description=Payload"`
}

type KVPair struct {
	Key   string `json:"key" jsonschema:"title=Key"`
	Value string `json:"value,omitempty" jsonschema:"title=Value"`
}

type nested struct {
	Args []*KVPair `json:"args,omitempty"`
	Prov *KVPair   `json:"prov,omitempty"`
}

type empty struct{}

func TestSchema(t *testing.T) {
	t.Parallel()

	t.Run("Lookup", func(t *testing.T) {
		t.Parallel()
		s, err := schema.New(reflect.TypeOf(lookup{}))
		require.NoError(t, err)

		exp := `{
	"properties": {
		"vhid": {
			"type": "string",
			"description": "Vehicle VHID"
		},
		"phid": {
			"type": "string",
			"description": "Product hierarchy ID"
		},
		"year": {
			"type": "integer",
			"description": "Model year"
		},
		"item_id": {
			"anyOf": [
				{
					"type": "string"
				},
				{
					"type": "integer"
				}
			],
			"description": "Item ID"
		},
		"data": {
			"type": "object",
			"description": "Payload"
		}
	},
	"type": "object",
	"required": [
		"vhid",
		"year",
		"item_id",
		"data"
	]
}`
		assert.Equal(t, exp, s.String())
		assert.Equal(t, exp, jsonutils.ToJSONIndent(s.Parameters))

		// cached
		s2, err := schema.For[lookup]()
		require.NoError(t, err)
		assert.Same(t, s, s2)
	})

	t.Run("Nested", func(t *testing.T) {
		t.Parallel()
		s, err := schema.New(reflect.TypeOf(&nested{}))
		require.NoError(t, err)

		exp := `{"properties":{"args":{"items":{"properties":{"key":{"type":"string","title":"Key"},"value":{"type":"string","title":"Value"}},"type":"object","required":["key"]},"type":"array"},"prov":{"properties":{"key":{"type":"string","title":"Key"},"value":{"type":"string","title":"Value"}},"type":"object","required":["key"]}},"type":"object"}`
		assert.Equal(t, exp, string(s.JSON()))
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		s, err := schema.For[empty]()
		require.NoError(t, err)
		assert.Equal(t, `{"properties":{},"type":"object"}`, string(s.JSON()))
	})

	t.Run("NotStruct", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(reflect.TypeOf("string"))
		assert.EqualError(t, err, "schema: string is not a struct")
	})
}
