package jsonutils_test

import (
	"encoding/json"
	"testing"

	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToJSON(t *testing.T) {
	type Person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	p := Person{Name: "John", Age: 30}
	assert.Equal(t, `{"name":"John","age":30}`, jsonutils.ToJSON(p))
	assert.Equal(t, "{\n\t\"name\": \"John\",\n\t\"age\": 30\n}", jsonutils.ToJSONIndent(p))
}

func Test_ToYAML(t *testing.T) {
	type Person struct {
		Name string `yaml:"name"`
		Age  int    `yaml:"age"`
	}
	p := Person{Name: "John", Age: 30}
	assert.Equal(t, "name: John\nage: 30\n", jsonutils.ToYAML(p))
}

func Test_Decode(t *testing.T) {
	type args struct {
		VIN  string         `json:"vin"`
		Data map[string]any `json:"data,omitempty"`
	}

	var a args
	require.NoError(t, jsonutils.Decode([]byte(`{"vin":"1HG","data":{"amount":32}}`), &a))
	assert.Equal(t, "1HG", a.VIN)
	assert.Equal(t, json.Number("32"), a.Data["amount"])

	for _, empty := range []string{"", "  ", "null"} {
		a = args{}
		require.NoError(t, jsonutils.Decode([]byte(empty), &a))
		assert.Empty(t, a.VIN)
	}

	// unknown fields are ignored
	a = args{}
	require.NoError(t, jsonutils.Decode([]byte(`{"vim":"1HG"}`), &a))
	assert.Empty(t, a.VIN)

	err := jsonutils.Decode([]byte(`{"vin":1}`), &a)
	assert.Error(t, err)

	err = jsonutils.Decode([]byte(`{"vin":"1"} {}`), &a)
	assert.EqualError(t, err, "unexpected data after JSON value")
}
