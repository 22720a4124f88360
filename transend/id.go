package transend

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

// ID is an identifier the API accepts either as a string or as a number,
// such as an item ID or an availability type ID.
type ID string

// IntID returns ID for a numeric identifier.
func IntID(v int64) ID {
	return ID(strconv.FormatInt(v, 10))
}

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return errors.Errorf("identifier must be a string or a number: %s", string(data))
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON renders the identifier as a JSON string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// JSONSchema describes ID as a string or an integer.
func (ID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "integer"},
		},
	}
}
