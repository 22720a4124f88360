package jsonutils

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

func ToJSON(val any) string {
	js, _ := json.Marshal(val)
	return string(js)
}

func ToJSONIndent(val any) string {
	js, _ := json.MarshalIndent(val, "", "\t")
	return string(js)
}

func ToYAML(val any) string {
	js, _ := yaml.Marshal(val)
	return string(js)
}

// IsEmpty returns true for empty input or JSON null
func IsEmpty(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// Decode decodes a single JSON value from raw into v,
// empty input decodes as an empty object.
// Numbers in untyped values are kept as json.Number.
func Decode(raw []byte, v any) error {
	if IsEmpty(raw) {
		raw = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return errors.WithStack(err)
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
