package mallet

import (
	j "github.com/goccy/go-json"

	js "github.com/reoring/mallet/jsonschema"
)

// EncodeDocument renders a compiled document as JSON text using the go-json
// encoder. Keyword order is deterministic, so encoding the result of
// converting the same tree twice yields byte-identical output.
func EncodeDocument(s *js.Schema, indent bool) ([]byte, error) {
	if indent {
		return j.MarshalIndent(s, "", "  ")
	}
	return j.Marshal(s)
}
