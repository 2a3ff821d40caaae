// Package jsonschema holds the JSON Schema draft-4 document representation
// emitted by the compiler. The struct is handed to a generic JSON encoder;
// this package never produces a text encoding of its own beyond marshaling.
package jsonschema

import "github.com/goccy/go-json"

// DraftV4URI identifies the dialect of emitted documents.
const DraftV4URI = "http://json-schema.org/draft-04/schema#"

// Schema is a draft-4 JSON Schema node. Absent keywords are omitted rather
// than emitted with zero values; optional numeric bounds are pointers so that
// an explicit zero survives.
type Schema struct {
	// Core
	Schema string `json:"$schema,omitempty"`
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Enum   []any  `json:"enum,omitempty"`

	// String
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array. Items holds either *Schema (homogeneous elements) or []*Schema
	// (positional tuple elements).
	Items           any  `json:"items,omitempty"`
	AdditionalItems any  `json:"additionalItems,omitempty"`
	MinItems        *int `json:"minItems,omitempty"`
	MaxItems        *int `json:"maxItems,omitempty"`
	UniqueItems     bool `json:"uniqueItems,omitempty"`
}

// MarshalJSON keeps an explicit "properties": {} on object schemas without
// fields; omitempty would otherwise drop the empty map.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type schema Schema
	if s.Properties != nil && len(s.Properties) == 0 {
		return json.Marshal(struct {
			*schema
			Properties map[string]*Schema `json:"properties"`
		}{(*schema)(s), s.Properties})
	}
	return json.Marshal((*schema)(s))
}
