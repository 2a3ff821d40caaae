// Package schemadoc imports declarative schema-definition documents (YAML or
// JSON) into mallet schema trees. Documents describe nodes by kind, fields,
// element schemas and attached validators; field order in the document is the
// declaration order of the resulting tree.
package schemadoc

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	mallet "github.com/reoring/mallet"
)

// FromYAML parses a schema-definition document in YAML form.
func FromYAML(data []byte) (*mallet.SchemaNode, error) {
	var doc nodeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemadoc: invalid YAML: %w", err)
	}
	return buildNode(&doc, "")
}

// FromJSON parses a schema-definition document in JSON form.
func FromJSON(data []byte) (*mallet.SchemaNode, error) {
	var doc nodeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemadoc: invalid JSON: %w", err)
	}
	return buildNode(&doc, "")
}

type nodeDoc struct {
	Kind       string         `json:"kind" yaml:"kind"`
	Fields     []fieldDoc     `json:"fields,omitempty" yaml:"fields,omitempty"`
	Items      *nodeDoc       `json:"items,omitempty" yaml:"items,omitempty"`
	Elements   []nodeDoc      `json:"elements,omitempty" yaml:"elements,omitempty"`
	Validators []validatorDoc `json:"validators,omitempty" yaml:"validators,omitempty"`
}

type fieldDoc struct {
	Name     string  `json:"name" yaml:"name"`
	Required bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema   nodeDoc `json:"schema" yaml:"schema"`
}

type validatorDoc struct {
	Regex        string         `json:"regex,omitempty" yaml:"regex,omitempty"`
	Email        bool           `json:"email,omitempty" yaml:"email,omitempty"`
	Range        *boundsDoc     `json:"range,omitempty" yaml:"range,omitempty"`
	Length       *lengthDoc     `json:"length,omitempty" yaml:"length,omitempty"`
	OneOf        []any          `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	ContainsOnly []any          `json:"containsOnly,omitempty" yaml:"containsOnly,omitempty"`
	All          []validatorDoc `json:"all,omitempty" yaml:"all,omitempty"`
	Luhn         bool           `json:"luhn,omitempty" yaml:"luhn,omitempty"`
}

type boundsDoc struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

type lengthDoc struct {
	Min *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// kinds maps document kind spellings to TypeKinds. A few aliases are accepted
// for ergonomics; the canonical spellings follow TypeKind.String().
var kinds = map[string]mallet.TypeKind{
	"integer":    mallet.KindInteger,
	"int":        mallet.KindInteger,
	"float":      mallet.KindFloat,
	"number":     mallet.KindFloat,
	"decimal":    mallet.KindFixedPoint,
	"fixedpoint": mallet.KindFixedPoint,
	"money":      mallet.KindFixedPoint,
	"string":     mallet.KindString,
	"boolean":    mallet.KindBoolean,
	"bool":       mallet.KindBoolean,
	"date":       mallet.KindDate,
	"datetime":   mallet.KindDateTime,
	"date-time":  mallet.KindDateTime,
	"time":       mallet.KindTime,
	"object":     mallet.KindMapping,
	"mapping":    mallet.KindMapping,
	"array":      mallet.KindSequence,
	"sequence":   mallet.KindSequence,
	"tuple":      mallet.KindTuple,
	"set":        mallet.KindSet,
}

func buildNode(d *nodeDoc, name string) (*mallet.SchemaNode, error) {
	kind, ok := kinds[strings.ToLower(strings.TrimSpace(d.Kind))]
	if !ok {
		if name == "" {
			return nil, fmt.Errorf("schemadoc: unknown kind %q", d.Kind)
		}
		return nil, fmt.Errorf("schemadoc: unknown kind %q for field %q", d.Kind, name)
	}
	n := &mallet.SchemaNode{Kind: kind, Name: name}

	for i := range d.Validators {
		v, err := buildValidator(&d.Validators[i])
		if err != nil {
			return nil, err
		}
		n.Validators = append(n.Validators, v)
	}

	switch kind {
	case mallet.KindMapping:
		seen := map[string]bool{}
		for i := range d.Fields {
			f := &d.Fields[i]
			if f.Name == "" {
				return nil, fmt.Errorf("schemadoc: object field without a name")
			}
			if seen[f.Name] {
				return nil, fmt.Errorf("schemadoc: duplicate field %q", f.Name)
			}
			seen[f.Name] = true
			child, err := buildNode(&f.Schema, f.Name)
			if err != nil {
				return nil, err
			}
			child.Required = f.Required
			n.Children = append(n.Children, child)
		}
	case mallet.KindSequence:
		if d.Items == nil {
			return nil, fmt.Errorf("schemadoc: array %q requires an items schema", name)
		}
		child, err := buildNode(d.Items, "")
		if err != nil {
			return nil, err
		}
		n.Children = []*mallet.SchemaNode{child}
	case mallet.KindSet:
		if d.Items != nil {
			child, err := buildNode(d.Items, "")
			if err != nil {
				return nil, err
			}
			n.Children = []*mallet.SchemaNode{child}
		}
	case mallet.KindTuple:
		for i := range d.Elements {
			child, err := buildNode(&d.Elements[i], "")
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}
	return n, nil
}

// buildValidator converts one document entry into a Validator. Exactly one
// variant key must be set per entry.
func buildValidator(vd *validatorDoc) (mallet.Validator, error) {
	var out []mallet.Validator
	if vd.Regex != "" {
		out = append(out, mallet.Regex{Pattern: vd.Regex})
	}
	if vd.Email {
		out = append(out, mallet.Email{})
	}
	if vd.Range != nil {
		out = append(out, mallet.Range{Min: vd.Range.Min, Max: vd.Range.Max})
	}
	if vd.Length != nil {
		out = append(out, mallet.Length{Min: vd.Length.Min, Max: vd.Length.Max})
	}
	if len(vd.OneOf) > 0 {
		out = append(out, mallet.OneOf{Choices: vd.OneOf})
	}
	if len(vd.ContainsOnly) > 0 {
		out = append(out, mallet.ContainsOnly{Allowed: vd.ContainsOnly})
	}
	if len(vd.All) > 0 {
		subs := make([]mallet.Validator, 0, len(vd.All))
		for i := range vd.All {
			sub, err := buildValidator(&vd.All[i])
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}
		out = append(out, mallet.All{Validators: subs})
	}
	if vd.Luhn {
		out = append(out, mallet.Luhn{})
	}
	switch len(out) {
	case 0:
		return nil, fmt.Errorf("schemadoc: empty validator entry")
	case 1:
		return out[0], nil
	}
	return nil, fmt.Errorf("schemadoc: validator entry sets %d variants, want exactly one", len(out))
}
