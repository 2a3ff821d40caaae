package dsl

import (
	mallet "github.com/reoring/mallet"
)

// Fielder is implemented by every builder that can serve as an object field
// or an array/tuple element.
type Fielder interface {
	schemaNode() *mallet.SchemaNode
}

// Builder wraps a SchemaNode under construction. Constraint methods append
// validators in call order.
type Builder struct {
	node *mallet.SchemaNode
}

func leaf(kind mallet.TypeKind) *Builder {
	return &Builder{node: &mallet.SchemaNode{Kind: kind}}
}

// String creates a string node builder.
func String() *Builder { return leaf(mallet.KindString) }

// Int creates an integer node builder.
func Int() *Builder { return leaf(mallet.KindInteger) }

// Float creates a float node builder.
func Float() *Builder { return leaf(mallet.KindFloat) }

// Decimal creates a fixed-point node builder. Conversion maps it to a JSON
// "number" and records a lossy_conversion diagnostic.
func Decimal() *Builder { return leaf(mallet.KindFixedPoint) }

// Bool creates a boolean node builder.
func Bool() *Builder { return leaf(mallet.KindBoolean) }

// Date creates a date node builder (string with format "date").
func Date() *Builder { return leaf(mallet.KindDate) }

// DateTime creates a date-time node builder (string with format "date-time").
func DateTime() *Builder { return leaf(mallet.KindDateTime) }

// Time creates a time node builder (string with format "time").
func Time() *Builder { return leaf(mallet.KindTime) }

// Array creates a sequence node from its element builder.
func Array(elem Fielder) *Builder {
	return &Builder{node: &mallet.SchemaNode{
		Kind:     mallet.KindSequence,
		Children: []*mallet.SchemaNode{elem.schemaNode()},
	}}
}

// Tuple creates a fixed-length positional node from its element builders.
func Tuple(elems ...Fielder) *Builder {
	children := make([]*mallet.SchemaNode, 0, len(elems))
	for _, e := range elems {
		children = append(children, e.schemaNode())
	}
	return &Builder{node: &mallet.SchemaNode{Kind: mallet.KindTuple, Children: children}}
}

// Set creates a unique-item array node with untyped elements.
func Set() *Builder { return leaf(mallet.KindSet) }

// SetOf creates a unique-item array node with a typed element schema.
func SetOf(elem Fielder) *Builder {
	return &Builder{node: &mallet.SchemaNode{
		Kind:     mallet.KindSet,
		Children: []*mallet.SchemaNode{elem.schemaNode()},
	}}
}

// Pattern attaches a regex validator.
func (b *Builder) Pattern(p string) *Builder {
	return b.with(mallet.Regex{Pattern: p})
}

// Email attaches an email-format validator.
func (b *Builder) Email() *Builder { return b.with(mallet.Email{}) }

// Range attaches a numeric range with both bounds.
func (b *Builder) Range(min, max float64) *Builder {
	return b.with(mallet.Range{Min: &min, Max: &max})
}

// RangeMin attaches a numeric range with only a lower bound.
func (b *Builder) RangeMin(min float64) *Builder {
	return b.with(mallet.Range{Min: &min})
}

// RangeMax attaches a numeric range with only an upper bound.
func (b *Builder) RangeMax(max float64) *Builder {
	return b.with(mallet.Range{Max: &max})
}

// Length attaches a length validator with both bounds; it maps to
// minLength/maxLength on strings and minItems/maxItems on arrays.
func (b *Builder) Length(min, max int) *Builder {
	return b.with(mallet.Length{Min: &min, Max: &max})
}

// MinLen attaches a lower length bound.
func (b *Builder) MinLen(min int) *Builder { return b.with(mallet.Length{Min: &min}) }

// MaxLen attaches an upper length bound.
func (b *Builder) MaxLen(max int) *Builder { return b.with(mallet.Length{Max: &max}) }

// OneOf attaches an enumerated-choice validator, order preserved.
func (b *Builder) OneOf(choices ...any) *Builder {
	return b.with(mallet.OneOf{Choices: choices})
}

// ContainsOnly attaches an allowed-values validator for array elements.
func (b *Builder) ContainsOnly(allowed ...any) *Builder {
	return b.with(mallet.ContainsOnly{Allowed: allowed})
}

// Luhn attaches a Luhn checksum validator. It has no JSON Schema equivalent
// and surfaces as a diagnostic at conversion time.
func (b *Builder) Luhn() *Builder { return b.with(mallet.Luhn{}) }

// Validate attaches a pre-built validator.
func (b *Builder) Validate(v mallet.Validator) *Builder { return b.with(v) }

func (b *Builder) with(v mallet.Validator) *Builder {
	b.node.Validators = append(b.node.Validators, v)
	return b
}

// Build returns the constructed node.
func (b *Builder) Build() *mallet.SchemaNode { return b.node }

func (b *Builder) schemaNode() *mallet.SchemaNode { return b.node }
