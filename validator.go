package mallet

// Validator describes one constraint attached to a SchemaNode. The variant
// set is sealed; MapValidator dispatches over it exhaustively so an
// unhandled variant is a compile-time gap, not a runtime surprise.
type Validator interface {
	// validatorName returns the short name used in error and diagnostic
	// messages ("regex", "range", ...).
	validatorName() string
}

// Regex constrains a string to match a pattern. The pattern is passed through
// verbatim; dialect compatibility is the caller's responsibility.
type Regex struct {
	Pattern string
}

// Email constrains a string to the "email" format.
type Email struct{}

// Range constrains a numeric value. A nil bound is absent and emits nothing
// for that side.
type Range struct {
	Min *float64
	Max *float64
}

// Length constrains the length of a string or the element count of a
// sequence, tuple or set. A nil bound is absent.
type Length struct {
	Min *int
	Max *int
}

// OneOf constrains a scalar to an enumerated set of choices, order preserved.
type OneOf struct {
	Choices []any
}

// ContainsOnly constrains every element of a sequence or set to the allowed
// values. It merges an enum into the element schema rather than replacing it.
type ContainsOnly struct {
	Allowed []any
}

// All composes sub-validators; its fragment is the union of the members'
// fragments with later members winning on keyword collision.
type All struct {
	Validators []Validator
}

// Luhn is a checksum constraint with no JSON Schema equivalent. Mapping it
// emits nothing and records a lossy_conversion diagnostic.
type Luhn struct{}

func (Regex) validatorName() string        { return "regex" }
func (Email) validatorName() string        { return "email" }
func (Range) validatorName() string        { return "range" }
func (Length) validatorName() string       { return "length" }
func (OneOf) validatorName() string        { return "oneOf" }
func (ContainsOnly) validatorName() string { return "containsOnly" }
func (All) validatorName() string          { return "all" }
func (Luhn) validatorName() string         { return "luhn" }
