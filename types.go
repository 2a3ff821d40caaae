package mallet

// TypeKind identifies the declared type of a SchemaNode. The set is closed:
// anything outside it fails classification with unsupported_type rather than
// falling back to a silent default.
type TypeKind int

const (
	KindInvalid TypeKind = iota // Zero value; never convertible.
	KindInteger
	KindFloat
	KindFixedPoint // Arbitrary-precision decimal (currency-like). Lossy in JSON.
	KindString
	KindBoolean
	KindDate
	KindDateTime
	KindTime
	KindMapping  // Named children.
	KindSequence // Exactly one child describing the element type.
	KindTuple    // Fixed-length positional children.
	KindSet      // Unique-item array; at most one child describing the element type.
)

func (k TypeKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindFixedPoint:
		return "fixedpoint"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindTime:
		return "time"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindTuple:
		return "tuple"
	case KindSet:
		return "set"
	default:
		return "invalid"
	}
}

// ValidatorPolicy controls how validators that cannot constrain their node's
// kind are handled.
type ValidatorPolicy int

const (
	ValidatorsStrict  ValidatorPolicy = iota // Abort the conversion (default).
	ValidatorsLenient                        // Record a diagnostic and skip the fragment.
)

// Options bundles conversion options.
type Options struct {
	// Validators selects strict or lenient handling of incompatible
	// validators. Strict is the default.
	Validators ValidatorPolicy
	// SchemaURI emits the draft-4 "$schema" keyword on the root node.
	SchemaURI bool
}
