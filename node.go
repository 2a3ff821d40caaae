package mallet

// SchemaNode is one node of a source schema tree: a field, nested object,
// array, tuple or set definition. Trees are read-only input to the compiler;
// conversion never mutates them, so the same tree may be converted
// concurrently from multiple goroutines.
type SchemaNode struct {
	// Kind is the declared type of this node.
	Kind TypeKind
	// Name is the field identifier. It is empty for the root node and for
	// element schemas of Sequence/Set nodes.
	Name string
	// Required marks this node for inclusion in the parent mapping's
	// "required" list.
	Required bool
	// Validators are applied in order; on keyword collision the
	// last-applied validator wins.
	Validators []Validator
	// Children holds nested nodes. Mapping: named fields in declared order.
	// Sequence: exactly one element schema. Set: at most one element
	// schema. Tuple: positional elements. Scalars: empty.
	Children []*SchemaNode
}
