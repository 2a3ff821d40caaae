package mallet

import (
	"fmt"

	"github.com/reoring/mallet/i18n"
	js "github.com/reoring/mallet/jsonschema"
)

// Convert compiles a schema tree into a JSON Schema draft-4 document with
// default (strict) options. The tree is never mutated. On fatal failure no
// document is returned; diagnostics accompany a complete document only.
func Convert(node *SchemaNode) (*js.Schema, Diagnostics, error) {
	return ConvertWith(node, Options{})
}

// ConvertWith compiles a schema tree using the given options. Conversion
// state (path, diagnostics, recursion stack) is local to the call, so
// independent conversions may run concurrently without coordination.
func ConvertWith(node *SchemaNode, opts Options) (*js.Schema, Diagnostics, error) {
	c := &converter{opts: opts, onPath: make(map[*SchemaNode]struct{})}
	s, err := c.convert(node, Root)
	if err != nil {
		return nil, nil, err
	}
	if opts.SchemaURI {
		s.Schema = js.DraftV4URI
	}
	return s, c.diags, nil
}

type converter struct {
	opts  Options
	diags Diagnostics
	// onPath tracks the nodes on the current recursion path so cyclic
	// graphs fail with cyclic_schema instead of exhausting the stack.
	onPath map[*SchemaNode]struct{}
}

func (c *converter) convert(n *SchemaNode, at Path) (*js.Schema, error) {
	kind, err := Classify(n)
	if err != nil {
		return nil, stampPath(err, at)
	}
	if _, seen := c.onPath[n]; seen {
		return nil, Issues{IssueAt(at, CodeCyclicSchema, i18n.T(CodeCyclicSchema, nil), nil)}
	}
	c.onPath[n] = struct{}{}
	defer delete(c.onPath, n)

	typ, format := kind.primitive()
	s := &js.Schema{Type: typ, Format: format}

	if kind == KindFixedPoint {
		c.warn(at, CodeLossyConversion,
			i18n.T(CodeLossyConversion, map[string]string{"kind": "fixedpoint"}),
			map[string]any{"kind": "fixedpoint"})
	}

	// Structural recursion runs before validator merge so fragments that
	// target the element schema (ContainsOnly) union into it.
	switch kind {
	case KindMapping:
		s.Properties = make(map[string]*js.Schema, len(n.Children))
		for _, ch := range n.Children {
			// A nil child has no name to extend the path with; convert
			// rejects it via Classify at the parent's path.
			childPath := at
			if ch != nil {
				childPath = at.Field(ch.Name)
			}
			cs, err := c.convert(ch, childPath)
			if err != nil {
				return nil, err
			}
			s.Properties[ch.Name] = cs
			if ch.Required {
				s.Required = append(s.Required, ch.Name)
			}
		}
	case KindSequence:
		if len(n.Children) != 1 {
			return nil, Issues{{
				Path:    at.String(),
				Code:    CodeUnsupportedType,
				Message: i18n.T("sequence_arity", nil),
				Hint:    "declare a single child node describing the element type",
				Params:  map[string]any{"children": len(n.Children)},
			}}
		}
		cs, err := c.convert(n.Children[0], at.Item())
		if err != nil {
			return nil, err
		}
		s.Items = cs
	case KindSet:
		s.UniqueItems = true
		if len(n.Children) > 0 {
			cs, err := c.convert(n.Children[0], at.Item())
			if err != nil {
				return nil, err
			}
			s.Items = cs
		}
	case KindTuple:
		items := make([]*js.Schema, 0, len(n.Children))
		for i, ch := range n.Children {
			cs, err := c.convert(ch, at.Index(i))
			if err != nil {
				return nil, err
			}
			items = append(items, cs)
		}
		s.Items = items
		s.AdditionalItems = false
	}

	for _, v := range n.Validators {
		frag, ds, err := MapValidator(v, kind)
		if err != nil {
			if c.opts.Validators == ValidatorsLenient {
				c.warn(at, CodeIncompatibleValidator,
					i18n.T(CodeIncompatibleValidator, map[string]string{
						"validator": v.validatorName(),
						"kind":      kind.String(),
					}),
					map[string]any{"validator": v.validatorName(), "kind": kind.String()})
				continue
			}
			return nil, stampPath(err, at)
		}
		for i := range ds {
			ds[i].Path = at.String()
		}
		c.diags = append(c.diags, ds...)
		if err := applyFragment(s, frag); err != nil {
			return nil, stampPath(err, at)
		}
	}
	return s, nil
}

func (c *converter) warn(at Path, code, msg string, params map[string]any) {
	c.diags = append(c.diags, Diagnostic{Path: at.String(), Code: code, Message: msg, Params: params})
}

// applyFragment merges one keyword fragment into the assembled node.
// Repeated application of the same keyword overwrites, which yields the
// last-applied-wins collision policy across a node's validator list.
func applyFragment(s *js.Schema, frag Fragment) error {
	for kw, val := range frag {
		switch kw {
		case "pattern":
			s.Pattern = val.(string)
		case "format":
			s.Format = val.(string)
		case "enum":
			s.Enum = val.([]any)
		case "minimum":
			f := val.(float64)
			s.Minimum = &f
		case "maximum":
			f := val.(float64)
			s.Maximum = &f
		case "minLength":
			n := val.(int)
			s.MinLength = &n
		case "maxLength":
			n := val.(int)
			s.MaxLength = &n
		case "minItems":
			n := val.(int)
			s.MinItems = &n
		case "maxItems":
			n := val.(int)
			s.MaxItems = &n
		case "items":
			// Union into the already-converted element schema; its own
			// keywords survive, an existing enum is overwritten.
			elem, _ := s.Items.(*js.Schema)
			if elem == nil {
				elem = &js.Schema{}
				s.Items = elem
			}
			if err := applyFragment(elem, val.(Fragment)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("mallet: unsupported fragment keyword %q", kw)
		}
	}
	return nil
}

// stampPath fills the node path into issues produced by the path-agnostic
// leaf components (Classify, MapValidator).
func stampPath(err error, at Path) error {
	if iss, ok := AsIssues(err); ok {
		for i := range iss {
			if iss[i].Path == "" {
				iss[i].Path = at.String()
			}
		}
		return iss
	}
	return err
}
