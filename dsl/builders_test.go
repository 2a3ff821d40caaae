package dsl_test

import (
	"encoding/json"
	"reflect"
	"testing"

	mallet "github.com/reoring/mallet"
	g "github.com/reoring/mallet/dsl"
)

// normalize marshals v to JSON and unmarshals back into interface{} to remove ordering effects.
func normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	_ = json.Unmarshal(b, &out)
	return out
}

func TestBuilder_UserSchema(t *testing.T) {
	node := g.Object().
		Field("id", g.String().Pattern("^[a-z0-9-]+$")).Required().
		Field("email", g.String().Email()).Required().
		Field("age", g.Int().Range(0, 150)).
		Field("tags", g.Array(g.String()).Length(0, 10)).
		MustBuild()

	s, diags, err := mallet.Convert(node)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if diags.HasWarnings() {
		t.Fatalf("unexpected diagnostics: %v", diags.Messages())
	}

	got := normalize(s)
	want := normalize(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string", "pattern": "^[a-z0-9-]+$"},
			"email": map[string]any{"type": "string", "format": "email"},
			"age":   map[string]any{"type": "integer", "minimum": 0, "maximum": 150},
			"tags":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 0, "maxItems": 10},
		},
		"required": []any{"id", "email"},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("user schema mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestBuilder_NestedStructures(t *testing.T) {
	node := g.Object().
		Field("point", g.Tuple(g.Float(), g.Float())).Required().
		Field("colors", g.SetOf(g.String().OneOf("r", "g", "b"))).
		MustBuild()

	s, _, err := mallet.Convert(node)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	got := normalize(s)
	want := normalize(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"point": map[string]any{
				"type": "array",
				"items": []any{
					map[string]any{"type": "number"},
					map[string]any{"type": "number"},
				},
				"additionalItems": false,
			},
			"colors": map[string]any{
				"type":        "array",
				"uniqueItems": true,
				"items":       map[string]any{"type": "string", "enum": []any{"r", "g", "b"}},
			},
		},
		"required": []any{"point"},
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("nested schema mismatch\n got=%v\nwant=%v", got, want)
	}
}

func TestBuilder_ObjectInObject(t *testing.T) {
	inner := g.Object().
		Field("street", g.String()).Required()
	node := g.Object().
		Field("address", inner).Required().
		MustBuild()

	s, _, err := mallet.Convert(node)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	addr := s.Properties["address"]
	if addr == nil || addr.Type != "object" {
		t.Fatalf("nested object missing: %+v", s.Properties)
	}
	if !reflect.DeepEqual(addr.Required, []string{"street"}) {
		t.Fatalf("nested required = %v", addr.Required)
	}
}

func TestBuilder_RequireUnknownField(t *testing.T) {
	_, err := g.Object().
		Field("a", g.String()).
		Require("missing").
		Build()
	if err == nil {
		t.Fatalf("expected error for Require on undeclared field")
	}
}

func TestBuilder_FieldRedeclarationKeepsPosition(t *testing.T) {
	node := g.Object().
		Field("a", g.String()).Required().
		Field("b", g.Int()).
		Field("a", g.Bool()).
		MustBuild()

	if len(node.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(node.Children))
	}
	if node.Children[0].Name != "a" || node.Children[0].Kind != mallet.KindBoolean {
		t.Fatalf("redeclared field lost position or schema: %+v", node.Children[0])
	}
	if !node.Children[0].Required {
		t.Fatalf("redeclaration must keep the required mark")
	}
}
