package mallet_test

import (
	"reflect"
	"testing"

	mallet "github.com/reoring/mallet"
)

func TestMapValidator_RangeOmitsAbsentBounds(t *testing.T) {
	frag, _, err := mallet.MapValidator(mallet.Range{Min: fptr(3)}, mallet.KindInteger)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	want := mallet.Fragment{"minimum": 3.0}
	if !reflect.DeepEqual(frag, want) {
		t.Fatalf("fragment = %v, want %v", frag, want)
	}
	if _, ok := frag["maximum"]; ok {
		t.Fatalf("absent bound must be omitted, not zero")
	}
}

func TestMapValidator_LengthByKind(t *testing.T) {
	frag, _, err := mallet.MapValidator(mallet.Length{Min: iptr(1), Max: iptr(5)}, mallet.KindString)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if !reflect.DeepEqual(frag, mallet.Fragment{"minLength": 1, "maxLength": 5}) {
		t.Fatalf("string fragment = %v", frag)
	}

	frag, _, err = mallet.MapValidator(mallet.Length{Min: iptr(1), Max: iptr(5)}, mallet.KindTuple)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if !reflect.DeepEqual(frag, mallet.Fragment{"minItems": 1, "maxItems": 5}) {
		t.Fatalf("tuple fragment = %v", frag)
	}
}

func TestMapValidator_Incompatible(t *testing.T) {
	cases := []struct {
		v    mallet.Validator
		kind mallet.TypeKind
	}{
		{mallet.Length{Min: iptr(1)}, mallet.KindInteger},
		{mallet.Range{Min: fptr(1)}, mallet.KindString},
		{mallet.Regex{Pattern: "x"}, mallet.KindBoolean},
		{mallet.Email{}, mallet.KindInteger},
		{mallet.OneOf{Choices: []any{1}}, mallet.KindMapping},
		{mallet.ContainsOnly{Allowed: []any{1}}, mallet.KindString},
		{mallet.Luhn{}, mallet.KindInteger},
	}
	for _, tc := range cases {
		_, _, err := mallet.MapValidator(tc.v, tc.kind)
		iss, ok := mallet.AsIssues(err)
		if !ok {
			t.Fatalf("%T on %v: expected issues, got %v", tc.v, tc.kind, err)
		}
		if iss[0].Code != mallet.CodeIncompatibleValidator {
			t.Fatalf("%T on %v: code = %q", tc.v, tc.kind, iss[0].Code)
		}
	}
}

func TestMapValidator_AllMergesLastWins(t *testing.T) {
	v := mallet.All{Validators: []mallet.Validator{
		mallet.Range{Min: fptr(0), Max: fptr(100)},
		mallet.Range{Min: fptr(10)},
	}}
	frag, _, err := mallet.MapValidator(v, mallet.KindFloat)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if !reflect.DeepEqual(frag, mallet.Fragment{"minimum": 10.0, "maximum": 100.0}) {
		t.Fatalf("fragment = %v", frag)
	}
}

func TestMapValidator_AllPropagatesIncompatible(t *testing.T) {
	v := mallet.All{Validators: []mallet.Validator{
		mallet.Regex{Pattern: "x"},
		mallet.Range{Min: fptr(1)},
	}}
	_, _, err := mallet.MapValidator(v, mallet.KindString)
	if _, ok := mallet.AsIssues(err); !ok {
		t.Fatalf("expected incompatible range inside composite to fail, got %v", err)
	}
}

func TestMapValidator_LuhnEmitsNothingWithDiagnostic(t *testing.T) {
	frag, diags, err := mallet.MapValidator(mallet.Luhn{}, mallet.KindString)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(frag) != 0 {
		t.Fatalf("luhn fragment = %v, want empty", frag)
	}
	if len(diags) != 1 || diags[0].Code != mallet.CodeLossyConversion {
		t.Fatalf("diags = %v, want one lossy_conversion", diags)
	}
}

func TestMapValidator_ContainsOnly(t *testing.T) {
	frag, _, err := mallet.MapValidator(mallet.ContainsOnly{Allowed: []any{"a", "b"}}, mallet.KindSequence)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	sub, ok := frag["items"].(mallet.Fragment)
	if !ok {
		t.Fatalf("items fragment missing: %v", frag)
	}
	if !reflect.DeepEqual(sub["enum"], []any{"a", "b"}) {
		t.Fatalf("enum = %v", sub["enum"])
	}
}
