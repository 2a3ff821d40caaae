package mallet

import "github.com/reoring/mallet/i18n"

// Fragment is a set of JSON Schema keyword/value pairs produced by mapping a
// single validator. Fragments are merged into the node being converted; on
// keyword collision the last-applied fragment wins.
type Fragment map[string]any

// MapValidator translates one validator, in the context of the node's kind,
// into a JSON Schema keyword fragment. It is a pure function: it fails with
// incompatible_validator when the variant is structurally meaningless for the
// kind, and reports lossy mappings (Luhn) through the returned diagnostics
// rather than by failing. Returned Issues and Diagnostics carry no path; the
// converter stamps the node's path on propagation.
func MapValidator(v Validator, kind TypeKind) (Fragment, Diagnostics, error) {
	switch t := v.(type) {
	case Regex:
		if kind != KindString {
			return nil, nil, incompatible(t, kind)
		}
		return Fragment{"pattern": t.Pattern}, nil, nil
	case Email:
		if kind != KindString {
			return nil, nil, incompatible(t, kind)
		}
		return Fragment{"format": "email"}, nil, nil
	case Range:
		if !kind.numeric() {
			return nil, nil, incompatible(t, kind)
		}
		frag := Fragment{}
		if t.Min != nil {
			frag["minimum"] = *t.Min
		}
		if t.Max != nil {
			frag["maximum"] = *t.Max
		}
		return frag, nil, nil
	case Length:
		frag := Fragment{}
		switch kind {
		case KindString:
			if t.Min != nil {
				frag["minLength"] = *t.Min
			}
			if t.Max != nil {
				frag["maxLength"] = *t.Max
			}
		case KindSequence, KindTuple, KindSet:
			if t.Min != nil {
				frag["minItems"] = *t.Min
			}
			if t.Max != nil {
				frag["maxItems"] = *t.Max
			}
		default:
			return nil, nil, incompatible(t, kind)
		}
		return frag, nil, nil
	case OneOf:
		if !kind.scalar() {
			return nil, nil, incompatible(t, kind)
		}
		return Fragment{"enum": append([]any(nil), t.Choices...)}, nil, nil
	case ContainsOnly:
		if kind != KindSequence && kind != KindSet {
			return nil, nil, incompatible(t, kind)
		}
		return Fragment{"items": Fragment{"enum": append([]any(nil), t.Allowed...)}}, nil, nil
	case All:
		merged := Fragment{}
		var diags Diagnostics
		for _, sub := range t.Validators {
			frag, ds, err := MapValidator(sub, kind)
			if err != nil {
				return nil, nil, err
			}
			diags = append(diags, ds...)
			for kw, val := range frag {
				merged[kw] = val
			}
		}
		return merged, diags, nil
	case Luhn:
		if kind != KindString {
			return nil, nil, incompatible(t, kind)
		}
		// No draft-4 keyword can express a checksum; emit nothing.
		return Fragment{}, Diagnostics{{
			Code:    CodeLossyConversion,
			Message: i18n.T(CodeLossyConversion, map[string]string{"validator": "luhn"}),
			Params:  map[string]any{"validator": "luhn"},
		}}, nil
	}
	return nil, nil, incompatible(v, kind)
}

func incompatible(v Validator, kind TypeKind) error {
	return Issues{{
		Code: CodeIncompatibleValidator,
		Message: i18n.T(CodeIncompatibleValidator, map[string]string{
			"validator": v.validatorName(),
			"kind":      kind.String(),
		}),
		Params: map[string]any{"validator": v.validatorName(), "kind": kind.String()},
	}}
}
