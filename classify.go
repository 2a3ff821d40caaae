package mallet

import "github.com/reoring/mallet/i18n"

// Classify returns the TypeKind declared by node. Classification is driven
// purely by the declared kind; attached validators are never inspected. A
// kind outside the supported set fails with unsupported_type. The returned
// Issues carry no path; the converter stamps the node's path on propagation.
func Classify(node *SchemaNode) (TypeKind, error) {
	if node == nil {
		return KindInvalid, Issues{{
			Code:    CodeUnsupportedType,
			Message: i18n.T(CodeUnsupportedType, nil),
			Hint:    "nil schema node",
		}}
	}
	switch node.Kind {
	case KindInteger, KindFloat, KindFixedPoint,
		KindString, KindBoolean,
		KindDate, KindDateTime, KindTime,
		KindMapping, KindSequence, KindTuple, KindSet:
		return node.Kind, nil
	}
	return KindInvalid, Issues{{
		Code:    CodeUnsupportedType,
		Message: i18n.T(CodeUnsupportedType, map[string]string{"kind": node.Kind.String()}),
		Params:  map[string]any{"kind": int(node.Kind)},
	}}
}

// primitive returns the base JSON Schema "type" and "format" keywords for a
// kind. Formats for the date/time kinds are assigned here unconditionally,
// not through the validator path.
func (k TypeKind) primitive() (typ, format string) {
	switch k {
	case KindInteger:
		return "integer", ""
	case KindFloat, KindFixedPoint:
		return "number", ""
	case KindString:
		return "string", ""
	case KindBoolean:
		return "boolean", ""
	case KindDate:
		return "string", "date"
	case KindDateTime:
		return "string", "date-time"
	case KindTime:
		return "string", "time"
	case KindMapping:
		return "object", ""
	case KindSequence, KindTuple, KindSet:
		return "array", ""
	}
	return "", ""
}

// numeric reports whether Range can constrain the kind.
func (k TypeKind) numeric() bool {
	return k == KindInteger || k == KindFloat || k == KindFixedPoint
}

// scalar reports whether OneOf can constrain the kind.
func (k TypeKind) scalar() bool {
	switch k {
	case KindInteger, KindFloat, KindFixedPoint, KindString, KindBoolean, KindDate, KindDateTime, KindTime:
		return true
	}
	return false
}
