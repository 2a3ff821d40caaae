// Package dsl provides a fluent builder DSL for mallet schema trees.
//
// Overview
//   - Leaf builders: String()/Int()/Float()/Decimal()/Bool()/Date()/DateTime()/Time() create scalar nodes.
//   - Structural builders: Object() with Field/Required/Require, Array(elem), Tuple(elems...), Set()/SetOf(elem).
//   - Constraint chaining: Pattern/Email/Range/Length/OneOf/ContainsOnly/Luhn append validators in order;
//     on keyword collision the last-applied validator wins at conversion time.
//   - Anything implementing Fielder can be embedded as a field or element, so
//     objects nest objects, arrays and tuples freely.
//
// Entry points
//   - Object(): create an object builder; chain Field/Required/Require then Build()/MustBuild().
//   - Array(elem)/Tuple(elems...)/Set(): structural nodes from element builders.
//   - Leaf builders above, plus Validate(v) as an escape hatch for pre-built validators.
//
// Design guidelines
//   - Builders produce plain *mallet.SchemaNode trees; no hidden state survives Build.
//   - Keep public APIs minimal; accept the small Fielder interface, return concrete nodes.
package dsl
