package mallet

// Package mallet provides:
//
// - Compilation of schema-definition trees (SchemaNode) into JSON Schema draft-4 documents
// - A stable error model via Issues (dotted path, code, message)
// - A diagnostics channel for lossy or best-effort mappings (FixedPoint, Luhn)
// - Fluent tree construction under dsl/ and declarative YAML/JSON definitions under schemadoc/
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the builder DSL under dsl/, document loading under schemadoc/, and the CLI under cmd/mallet.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  node, err := schemadoc.FromYAML(data)
//  doc, diags, err := mallet.Convert(node)
//  out, err := mallet.EncodeDocument(doc, true)
//
//  for _, d := range diags {
//      log.Printf("lossy: %s at %s", d.Message, d.Path)
//  }
