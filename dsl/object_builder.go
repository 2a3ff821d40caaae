package dsl

import (
	"fmt"

	mallet "github.com/reoring/mallet"
)

type objectBuilder struct {
	node   *mallet.SchemaNode
	byName map[string]*mallet.SchemaNode
	errs   []error
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object (mapping) builder. Field declaration order is
// preserved in the emitted properties and required lists.
func Object() *objectBuilder {
	return &objectBuilder{
		node:   &mallet.SchemaNode{Kind: mallet.KindMapping},
		byName: map[string]*mallet.SchemaNode{},
	}
}

// Field declares a named child. Declaring the same name twice replaces the
// earlier schema in place, keeping the original position.
func (b *objectBuilder) Field(name string, f Fielder) *fieldStep {
	n := f.schemaNode()
	n.Name = name
	if prev, ok := b.byName[name]; ok {
		for i, ch := range b.node.Children {
			if ch == prev {
				n.Required = prev.Required
				b.node.Children[i] = n
				break
			}
		}
	} else {
		b.node.Children = append(b.node.Children, n)
	}
	b.byName[name] = n
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.byName[f.name].Required = true
	return f.b
}

// Optional leaves the field optional and returns the builder.
func (f *fieldStep) Optional() *objectBuilder { return f.b }

func (f *fieldStep) Field(name string, fd Fielder) *fieldStep { return f.b.Field(name, fd) }
func (f *fieldStep) Require(names ...string) *objectBuilder   { return f.b.Require(names...) }
func (f *fieldStep) Build() (*mallet.SchemaNode, error)       { return f.b.Build() }
func (f *fieldStep) MustBuild() *mallet.SchemaNode            { return f.b.MustBuild() }

// Require marks one or more declared fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, name := range names {
		n, ok := b.byName[name]
		if !ok {
			b.errs = append(b.errs, fmt.Errorf("dsl: Require(%q) before Field(%q)", name, name))
			continue
		}
		n.Required = true
	}
	return b
}

// Build validates the builder and returns the object node.
func (b *objectBuilder) Build() (*mallet.SchemaNode, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return b.node, nil
}

// MustBuild is Build for static declarations; it panics on builder misuse.
func (b *objectBuilder) MustBuild() *mallet.SchemaNode {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

func (b *objectBuilder) schemaNode() *mallet.SchemaNode { return b.node }
