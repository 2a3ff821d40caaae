package mallet

import "strconv"

// Path builds dotted field paths from the root in a chain-safe way. The root
// renders as "$", mapping children append ".name", sequence/set elements
// append "[]" and tuple elements append "[i]".
type Path string

// Root is the path of the root schema node.
const Root Path = "$"

// Field extends the path with a mapping child's name.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	return p + "." + Path(name)
}

// Item extends the path into a sequence or set element schema.
func (p Path) Item() Path { return p + "[]" }

// Index extends the path into the i-th tuple element.
func (p Path) Index(i int) Path { return p + "[" + Path(strconv.Itoa(i)) + "]" }

func (p Path) String() string { return string(p) }
