package jsxtree

import "fmt"

// NodeKind distinguishes the markup node varieties the scanner emits.
type NodeKind int

const (
	nodeKindInvalid NodeKind = iota

	// KindExpressionContainer is a brace-delimited embedded expression.
	KindExpressionContainer

	// KindElement is a <tag>...</tag> element including its children.
	KindElement

	// KindSelfClosingElement is a <tag ... /> element.
	KindSelfClosingElement

	// KindAttribute is a name or name=value pair inside a tag.
	KindAttribute
)

var nodeKindNames = map[NodeKind]string{
	KindExpressionContainer: "expression-container",
	KindElement:             "element",
	KindSelfClosingElement:  "self-closing-element",
	KindAttribute:           "attribute",
}

func (k NodeKind) String() string {
	v, ok := nodeKindNames[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", int(k))
	}

	return v
}

// Node is a read-only view over one contiguous span of source text.
// Text is always the exact slice of the source at [Offset, Offset+Width).
type Node struct {
	Kind   NodeKind
	Offset int
	Text   string
}

// Width returns the byte length of the node's span.
func (n Node) Width() int {
	return len(n.Text)
}

// Tree holds every markup node found in one source file, in document
// order: ascending start offset, enclosing nodes before enclosed ones.
type Tree struct {
	Source string
	Nodes  []Node
}
