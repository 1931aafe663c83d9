package jsxtree

import "github.com/artursvonda/jsxlint/internal/findings"

// Handler inspects a single node and returns zero or more findings.
// Handlers must not retain the node or depend on visit order.
type Handler func(node Node) []findings.Finding

// Walk invokes the handler registered for each node's kind, in document
// order, and concatenates the returned findings into one ordered list.
// Nodes with no registered handler are passed over.
func Walk(tree *Tree, handlers map[NodeKind]Handler) []findings.Finding {
	var out []findings.Finding
	for _, node := range tree.Nodes {
		h, ok := handlers[node.Kind]
		if !ok {
			continue
		}

		out = append(out, h(node)...)
	}

	return out
}
