package ast

import "sysmlc/internal/source"

// Node is the single tagged-variant record every AST node is stored as. The
// concrete payload lives in a kind-specific arena on the Builder, addressed
// by Payload; Tag (and ElementKind, for the Definition/Usage family) says
// which arena to look in. Container is the non-owning back-link to the
// enclosing node, set once construction finishes — see container.go.
type Node struct {
	Tag       Tag
	Span      source.Span
	Container NodeID
	Payload   PayloadID
}

type Nodes struct {
	Arena *Arena[Node]
}

func NewNodes(capHint uint) *Nodes {
	return &Nodes{Arena: NewArena[Node](capHint)}
}

func (n *Nodes) new(tag Tag, span source.Span, payload PayloadID) NodeID {
	return NodeID(n.Arena.Allocate(Node{Tag: tag, Span: span, Payload: payload}))
}

func (n *Nodes) Get(id NodeID) *Node {
	return n.Arena.Get(uint32(id))
}
