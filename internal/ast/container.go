package ast

// SetContainer records the non-owning back-link from child to its enclosing
// node. Called by the parser once a container's children are known, never
// during the children's own construction — the arena may still be growing
// when a child node id is captured.
func (b *Builder) SetContainer(child, container NodeID) {
	if !child.IsValid() {
		return
	}
	if n := b.Nodes.Get(child); n != nil {
		n.Container = container
	}
}

// LinkChildren calls SetContainer(child, container) for every child,
// skipping NoNodeID entries so callers can pass optional slots unchecked.
func (b *Builder) LinkChildren(container NodeID, children ...NodeID) {
	for _, c := range children {
		b.SetContainer(c, container)
	}
}

// Walk calls visit for node and then, depth-first, for every descendant
// reachable through Children. Traversal order is the per-Tag field order
// Children returns.
func (b *Builder) Walk(node NodeID, visit func(NodeID)) {
	if !node.IsValid() {
		return
	}
	visit(node)
	for _, child := range b.Children(node) {
		b.Walk(child, visit)
	}
}

// ContainerChain returns node's enclosing nodes, innermost first, by
// following Container back-links to the root.
func (b *Builder) ContainerChain(node NodeID) []NodeID {
	var chain []NodeID
	n := b.Nodes.Get(node)
	if n == nil {
		return chain
	}
	for cur := n.Container; cur.IsValid(); {
		chain = append(chain, cur)
		next := b.Nodes.Get(cur)
		if next == nil {
			break
		}
		cur = next.Container
	}
	return chain
}
