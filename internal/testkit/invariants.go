// Package testkit holds shared invariant checks used by parser, symbols, and
// validate tests to assert structural properties of a built AST without
// duplicating the walk logic in every test file.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

// CheckSpanInvariants walks every node reachable from root and asserts:
//  1. root's span is non-empty and within the file's content bounds
//  2. every node's span is not inverted, belongs to sf, and (for a child)
//     is fully contained in its container's span
func CheckSpanInvariants(b *ast.Builder, root ast.NodeID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	if !root.IsValid() {
		return fmt.Errorf("invalid root node")
	}
	rootNode := b.Nodes.Get(root)
	if rootNode == nil {
		return fmt.Errorf("root node not found")
	}
	if rootNode.Span.End <= rootNode.Span.Start {
		return fmt.Errorf("root span is empty: %v", rootNode.Span)
	}
	if rootNode.Span.File != sf.ID {
		return fmt.Errorf("root span points to different file id: got=%d want=%d", rootNode.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if rootNode.Span.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", rootNode.Span.End, lenContent)
	}

	var walkErr error
	var visit func(id, container ast.NodeID)
	visit = func(id, container ast.NodeID) {
		if walkErr != nil || !id.IsValid() {
			return
		}
		n := b.Nodes.Get(id)
		if n == nil {
			walkErr = fmt.Errorf("nil node for id=%d", id)
			return
		}
		if n.Span.End < n.Span.Start {
			walkErr = fmt.Errorf("inverted span for node %d: %v", id, n.Span)
			return
		}
		if n.Span.File != sf.ID {
			walkErr = fmt.Errorf("node %d span file mismatch: got=%d want=%d", id, n.Span.File, sf.ID)
			return
		}
		if container.IsValid() {
			containerNode := b.Nodes.Get(container)
			if containerNode != nil && (n.Span.Start < containerNode.Span.Start || n.Span.End > containerNode.Span.End) {
				walkErr = fmt.Errorf("node %d span %v is outside container %d span %v", id, n.Span, container, containerNode.Span)
				return
			}
		}
		for _, child := range b.Children(id) {
			visit(child, id)
		}
	}
	visit(root, ast.NoNodeID)
	return walkErr
}
