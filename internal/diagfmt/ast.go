package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sysmlc/internal/ast"
	"sysmlc/internal/source"
)

// ASTNodeOutput is the JSON shape for one node of an exported AST tree, kept
// generic across every node Tag rather than one struct per grammar
// production — the arena's single Node shape (Tag + Span + Payload) means
// one recursive walk driven by Builder.Children covers every node kind.
type ASTNodeOutput struct {
	Tag      string          `json:"tag"`
	Span     source.Span     `json:"span"`
	Label    string          `json:"label,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty renders root's subtree as an indented tree: one line per
// node, its Tag plus an optional label carrying the node's name or literal
// text, followed by its resolved span. strs resolves the StringIDs a
// definition's name, a qualified name's parts, and an alias member's name
// were interned under.
func FormatASTPretty(w io.Writer, builder *ast.Builder, root ast.NodeID, strs *source.Interner, fs *source.FileSet) error {
	if !root.IsValid() {
		return fmt.Errorf("invalid root node")
	}
	fmt.Fprintln(w, nodeLine(builder, root, strs, fs))
	return formatChildrenPretty(w, builder, root, strs, fs, "")
}

func nodeLine(builder *ast.Builder, id ast.NodeID, strs *source.Interner, fs *source.FileSet) string {
	n := builder.Nodes.Get(id)
	if n == nil {
		return "<nil node>"
	}
	line := n.Tag.String()
	if label := nodeLabel(builder, n.Tag, id, strs); label != "" {
		line += " " + label
	}
	return line + " (" + formatSpan(n.Span, fs) + ")"
}

func formatChildrenPretty(w io.Writer, builder *ast.Builder, id ast.NodeID, strs *source.Interner, fs *source.FileSet, prefix string) error {
	children := builder.Children(id)
	for i, child := range children {
		isLast := i == len(children)-1
		branch, childPrefix := "├─ ", prefix+"│  "
		if isLast {
			branch, childPrefix = "└─ ", prefix+"   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLine(builder, child, strs, fs))
		if err := formatChildrenPretty(w, builder, child, strs, fs, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

// FormatASTJSON renders root's subtree as nested ASTNodeOutput records.
func FormatASTJSON(w io.Writer, builder *ast.Builder, root ast.NodeID, strs *source.Interner) error {
	if !root.IsValid() {
		return fmt.Errorf("invalid root node")
	}
	node, err := buildASTNodeOutput(builder, root, strs)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(node)
}

func buildASTNodeOutput(builder *ast.Builder, id ast.NodeID, strs *source.Interner) (ASTNodeOutput, error) {
	n := builder.Nodes.Get(id)
	if n == nil {
		return ASTNodeOutput{}, fmt.Errorf("node not found: %d", id)
	}
	out := ASTNodeOutput{
		Tag:   n.Tag.String(),
		Span:  n.Span,
		Label: nodeLabel(builder, n.Tag, id, strs),
	}
	for _, child := range builder.Children(id) {
		childOut, err := buildASTNodeOutput(builder, child, strs)
		if err != nil {
			return ASTNodeOutput{}, err
		}
		out.Children = append(out.Children, childOut)
	}
	return out, nil
}

// nodeLabel extracts the short human-readable detail worth showing inline
// next to a node's Tag: a definition/usage's name, a qualified name's
// dotted path, or a literal's exact text. Nodes with no interesting scalar
// payload (bodies, memberships, operators expressed purely by Tag) get no
// label — their children tell the whole story.
func nodeLabel(builder *ast.Builder, tag ast.Tag, id ast.NodeID, strs *source.Interner) string {
	switch tag {
	case ast.TagDefinition, ast.TagUsage:
		if p, ok := builder.DefUse(id); ok {
			kind := p.ElementKind.String()
			if p.HasName {
				return fmt.Sprintf("%s %q", kind, strs.MustLookup(p.Name))
			}
			return kind
		}
	case ast.TagQualifiedName:
		if p, ok := builder.QualifiedName(id); ok {
			parts := make([]string, len(p.Parts))
			for i, part := range p.Parts {
				parts[i] = strs.MustLookup(part)
			}
			return strings.Join(parts, "::")
		}
	case ast.TagExprLiteral:
		if p, ok := builder.ExprLiteral(id); ok {
			return p.Text
		}
	case ast.TagPackageBody:
		if p, ok := builder.PackageBody(id); ok && p.HasName {
			return strs.MustLookup(p.Name)
		}
	case ast.TagAliasMember:
		if p, ok := builder.AliasMember(id); ok {
			return strs.MustLookup(p.AliasName)
		}
	}
	return ""
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
