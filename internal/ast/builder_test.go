package ast

import (
	"testing"

	"sysmlc/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: source.FileID(1), Start: start, End: end}
}

func TestNewBuilder_DefaultHintsApplied(t *testing.T) {
	b := NewBuilder(Hints{})
	if b.Nodes == nil || b.DefUses == nil || b.Literals == nil || b.Documentations == nil {
		t.Fatalf("NewBuilder left an arena nil: %+v", b)
	}
}

func TestRootNamespace_LinksMembershipChildren(t *testing.T) {
	b := NewBuilder(Hints{})

	name := b.NewQualifiedName(sp(0, 3), []source.StringID{1})
	def := b.NewDefinition(sp(0, 10), DefUsePayload{ElementKind: EKPart, Name: 2, HasName: true})
	owning := b.NewOwningMembership(sp(0, 10), VisPublic, false, def)
	_ = name

	root := b.NewRootNamespace(sp(0, 10), []NodeID{owning})

	if got := b.Nodes.Get(def).Container; got != owning {
		t.Fatalf("definition container = %v, want %v", got, owning)
	}
	if got := b.Nodes.Get(owning).Container; got != root {
		t.Fatalf("owning-membership container = %v, want %v", got, root)
	}

	kids := b.Children(root)
	if len(kids) != 1 || kids[0] != owning {
		t.Fatalf("RootNamespace children = %v, want [%v]", kids, owning)
	}
}

func TestDefinition_SharesPayloadAcrossElementKinds(t *testing.T) {
	b := NewBuilder(Hints{})

	part := b.NewDefinition(sp(0, 5), DefUsePayload{ElementKind: EKPart})
	action := b.NewDefinition(sp(5, 10), DefUsePayload{ElementKind: EKAction})

	pPart, ok := b.DefUse(part)
	if !ok || pPart.ElementKind != EKPart {
		t.Fatalf("part DefUse = %+v, ok=%v", pPart, ok)
	}
	pAction, ok := b.DefUse(action)
	if !ok || pAction.ElementKind != EKAction {
		t.Fatalf("action DefUse = %+v, ok=%v", pAction, ok)
	}

	if !b.IsDefinition(part) || b.IsUsage(part) {
		t.Fatalf("IsDefinition/IsUsage wrong for a Definition node")
	}
}

func TestUsage_OptionalChildrenWiredWhenPresent(t *testing.T) {
	b := NewBuilder(Hints{})

	mult := b.NewMultiplicityBounds(sp(0, 3), "0", true, "*")
	value := b.NewExprLiteral(sp(3, 4), 0, "1")

	usage := b.NewUsage(sp(0, 10), DefUsePayload{
		ElementKind:  EKAttribute,
		Multiplicity: mult,
		ValueKind:    ValueAssign,
		Value:        value,
	})

	if got := b.Nodes.Get(mult).Container; got != usage {
		t.Fatalf("multiplicity container = %v, want %v", got, usage)
	}
	if got := b.Nodes.Get(value).Container; got != usage {
		t.Fatalf("value container = %v, want %v", got, usage)
	}

	kids := b.Children(usage)
	foundMult, foundValue := false, false
	for _, k := range kids {
		if k == mult {
			foundMult = true
		}
		if k == value {
			foundValue = true
		}
	}
	if !foundMult || !foundValue {
		t.Fatalf("Children(usage) = %v, missing mult=%v or value=%v", kids, mult, value)
	}
}

func TestUsage_AbsentOptionalChildrenNotLinked(t *testing.T) {
	b := NewBuilder(Hints{})
	usage := b.NewUsage(sp(0, 5), DefUsePayload{ElementKind: EKAttribute})

	for _, k := range b.Children(usage) {
		if k == NoNodeID {
			t.Fatalf("Children must never include NoNodeID, got %v", b.Children(usage))
		}
	}
}

func TestExprBinary_LinksBothOperands(t *testing.T) {
	b := NewBuilder(Hints{})
	left := b.NewExprLiteral(sp(0, 1), 0, "1")
	right := b.NewExprLiteral(sp(4, 5), 0, "2")
	add := b.NewExprBinary(sp(0, 5), 0, left, right)

	if b.Nodes.Get(left).Container != add || b.Nodes.Get(right).Container != add {
		t.Fatalf("ExprBinary did not link both operands as children")
	}
	kids := b.Children(add)
	if len(kids) != 2 || kids[0] != left || kids[1] != right {
		t.Fatalf("Children(binary) = %v, want [%v %v]", kids, left, right)
	}
}

func TestContainerChain_WalksToRoot(t *testing.T) {
	b := NewBuilder(Hints{})

	lit := b.NewExprLiteral(sp(0, 1), 0, "1")
	paren := b.NewExprParen(sp(0, 3), lit)
	owning := b.NewOwningMembership(sp(0, 3), VisPublic, false, paren)
	root := b.NewRootNamespace(sp(0, 3), []NodeID{owning})

	chain := b.ContainerChain(lit)
	want := []NodeID{paren, owning, root}
	if len(chain) != len(want) {
		t.Fatalf("ContainerChain(lit) = %v, want %v", chain, want)
	}
	for i, id := range want {
		if chain[i] != id {
			t.Fatalf("ContainerChain(lit)[%d] = %v, want %v", i, chain[i], id)
		}
	}
}

func TestContainerChain_EmptyForRoot(t *testing.T) {
	b := NewBuilder(Hints{})
	root := b.NewRootNamespace(sp(0, 0), nil)
	if chain := b.ContainerChain(root); len(chain) != 0 {
		t.Fatalf("ContainerChain(root) = %v, want empty", chain)
	}
}

func TestWalk_VisitsEveryDescendantInSourceOrder(t *testing.T) {
	b := NewBuilder(Hints{})

	left := b.NewExprLiteral(sp(0, 1), 0, "1")
	right := b.NewExprLiteral(sp(4, 5), 0, "2")
	add := b.NewExprBinary(sp(0, 5), 0, left, right)
	owning := b.NewOwningMembership(sp(0, 5), VisPublic, false, add)
	root := b.NewRootNamespace(sp(0, 5), []NodeID{owning})

	var visited []NodeID
	b.Walk(root, func(id NodeID) { visited = append(visited, id) })

	want := []NodeID{root, owning, add, left, right}
	if len(visited) != len(want) {
		t.Fatalf("Walk visited %v, want %v", visited, want)
	}
	for i, id := range want {
		if visited[i] != id {
			t.Fatalf("Walk order[%d] = %v, want %v", i, visited[i], id)
		}
	}
}

func TestWalk_NoNodeIDIsNoop(t *testing.T) {
	b := NewBuilder(Hints{})
	calls := 0
	b.Walk(NoNodeID, func(NodeID) { calls++ })
	if calls != 0 {
		t.Fatalf("Walk(NoNodeID) called visit %d times, want 0", calls)
	}
}

func TestActionBody_SharedAcrossFourteenTags(t *testing.T) {
	b := NewBuilder(Hints{})

	guard := b.NewExprLiteral(sp(0, 4), 0, "true")
	ifAction := b.NewActionBody(TagIfAction, sp(0, 10), ActionBodyPayload{Guard: guard})
	sendAction := b.NewActionBody(TagSendAction, sp(10, 20), ActionBodyPayload{})

	if p, ok := b.ActionBody(ifAction); !ok || p.Guard != guard {
		t.Fatalf("ActionBody(ifAction) = %+v, ok=%v", p, ok)
	}
	if _, ok := b.ActionBody(sendAction); !ok {
		t.Fatalf("ActionBody(sendAction) ok = false, want true")
	}
	if _, ok := b.Transition(sendAction); ok {
		t.Fatalf("Transition(sendAction) ok = true, want false for a non-Transition node")
	}
}

func TestInlineMetadata_LinksTypeAndBody(t *testing.T) {
	b := NewBuilder(Hints{})

	typ := b.NewQualifiedName(sp(0, 4), []source.StringID{1})
	member := b.NewExprLiteral(sp(4, 6), 0, "1")
	meta := b.NewInlineMetadata(sp(0, 10), InlineMetadataPayload{
		Type: typ, HasBody: true, Body: []NodeID{member},
	})

	if b.Nodes.Get(typ).Container != meta {
		t.Fatalf("InlineMetadata did not link its type as a child")
	}
	kids := b.Children(meta)
	if len(kids) != 2 || kids[0] != typ || kids[1] != member {
		t.Fatalf("Children(inline metadata) = %v, want [%v %v]", kids, typ, member)
	}
}

func TestGetNoNodeIDReturnsNil(t *testing.T) {
	b := NewBuilder(Hints{})
	if n := b.Nodes.Get(NoNodeID); n != nil {
		t.Fatalf("Get(NoNodeID) = %+v, want nil", n)
	}
	if kids := b.Children(NoNodeID); kids != nil {
		t.Fatalf("Children(NoNodeID) = %v, want nil", kids)
	}
}
