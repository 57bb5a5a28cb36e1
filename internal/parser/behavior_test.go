package parser_test

import (
	"testing"

	"sysmlc/internal/ast"
)

func TestParseTransitionAllClauses(t *testing.T) {
	b, root, rep := parseString(
		`transition t1 first Idle accept evStart if guard do action effect then Running;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	tr, ok := b.Transition(firstElement(t, b, root))
	if !ok {
		t.Fatalf("expected a Transition node")
	}
	if !tr.HasName || tr.First == ast.NoNodeID || tr.Then == ast.NoNodeID {
		t.Fatalf("expected name, first, and then to all be set, got %+v", tr)
	}
	if tr.Accept == ast.NoNodeID || tr.Guard == ast.NoNodeID || tr.DoEffect == ast.NoNodeID {
		t.Fatalf("expected accept/guard/do clauses to all be set, got %+v", tr)
	}
}

func TestParseTransitionMinimal(t *testing.T) {
	b, root, rep := parseString(`transition first Idle then Running;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	tr, ok := b.Transition(firstElement(t, b, root))
	if !ok || tr.HasName {
		t.Fatalf("expected an anonymous transition, got %+v", tr)
	}
	if tr.Accept != ast.NoNodeID || tr.Guard != ast.NoNodeID || tr.DoEffect != ast.NoNodeID {
		t.Fatalf("expected no optional clauses, got %+v", tr)
	}
}

func TestParseSuccessionChain(t *testing.T) {
	b, root, rep := parseString(`succession first A then B then C;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	succ, ok := b.Succession(firstElement(t, b, root))
	if !ok || len(succ.Steps) != 3 {
		t.Fatalf("expected a 3-step succession, got %+v", succ)
	}
}

func TestParseSimpleActionStatements(t *testing.T) {
	for _, tc := range []struct {
		src string
		tag ast.Tag
	}{
		{`entry;`, ast.TagEntryAction},
		{`exit;`, ast.TagExitAction},
		{`do computeStep;`, ast.TagDoAction},
		{`perform act1;`, ast.TagPerformAction},
		{`assert x > 0;`, ast.TagAssertAction},
	} {
		b, root, rep := parseString(tc.src)
		if rep.HasErrors() {
			t.Fatalf("%q: unexpected errors: %v", tc.src, rep.Messages())
		}
		id := firstElement(t, b, root)
		ab, ok := b.ActionBody(id)
		if !ok {
			t.Fatalf("%q: expected an ActionBody node", tc.src)
		}
		_ = ab
	}
}

func TestParseIfActionWithElse(t *testing.T) {
	b, root, rep := parseString(`if x > 0 { perform positive; } else { perform negative; }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	ab, ok := b.ActionBody(firstElement(t, b, root))
	if !ok || ab.Guard == ast.NoNodeID {
		t.Fatalf("expected an if-action with a guard, got %+v", ab)
	}
	if len(ab.Operands) != 2 {
		t.Fatalf("expected then-branch plus else-branch operands, got %d", len(ab.Operands))
	}
}

func TestParseWhileActionWithUntil(t *testing.T) {
	b, root, rep := parseString(`while x < 10 until done { assign x := x + 1; }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	ab, ok := b.ActionBody(firstElement(t, b, root))
	if !ok || ab.Guard == ast.NoNodeID || len(ab.Operands) != 2 {
		t.Fatalf("expected a while-action with until + one body statement, got %+v", ab)
	}
}

func TestParseForActionOverIterable(t *testing.T) {
	b, root, rep := parseString(`for item in items { perform process; }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	ab, ok := b.ActionBody(firstElement(t, b, root))
	if !ok || !ab.HasName || len(ab.Operands) != 2 {
		t.Fatalf("expected a for-action with name, iterable, and one body statement, got %+v", ab)
	}
}

func TestParseAssignAction(t *testing.T) {
	b, root, rep := parseString(`assign counter := counter + 1;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	ab, ok := b.ActionBody(firstElement(t, b, root))
	if !ok || ab.Target == ast.NoNodeID || len(ab.Operands) != 1 {
		t.Fatalf("expected an assign action with target and one operand, got %+v", ab)
	}
}

func TestParseSendAndAcceptActions(t *testing.T) {
	b, root, rep := parseString(`send ev1 via outPort to target; accept ev2 via inPort if guard;`)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors: %v", rep.Messages())
	}
	rootNs, _ := b.RootNamespace(root)
	if len(rootNs.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(rootNs.Elements))
	}
	m0, _ := b.OwningMembership(rootNs.Elements[0])
	send, ok := b.ActionBody(m0.Element)
	if !ok || send.Target == ast.NoNodeID || send.Via == ast.NoNodeID || len(send.Operands) != 1 {
		t.Fatalf("expected a send action with target/via/to, got %+v", send)
	}
	m1, _ := b.OwningMembership(rootNs.Elements[1])
	accept, ok := b.ActionBody(m1.Element)
	if !ok || accept.Target == ast.NoNodeID || accept.Via == ast.NoNodeID || accept.Guard == ast.NoNodeID {
		t.Fatalf("expected an accept action with target/via/guard, got %+v", accept)
	}
}

func TestParseRedefinitionInsideActionBodyRecovers(t *testing.T) {
	// a required recovery hazard: a nested redefinition using ':>>' with no
	// preceding kind keyword must not hang the parser.
	_, root, rep := parseString(`action def A { :>> port = 3000; }`)
	if root == 0 {
		t.Fatalf("expected a partial AST even with the malformed nested redefinition")
	}
	if !rep.HasErrors() {
		t.Fatalf("expected at least one diagnostic for the malformed member")
	}
}
