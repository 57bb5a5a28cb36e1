package validate

import (
	"fmt"
	"sort"

	"sysmlc/internal/ast"
	"sysmlc/internal/diag"
	"sysmlc/internal/symbols"
)

// checkSpecializationCycles enriches check 3 with indirect-cycle detection
// (A :> B :> C :> A), which a single-definition self-check cannot see. Each
// definition is a DAG node, each specialization target that resolves to
// another definition is an edge, and the cycle set is whatever Kahn's
// algorithm leaves with nonzero indegree after exhausting every node that
// can be peeled off — the same leftover-after-peeling shape the teacher's
// module dependency-graph topological sort uses to report cyclic modules.
func checkSpecializationCycles(in Input) {
	g := buildSpecializationGraph(in)
	if len(g.nodes) == 0 {
		return
	}
	cyclic := kahnLeftover(g)
	if len(cyclic) == 0 {
		return
	}
	sort.Slice(cyclic, func(i, j int) bool { return cyclic[i] < cyclic[j] })
	for _, node := range cyclic {
		p, ok := in.Builder.DefUse(node)
		if !ok || !p.HasName {
			continue
		}
		n := in.Builder.Nodes.Get(node)
		name := in.Result.Strings.MustLookup(p.Name)
		kind := definitionKindLabel(p.ElementKind)
		diag.ReportError(in.Reporter, diag.ValSpecializationCycle, n.Span,
			fmt.Sprintf("%s definition '%s' participates in a specialization cycle", kind, name)).Emit()
	}
}

// specGraph is an adjacency-list graph over definition NodeIDs, built fresh
// per validation run rather than reusing symbols.Table's scopes, since a
// specialization edge is a cross-cutting relation the scope tree doesn't
// represent directly.
type specGraph struct {
	nodes []ast.NodeID
	edges map[ast.NodeID][]ast.NodeID
	indeg map[ast.NodeID]int
}

func buildSpecializationGraph(in Input) *specGraph {
	g := &specGraph{edges: make(map[ast.NodeID][]ast.NodeID), indeg: make(map[ast.NodeID]int)}
	lookup := symbols.NewLookup(in.Builder, in.Result)

	in.Builder.Walk(in.Root, func(node ast.NodeID) {
		n := in.Builder.Nodes.Get(node)
		if n == nil || n.Tag != ast.TagDefinition {
			return
		}
		p, ok := in.Builder.DefUse(node)
		if !ok {
			return
		}
		g.nodes = append(g.nodes, node)
		if _, seen := g.indeg[node]; !seen {
			g.indeg[node] = 0
		}
		for _, spec := range p.Specializations {
			qn, ok := in.Builder.QualifiedName(spec)
			if !ok {
				continue
			}
			target, consumed := lookup.Resolve(node, qn.Parts)
			if consumed != len(qn.Parts) || !target.IsValid() || target == node {
				continue
			}
			tn := in.Builder.Nodes.Get(target)
			if tn == nil || tn.Tag != ast.TagDefinition {
				continue
			}
			g.edges[node] = append(g.edges[node], target)
			g.indeg[target]++
		}
	})
	return g
}

// kahnLeftover peels off every node with indegree zero, repeatedly
// decrementing its successors' indegree, exactly as the teacher's
// ToposortKahn does — any node never peeled is part of a cycle.
func kahnLeftover(g *specGraph) []ast.NodeID {
	indeg := make(map[ast.NodeID]int, len(g.indeg))
	for k, v := range g.indeg {
		indeg[k] = v
	}

	queue := make([]ast.NodeID, 0, len(g.nodes))
	for _, n := range g.nodes {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i] < queue[j] })

	visited := make(map[ast.NodeID]bool, len(g.nodes))
	for len(queue) > 0 {
		next := make([]ast.NodeID, 0)
		for _, id := range queue {
			visited[id] = true
			for _, to := range g.edges[id] {
				indeg[to]--
				if indeg[to] == 0 {
					next = append(next, to)
				}
			}
		}
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		queue = next
	}

	var leftover []ast.NodeID
	for _, n := range g.nodes {
		if !visited[n] {
			leftover = append(leftover, n)
		}
	}
	return leftover
}
