package graph

import (
	"strings"
	"testing"
)

func TestToMermaid(t *testing.T) {
	b := NewBuilder()
	b.AddCall("main", "helper", 5)
	b.AddCall("main", "helper", 2)
	b.AddCall("helper", "util", 1)

	out := ToMermaid(b.CallGraph())
	if !strings.HasPrefix(out, "graph TD\n") {
		t.Fatalf("output = %q, want graph TD header", out)
	}
	if !strings.Contains(out, `main_0["main"]`) {
		t.Errorf("output missing main node declaration:\n%s", out)
	}
	// Parallel edges collapse with summed weight.
	if !strings.Contains(out, "main_0 -->|7| helper_1") {
		t.Errorf("output missing weighted collapsed edge:\n%s", out)
	}
	if !strings.Contains(out, "helper_1 --> util_2") {
		t.Errorf("output missing unweighted edge:\n%s", out)
	}
}

func TestToMermaidSanitizesLabels(t *testing.T) {
	g := New[ModuleNode]()
	a := g.AddNode(ModuleNode{Name: "pkg/sub-mod"})
	b := g.AddNode(ModuleNode{Name: `say "hi"`})
	g.AddEdge(a, b, 1, EdgeImport)

	out := ToMermaid(g)
	if !strings.Contains(out, "pkg_sub_mod_0") {
		t.Errorf("output = %q, want sanitized identifier", out)
	}
	if strings.Contains(out, `"say "hi""`) {
		t.Errorf("output = %q, want quotes escaped", out)
	}
}
