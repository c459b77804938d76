package graph

import (
	"fmt"
	"strings"
)

// ToMermaid renders the graph as a Mermaid flowchart for embedding in
// markdown reports. Parallel edges collapse into one arrow labeled with the
// summed weight when it exceeds 1.
func ToMermaid[P Payload](g *Model[P]) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	n := g.NodeCount()
	for id := NodeID(0); int(id) < n; id++ {
		label := g.Label(id)
		if label == "" {
			label = fmt.Sprintf("n%d", id)
		}
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", mermaidID(id, label), escapeMermaid(label))
	}

	type pair struct{ from, to NodeID }
	weights := make(map[pair]float64)
	var order []pair
	for u := NodeID(0); int(u) < n; u++ {
		for _, e := range g.EdgesFrom(u) {
			p := pair{e.From, e.To}
			if _, ok := weights[p]; !ok {
				order = append(order, p)
			}
			weights[p] += e.Weight
		}
	}
	for _, p := range order {
		from := mermaidID(p.from, g.Label(p.from))
		to := mermaidID(p.to, g.Label(p.to))
		if w := weights[p]; w > 1 {
			fmt.Fprintf(&b, "    %s -->|%g| %s\n", from, w, to)
		} else {
			fmt.Fprintf(&b, "    %s --> %s\n", from, to)
		}
	}
	return b.String()
}

// mermaidID builds a node identifier that is safe in Mermaid syntax and
// unique even when labels collide after sanitization.
func mermaidID(id NodeID, label string) string {
	var b strings.Builder
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return fmt.Sprintf("%s_%d", b.String(), id)
}

func escapeMermaid(label string) string {
	return strings.ReplaceAll(label, `"`, "#quot;")
}
