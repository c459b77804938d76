package graph

import (
	"reflect"
	"testing"
)

// mutualTriangle builds a triangle with edges in both directions.
func mutualTriangle() *Model[CallNode] {
	g := New[CallNode]()
	a := g.AddNode(CallNode{Name: "a"})
	b := g.AddNode(CallNode{Name: "b"})
	c := g.AddNode(CallNode{Name: "c"})
	for _, pair := range [][2]NodeID{{a, b}, {b, a}, {b, c}, {c, b}, {a, c}, {c, a}} {
		g.AddEdge(pair[0], pair[1], 1, EdgeCall)
	}
	return g
}

func TestDensity(t *testing.T) {
	g := New[ModuleNode]()
	a := g.AddNode(ModuleNode{Name: "a"})
	b := g.AddNode(ModuleNode{Name: "b"})
	g.AddEdge(a, b, 1, EdgeImport)

	if got := Density(g); !almostEqual(got, 0.5) {
		t.Errorf("Density(2 nodes, 1 edge) = %v, want 0.5", got)
	}
	if got := Density(New[ModuleNode]()); got != 0 {
		t.Errorf("Density(empty) = %v, want 0", got)
	}

	single := New[ModuleNode]()
	single.AddNode(ModuleNode{Name: "only"})
	if got := Density(single); got != 0 {
		t.Errorf("Density(single) = %v, want 0", got)
	}
}

func TestClusteringCoefficient(t *testing.T) {
	// b has one neighbor on each side in the path graph but they are not
	// connected, so the coefficient is 0; the endpoints have one neighbor.
	path := pathGraph()
	for id := NodeID(0); int(id) < path.NodeCount(); id++ {
		if got := ClusteringCoefficient(path, id); got != 0 {
			t.Errorf("ClusteringCoefficient(path, %d) = %v, want 0", id, got)
		}
	}

	isolated := New[CallNode]()
	only := isolated.AddNode(CallNode{Name: "only"})
	if got := ClusteringCoefficient(isolated, only); got != 0 {
		t.Errorf("ClusteringCoefficient(isolated) = %v, want 0", got)
	}

	full := mutualTriangle()
	for id := NodeID(0); int(id) < full.NodeCount(); id++ {
		got := ClusteringCoefficient(full, id)
		if got <= 0 {
			t.Errorf("ClusteringCoefficient(mutual triangle, %d) = %v, want > 0", id, got)
		}
		if !almostEqual(got, 1.0) {
			t.Errorf("ClusteringCoefficient(mutual triangle, %d) = %v, want 1.0", id, got)
		}
	}

	directed := triangleGraph()
	if got := ClusteringCoefficient(directed, 0); !almostEqual(got, 0.5) {
		t.Errorf("ClusteringCoefficient(directed triangle, a) = %v, want 0.5", got)
	}
}

func TestAverageClustering(t *testing.T) {
	if got := AverageClustering(New[CallNode]()); got != 0 {
		t.Errorf("AverageClustering(empty) = %v, want 0", got)
	}
	if got := AverageClustering(mutualTriangle()); !almostEqual(got, 1.0) {
		t.Errorf("AverageClustering(mutual triangle) = %v, want 1.0", got)
	}
}

func TestAveragePathLength(t *testing.T) {
	// Reachable ordered pairs in a→b→c: a→b (1), a→c (2), b→c (1).
	if got := AveragePathLength(pathGraph()); !almostEqual(got, 4.0/3.0) {
		t.Errorf("AveragePathLength(path) = %v, want 4/3", got)
	}
	if got := AveragePathLength(New[CallNode]()); got != 0 {
		t.Errorf("AveragePathLength(empty) = %v, want 0", got)
	}

	disconnected := New[CallNode]()
	disconnected.AddNode(CallNode{Name: "a"})
	disconnected.AddNode(CallNode{Name: "b"})
	if got := AveragePathLength(disconnected); got != 0 {
		t.Errorf("AveragePathLength(disconnected) = %v, want 0", got)
	}
}

func TestDiameter(t *testing.T) {
	if got := Diameter(pathGraph()); got != 2 {
		t.Errorf("Diameter(path) = %d, want 2", got)
	}
	if got := Diameter(New[CallNode]()); got != 0 {
		t.Errorf("Diameter(empty) = %d, want 0", got)
	}
}

func TestStronglyConnectedComponents(t *testing.T) {
	components := StronglyConnectedComponents(triangleGraph())
	want := [][]string{{"a", "b", "c"}}
	if !reflect.DeepEqual(components, want) {
		t.Fatalf("SCCs = %v, want %v", components, want)
	}

	pathComponents := StronglyConnectedComponents(pathGraph())
	wantPath := [][]string{{"a"}, {"b"}, {"c"}}
	if !reflect.DeepEqual(pathComponents, wantPath) {
		t.Errorf("SCCs on acyclic path = %v, want %v", pathComponents, wantPath)
	}
}

func TestStronglyConnectedComponentsStableOrder(t *testing.T) {
	g := New[CallNode]()
	for _, name := range []string{"a", "b", "c", "m1", "m2", "lone"} {
		g.AddNode(CallNode{Name: name})
	}
	g.AddEdge(0, 1, 1, EdgeCall)
	g.AddEdge(1, 2, 1, EdgeCall)
	g.AddEdge(2, 0, 1, EdgeCall)
	g.AddEdge(3, 4, 1, EdgeCall)
	g.AddEdge(4, 3, 1, EdgeCall)

	first := StronglyConnectedComponents(g)
	want := [][]string{{"a", "b", "c"}, {"m1", "m2"}, {"lone"}}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("SCCs = %v, want %v", first, want)
	}
	for i := 0; i < 20; i++ {
		if got := StronglyConnectedComponents(g); !reflect.DeepEqual(got, first) {
			t.Fatalf("SCC order changed on call %d: %v vs %v", i, got, first)
		}
	}
}

func TestWeakComponents(t *testing.T) {
	g := pathGraph()
	g.AddNode(CallNode{Name: "isolated"})

	count, largest := WeakComponents(g)
	if count != 2 {
		t.Errorf("component count = %d, want 2", count)
	}
	if largest != 3 {
		t.Errorf("largest component = %d, want 3", largest)
	}

	count, largest = WeakComponents(New[CallNode]())
	if count != 0 || largest != 0 {
		t.Errorf("WeakComponents(empty) = %d, %d, want 0, 0", count, largest)
	}
}

func TestCommunitiesDeterministic(t *testing.T) {
	// Two triangles with a single bridge: an ambiguous enough structure
	// that an unseeded Louvain pass could land on different partitions.
	g := New[CallNode]()
	for i := 0; i < 6; i++ {
		g.AddNode(CallNode{Name: string(rune('a' + i))})
	}
	for _, pair := range [][2]NodeID{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {2, 3}} {
		g.AddEdge(pair[0], pair[1], 1, EdgeCall)
	}

	count, modularity := Communities(g)
	for i := 0; i < 20; i++ {
		c, m := Communities(g)
		if c != count || m != modularity {
			t.Fatalf("Communities changed on call %d: (%d, %v) vs (%d, %v)", i, c, m, count, modularity)
		}
	}
}

func TestCommunitiesEdgeless(t *testing.T) {
	g := New[CallNode]()
	g.AddNode(CallNode{Name: "a"})
	g.AddNode(CallNode{Name: "b"})

	count, modularity := Communities(g)
	if count != 2 {
		t.Errorf("community count = %d, want 2 (one per node)", count)
	}
	if modularity != 0 {
		t.Errorf("modularity = %v, want 0", modularity)
	}
}
