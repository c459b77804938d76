package graph

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ClusteringCoefficient measures how interconnected a node's neighborhood
// is. The neighbor set treats the graph as undirected (union of predecessors
// and successors, self excluded); connections between neighbors are counted
// over ordered pairs, so the denominator is k(k-1). Nodes with fewer than
// two neighbors score 0.
func ClusteringCoefficient[P Payload](g *Model[P], id NodeID) float64 {
	neighbors := g.neighborSet(id)
	k := len(neighbors)
	if k < 2 {
		return 0
	}
	connected := 0
	for _, u := range neighbors {
		for _, v := range neighbors {
			if u != v && g.FindEdge(u, v) {
				connected++
			}
		}
	}
	return float64(connected) / float64(k*(k-1))
}

// AverageClustering is the mean clustering coefficient over all nodes, or 0
// for an empty graph.
func AverageClustering[P Payload](g *Model[P]) float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}
	total := 0.0
	for id := NodeID(0); int(id) < n; id++ {
		total += ClusteringCoefficient(g, id)
	}
	return total / float64(n)
}

// Density is e/(n(n-1)) for n>1, else 0. Parallel edges count separately,
// so a sufficiently aggregated multigraph can exceed 1.
func Density[P Payload](g *Model[P]) float64 {
	n := g.NodeCount()
	if n <= 1 {
		return 0
	}
	return float64(g.EdgeCount()) / (float64(n) * float64(n-1))
}

// AveragePathLength is the mean BFS hop distance over all ordered reachable
// pairs, self-pairs and unreachable pairs excluded. Graphs with fewer than
// two nodes, or with no reachable pairs, score 0.
func AveragePathLength[P Payload](g *Model[P]) float64 {
	n := g.NodeCount()
	if n < 2 {
		return 0
	}
	total := 0
	pairs := 0
	for src := NodeID(0); int(src) < n; src++ {
		for v, d := range g.bfsDistances(src) {
			if NodeID(v) == src || d < 0 {
				continue
			}
			total += d
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return float64(total) / float64(pairs)
}

// Diameter is the maximum finite BFS distance over all reachable pairs,
// 0 when no pair is reachable.
func Diameter[P Payload](g *Model[P]) int {
	n := g.NodeCount()
	max := 0
	for src := NodeID(0); int(src) < n; src++ {
		for _, d := range g.bfsDistances(src) {
			if d > max {
				max = d
			}
		}
	}
	return max
}

// toGonum projects the model onto gonum simple graphs for component and
// community queries. Self-loops and parallel edges are dropped; neither
// affects connectivity.
func toGonum[P Payload](g *Model[P]) (*simple.DirectedGraph, *simple.UndirectedGraph) {
	directed := simple.NewDirectedGraph()
	undirected := simple.NewUndirectedGraph()
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		directed.AddNode(simple.Node(i))
		undirected.AddNode(simple.Node(i))
	}
	for u := NodeID(0); int(u) < n; u++ {
		for _, e := range g.EdgesFrom(u) {
			if e.From == e.To {
				continue
			}
			from, to := simple.Node(e.From), simple.Node(e.To)
			directed.SetEdge(directed.NewEdge(from, to))
			undirected.SetEdge(undirected.NewEdge(from, to))
		}
	}
	return directed, undirected
}

// StronglyConnectedComponents returns Tarjan SCCs as label groups,
// singletons included. gonum walks its node maps in randomized order, so the
// raw SCC output varies between runs; the groups are canonicalized here by
// ascending node index, inside each component and across the component list,
// to keep repeated analyses byte-identical.
func StronglyConnectedComponents[P Payload](g *Model[P]) [][]string {
	if g.NodeCount() == 0 {
		return nil
	}
	directed, _ := toGonum(g)
	sccs := topo.TarjanSCC(directed)
	ids := make([][]int, 0, len(sccs))
	for _, scc := range sccs {
		members := make([]int, 0, len(scc))
		for _, node := range scc {
			members = append(members, int(node.ID()))
		}
		sort.Ints(members)
		ids = append(ids, members)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i][0] < ids[j][0] })
	components := make([][]string, 0, len(ids))
	for _, members := range ids {
		labels := make([]string, 0, len(members))
		for _, id := range members {
			labels = append(labels, g.Label(NodeID(id)))
		}
		components = append(components, labels)
	}
	return components
}

// WeakComponents returns the number of weakly connected components and the
// size of the largest one.
func WeakComponents[P Payload](g *Model[P]) (count, largest int) {
	if g.NodeCount() == 0 {
		return 0, 0
	}
	_, undirected := toGonum(g)
	components := topo.ConnectedComponents(undirected)
	for _, c := range components {
		if len(c) > largest {
			largest = len(c)
		}
	}
	return len(components), largest
}

// Communities detects modular structure on the undirected projection using
// Louvain modularization and returns the community count together with the
// modularity score Q. Graphs without edges trivially have one community per
// node and Q = 0. Modularize is seeded with a fixed source so repeated calls
// on the same graph agree even when the community structure is ambiguous.
func Communities[P Payload](g *Model[P]) (count int, modularity float64) {
	n := g.NodeCount()
	if n == 0 {
		return 0, 0
	}
	_, undirected := toGonum(g)
	edges := undirected.Edges()
	if edges == nil || !edges.Next() {
		return n, 0
	}
	reduced := community.Modularize(undirected, 1.0, rand.NewPCG(1, 1))
	communities := reduced.Communities()
	return len(communities), community.Q(undirected, communities, 1.0)
}
