// Package graph implements the analysis core: a directed multigraph keyed by
// dense node indices, plus centrality, cycle, connectivity and coupling
// algorithms applied uniformly to call, dependency and inheritance graphs.
//
// Everything in this package is pure computation over in-memory graphs.
// Construction happens through Builder; algorithms never mutate a Model.
package graph

// NodeID is a dense index assigned on insertion. IDs are stable for the
// lifetime of a Model and are never reused.
type NodeID int32

// Payload is the data attached to a node. Each graph kind has its own
// payload type; Label is the serialization-facing identity used to key
// metric maps.
type Payload interface {
	Label() string
}

// CallNode identifies a function or method in the call graph.
type CallNode struct {
	Name string `json:"name"`
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
}

func (n CallNode) Label() string { return n.Name }

// ModuleNode identifies a module in the dependency graph.
type ModuleNode struct {
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	External bool   `json:"external,omitempty"`
}

func (n ModuleNode) Label() string { return n.Name }

// ClassNode identifies a class in the inheritance graph. Depth is the
// hierarchy depth reported by the upstream extractor, zero when unknown.
type ClassNode struct {
	Name  string `json:"name"`
	File  string `json:"file,omitempty"`
	Depth int    `json:"depth,omitempty"`
}

func (n ClassNode) Label() string { return n.Name }

// EdgeKind describes the relation an edge represents.
type EdgeKind string

const (
	EdgeCall    EdgeKind = "call"
	EdgeImport  EdgeKind = "import"
	EdgeInherit EdgeKind = "inherit"
)

// Edge is a directed edge. Weight is a call count, import count or
// inheritance arity depending on the graph kind.
type Edge struct {
	From   NodeID   `json:"from"`
	To     NodeID   `json:"to"`
	Weight float64  `json:"weight"`
	Kind   EdgeKind `json:"kind"`
}

// Model is a directed multigraph over payloads of type P. Parallel edges
// between the same pair of nodes are permitted. Model holds no algorithm
// logic; the analysis functions in this package borrow it read-only.
type Model[P Payload] struct {
	nodes []P
	out   [][]Edge
	in    [][]Edge
	edges int
}

// New returns an empty Model.
func New[P Payload]() *Model[P] {
	return &Model[P]{}
}

// AddNode appends a node and returns its index.
func (m *Model[P]) AddNode(payload P) NodeID {
	m.nodes = append(m.nodes, payload)
	m.out = append(m.out, nil)
	m.in = append(m.in, nil)
	return NodeID(len(m.nodes) - 1)
}

// ensure grows the node set so that id is a valid index. Auto-created nodes
// carry a zero payload; upstream builders are expected to register payloads
// before wiring edges, but edge insertion never fails on an unseen index.
func (m *Model[P]) ensure(id NodeID) {
	var zero P
	for NodeID(len(m.nodes)) <= id {
		m.AddNode(zero)
	}
}

// AddEdge inserts a directed edge, auto-creating any index not yet present.
func (m *Model[P]) AddEdge(from, to NodeID, weight float64, kind EdgeKind) {
	if from < 0 || to < 0 {
		return
	}
	if from > to {
		m.ensure(from)
	} else {
		m.ensure(to)
	}
	e := Edge{From: from, To: to, Weight: weight, Kind: kind}
	m.out[from] = append(m.out[from], e)
	m.in[to] = append(m.in[to], e)
	m.edges++
}

// NodeCount returns the number of nodes.
func (m *Model[P]) NodeCount() int { return len(m.nodes) }

// EdgeCount returns the number of edges, counting parallel edges separately.
func (m *Model[P]) EdgeCount() int { return m.edges }

// Node returns the payload at id. The zero payload is returned for an
// out-of-range index.
func (m *Model[P]) Node(id NodeID) P {
	if id < 0 || int(id) >= len(m.nodes) {
		var zero P
		return zero
	}
	return m.nodes[id]
}

// Label returns the label of the node at id.
func (m *Model[P]) Label(id NodeID) string { return m.Node(id).Label() }

// Nodes returns the payloads in insertion order. The slice is shared with
// the model and must not be modified.
func (m *Model[P]) Nodes() []P { return m.nodes }

// EdgesFrom returns the outgoing edges of id. The slice is shared with the
// model and must not be modified.
func (m *Model[P]) EdgesFrom(id NodeID) []Edge {
	if id < 0 || int(id) >= len(m.out) {
		return nil
	}
	return m.out[id]
}

// EdgesInto returns the incoming edges of id. The slice is shared with the
// model and must not be modified.
func (m *Model[P]) EdgesInto(id NodeID) []Edge {
	if id < 0 || int(id) >= len(m.in) {
		return nil
	}
	return m.in[id]
}

// OutDegree counts outgoing edges, parallel edges included.
func (m *Model[P]) OutDegree(id NodeID) int { return len(m.EdgesFrom(id)) }

// InDegree counts incoming edges, parallel edges included.
func (m *Model[P]) InDegree(id NodeID) int { return len(m.EdgesInto(id)) }

// FindEdge reports whether at least one edge from a to b exists.
func (m *Model[P]) FindEdge(a, b NodeID) bool {
	for _, e := range m.EdgesFrom(a) {
		if e.To == b {
			return true
		}
	}
	return false
}

// successorSet returns the distinct out-neighbors of id in first-seen order,
// collapsing parallel edges. Shortest-path algorithms traverse node
// adjacency, not individual edges.
func (m *Model[P]) successorSet(id NodeID) []NodeID {
	edges := m.EdgesFrom(id)
	if len(edges) == 0 {
		return nil
	}
	seen := make(map[NodeID]struct{}, len(edges))
	succ := make([]NodeID, 0, len(edges))
	for _, e := range edges {
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		succ = append(succ, e.To)
	}
	return succ
}

// neighborSet returns the distinct neighbors of id treating the graph as
// undirected (union of predecessors and successors), excluding id itself.
func (m *Model[P]) neighborSet(id NodeID) []NodeID {
	seen := make(map[NodeID]struct{})
	var neighbors []NodeID
	add := func(v NodeID) {
		if v == id {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		neighbors = append(neighbors, v)
	}
	for _, e := range m.EdgesFrom(id) {
		add(e.To)
	}
	for _, e := range m.EdgesInto(id) {
		add(e.From)
	}
	return neighbors
}

// bfsDistances returns hop distances from src along outgoing edges.
// Unreachable nodes are -1; src itself is 0.
func (m *Model[P]) bfsDistances(src NodeID) []int {
	dist := make([]int, len(m.nodes))
	for i := range dist {
		dist[i] = -1
	}
	if src < 0 || int(src) >= len(m.nodes) {
		return dist
	}
	dist[src] = 0
	queue := []NodeID{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range m.successorSet(u) {
			if dist[v] == -1 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}
