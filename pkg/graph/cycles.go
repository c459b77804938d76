package graph

import (
	"strconv"
	"strings"
)

// cycleFrame is one level of the iterative cycle-enumeration DFS.
type cycleFrame struct {
	node NodeID
	next int // index of the next outgoing edge to try
}

// FindAllCycles enumerates simple cycles by running a depth-first search
// from every node and recording the accumulated path whenever an edge leads
// back to the start with at least two nodes on the path. Self-loops are not
// reported; a cycle has length ≥2 edges. Rotations of the same cycle found
// from different starts are collapsed to a single canonical form (rotated so
// the smallest node index comes first).
//
// The traversal uses an explicit frame stack, so path depth is bounded by
// available heap rather than goroutine stack. Enumeration is exponential in
// the worst case; callers analyzing large dense graphs should prefer
// HasCycle when a boolean answer suffices.
func FindAllCycles[P Payload](g *Model[P]) [][]NodeID {
	n := g.NodeCount()
	var cycles [][]NodeID
	seen := make(map[string]struct{})

	onPath := make([]bool, n)
	for start := NodeID(0); int(start) < n; start++ {
		frames := []cycleFrame{{node: start}}
		path := []NodeID{start}
		onPath[start] = true

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			edges := g.EdgesFrom(top.node)
			if top.next < len(edges) {
				w := edges[top.next].To
				top.next++
				if w == start {
					if len(path) > 1 {
						cycle := canonicalCycle(path)
						key := cycleKey(cycle)
						if _, dup := seen[key]; !dup {
							seen[key] = struct{}{}
							cycles = append(cycles, cycle)
						}
					}
					continue
				}
				if !onPath[w] {
					onPath[w] = true
					path = append(path, w)
					frames = append(frames, cycleFrame{node: w})
				}
				continue
			}
			onPath[top.node] = false
			path = path[:len(path)-1]
			frames = frames[:len(frames)-1]
		}
	}
	return cycles
}

// canonicalCycle copies path rotated so its smallest node index is first.
func canonicalCycle(path []NodeID) []NodeID {
	min := 0
	for i, id := range path {
		if id < path[min] {
			min = i
		}
	}
	cycle := make([]NodeID, len(path))
	copy(cycle, path[min:])
	copy(cycle[len(path)-min:], path[:min])
	return cycle
}

func cycleKey(cycle []NodeID) string {
	var b strings.Builder
	for i, id := range cycle {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

// HasCycle reports whether the graph contains any directed cycle, including
// self-loops. It runs a three-state DFS with an explicit stack, far cheaper
// than full enumeration.
func HasCycle[P Payload](g *Model[P]) bool {
	const (
		unvisited = iota
		onStack
		done
	)
	n := g.NodeCount()
	state := make([]uint8, n)

	for root := NodeID(0); int(root) < n; root++ {
		if state[root] != unvisited {
			continue
		}
		frames := []cycleFrame{{node: root}}
		state[root] = onStack
		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			edges := g.EdgesFrom(top.node)
			if top.next < len(edges) {
				w := edges[top.next].To
				top.next++
				switch state[w] {
				case onStack:
					return true
				case unvisited:
					state[w] = onStack
					frames = append(frames, cycleFrame{node: w})
				}
				continue
			}
			state[top.node] = done
			frames = frames[:len(frames)-1]
		}
	}
	return false
}
