package graph

// Centrality defaults used by Analyzer.Analyze.
const (
	DefaultPageRankDamping   = 0.85
	DefaultPageRankMaxIter   = 100
	DefaultPageRankTolerance = 1e-6
)

// DegreeCentrality scores each node by (in+out)/(n-1). Self-loops count
// toward both degrees. Graphs with one node or fewer yield an empty map.
func DegreeCentrality[P Payload](g *Model[P]) map[string]float64 {
	n := g.NodeCount()
	if n <= 1 {
		return map[string]float64{}
	}
	scores := make(map[string]float64, n)
	for id := NodeID(0); int(id) < n; id++ {
		deg := g.InDegree(id) + g.OutDegree(id)
		scores[g.Label(id)] = float64(deg) / float64(n-1)
	}
	return scores
}

// BetweennessCentrality runs Brandes' accumulation from every source: a BFS
// computes shortest-path counts and predecessor lists, then a reverse
// stack-order pass sums dependency contributions into each node except the
// source. Scores are normalized by (n-1)(n-2) for n>2 and left unnormalized
// otherwise; the directed convention is used, so values are not halved.
//
// This is O(n·e) and the expensive part of a full analysis on dense graphs.
func BetweennessCentrality[P Payload](g *Model[P]) map[string]float64 {
	n := g.NodeCount()
	centrality := make([]float64, n)

	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	preds := make([][]NodeID, n)

	for s := NodeID(0); int(s) < n; s++ {
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
			preds[i] = preds[i][:0]
		}
		sigma[s] = 1
		dist[s] = 0

		stack := make([]NodeID, 0, n)
		queue := []NodeID{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			stack = append(stack, u)
			for _, v := range g.successorSet(u) {
				if dist[v] == -1 {
					dist[v] = dist[u] + 1
					queue = append(queue, v)
				}
				if dist[v] == dist[u]+1 {
					sigma[v] += sigma[u]
					preds[v] = append(preds[v], u)
				}
			}
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				centrality[w] += delta[w]
			}
		}
	}

	scores := make(map[string]float64, n)
	norm := float64(n-1) * float64(n-2)
	for id := NodeID(0); int(id) < n; id++ {
		c := centrality[id]
		if n > 2 {
			c /= norm
		}
		scores[g.Label(id)] = c
	}
	return scores
}

// ClosenessCentrality scores each node by (reachable-1)/Σdist over the nodes
// reachable through outgoing edges, or 0 when nothing else is reachable.
func ClosenessCentrality[P Payload](g *Model[P]) map[string]float64 {
	n := g.NodeCount()
	scores := make(map[string]float64, n)
	for id := NodeID(0); int(id) < n; id++ {
		dist := g.bfsDistances(id)
		reachable := 0
		total := 0
		for _, d := range dist {
			if d >= 0 {
				reachable++
				total += d
			}
		}
		if reachable > 1 && total > 0 {
			scores[g.Label(id)] = float64(reachable-1) / float64(total)
		} else {
			scores[g.Label(id)] = 0
		}
	}
	return scores
}

// PageRank runs power iteration from a uniform start. Each round sets
// rank'(v) = (1-d)/n + d·Σ_{u→v} rank(u)/outdeg(u) and stops once the
// largest per-node change drops below tolerance. Dangling nodes keep their
// mass instead of redistributing it, so ranks sum below 1 when any node has
// no outgoing edges. Callers depend on that behavior; changing it would
// shift every downstream score.
func PageRank[P Payload](g *Model[P], damping float64, maxIter int, tolerance float64) map[string]float64 {
	n := g.NodeCount()
	if n == 0 {
		return map[string]float64{}
	}

	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / float64(n)
	}

	base := (1 - damping) / float64(n)
	for iter := 0; iter < maxIter; iter++ {
		for i := range next {
			next[i] = base
		}
		for u := NodeID(0); int(u) < n; u++ {
			out := g.OutDegree(u)
			if out == 0 {
				continue
			}
			share := damping * rank[u] / float64(out)
			for _, e := range g.EdgesFrom(u) {
				next[e.To] += share
			}
		}

		maxDelta := 0.0
		for i := range rank {
			d := next[i] - rank[i]
			if d < 0 {
				d = -d
			}
			if d > maxDelta {
				maxDelta = d
			}
		}
		rank, next = next, rank
		if maxDelta < tolerance {
			break
		}
	}

	scores := make(map[string]float64, n)
	for id := NodeID(0); int(id) < n; id++ {
		scores[g.Label(id)] = rank[id]
	}
	return scores
}
