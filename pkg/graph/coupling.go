package graph

import "math"

// placeholderAbstractness stands in for real abstractness, which would need
// interface/implementation counts unavailable from the graph alone.
const placeholderAbstractness = 0.5

// AnalyzeCoupling computes afferent/efferent coupling and derived measures
// for every module in the dependency graph. Instability is Ce/(Ca+Ce), 0
// when a module is fully isolated; distance is the module's offset from the
// main sequence, |A+I-1|.
func AnalyzeCoupling(g *Model[ModuleNode]) CouplingMetrics {
	n := g.NodeCount()
	metrics := CouplingMetrics{Modules: make(map[string]ModuleCoupling, n)}
	if n == 0 {
		return metrics
	}

	var sumCa, sumCe, sumInstability, sumDistance float64
	for id := NodeID(0); int(id) < n; id++ {
		ca := g.InDegree(id)
		ce := g.OutDegree(id)
		instability := 0.0
		if ca+ce > 0 {
			instability = float64(ce) / float64(ca+ce)
		}
		distance := math.Abs(placeholderAbstractness + instability - 1)
		m := ModuleCoupling{
			Afferent:     ca,
			Efferent:     ce,
			Instability:  instability,
			Abstractness: placeholderAbstractness,
			Distance:     distance,
		}
		metrics.Modules[g.Label(id)] = m

		sumCa += float64(ca)
		sumCe += float64(ce)
		sumInstability += instability
		sumDistance += distance
		if m.Total() > metrics.MaxCoupling {
			metrics.MaxCoupling = m.Total()
		}
	}

	metrics.AverageAfferent = sumCa / float64(n)
	metrics.AverageEfferent = sumCe / float64(n)
	metrics.AverageInstability = sumInstability / float64(n)
	metrics.AverageDistance = sumDistance / float64(n)
	return metrics
}
