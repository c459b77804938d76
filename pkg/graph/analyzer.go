package graph

import (
	"fmt"
	"sync"
)

// Analyzer owns the three frozen graph models of one analysis run and
// orchestrates the algorithm passes over them. Every derived result is
// recomputed on each call; the analyzer keeps no cached state, so repeated
// calls on the same graphs yield identical results.
type Analyzer struct {
	calls   *Model[CallNode]
	deps    *Model[ModuleNode]
	classes *Model[ClassNode]

	pagerankDamping   float64
	pagerankMaxIter   int
	pagerankTolerance float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithPageRank overrides the PageRank damping factor, iteration budget and
// convergence tolerance used by Analyze.
func WithPageRank(damping float64, maxIter int, tolerance float64) Option {
	return func(a *Analyzer) {
		a.pagerankDamping = damping
		a.pagerankMaxIter = maxIter
		a.pagerankTolerance = tolerance
	}
}

// NewAnalyzer wraps three already-built graphs. Nil graphs are replaced by
// empty ones.
func NewAnalyzer(calls *Model[CallNode], deps *Model[ModuleNode], classes *Model[ClassNode], opts ...Option) *Analyzer {
	if calls == nil {
		calls = New[CallNode]()
	}
	if deps == nil {
		deps = New[ModuleNode]()
	}
	if classes == nil {
		classes = New[ClassNode]()
	}
	a := &Analyzer{
		calls:             calls,
		deps:              deps,
		classes:           classes,
		pagerankDamping:   DefaultPageRankDamping,
		pagerankMaxIter:   DefaultPageRankMaxIter,
		pagerankTolerance: DefaultPageRankTolerance,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CallGraph returns the call graph.
func (a *Analyzer) CallGraph() *Model[CallNode] { return a.calls }

// DependencyGraph returns the dependency graph.
func (a *Analyzer) DependencyGraph() *Model[ModuleNode] { return a.deps }

// InheritanceGraph returns the inheritance graph.
func (a *Analyzer) InheritanceGraph() *Model[ClassNode] { return a.classes }

// centralityFor runs the four centrality passes over one graph. Eigenvector
// reuses the PageRank map.
func centralityFor[P Payload](g *Model[P], damping float64, maxIter int, tolerance float64) CentralityMetrics {
	pagerank := PageRank(g, damping, maxIter, tolerance)
	eigenvector := make(map[string]float64, len(pagerank))
	for label, score := range pagerank {
		eigenvector[label] = score
	}
	return CentralityMetrics{
		Degree:      DegreeCentrality(g),
		Betweenness: BetweennessCentrality(g),
		Closeness:   ClosenessCentrality(g),
		PageRank:    pagerank,
		Eigenvector: eigenvector,
	}
}

// cycleLabels renders node-index cycles as label sequences.
func cycleLabels[P Payload](g *Model[P], cycles [][]NodeID) [][]string {
	out := make([][]string, 0, len(cycles))
	for _, cycle := range cycles {
		labels := make([]string, len(cycle))
		for i, id := range cycle {
			labels[i] = g.Label(id)
		}
		out = append(out, labels)
	}
	return out
}

func statsFor[P Payload](g *Model[P]) Stats {
	n := g.NodeCount()
	e := g.EdgeCount()
	avgDegree := 0.0
	if n > 0 {
		avgDegree = 2 * float64(e) / float64(n)
	}
	return Stats{
		NodeCount:     n,
		EdgeCount:     e,
		Density:       Density(g),
		IsCyclic:      HasCycle(g),
		AverageDegree: avgDegree,
	}
}

// Analyze runs the full pass: centrality per graph, cycle enumeration,
// strongly connected components, dependency coupling and per-graph
// statistics. The three graphs are independent, so their centrality passes
// run concurrently.
func (a *Analyzer) Analyze() *AnalysisResult {
	result := &AnalysisResult{}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		result.CallCentrality = centralityFor(a.calls, a.pagerankDamping, a.pagerankMaxIter, a.pagerankTolerance)
	}()
	go func() {
		defer wg.Done()
		result.DependencyCentrality = centralityFor(a.deps, a.pagerankDamping, a.pagerankMaxIter, a.pagerankTolerance)
	}()
	go func() {
		defer wg.Done()
		result.InheritanceCentrality = centralityFor(a.classes, a.pagerankDamping, a.pagerankMaxIter, a.pagerankTolerance)
	}()

	result.Cycles = a.DetectCycles()
	result.Components = a.Components()
	result.Coupling = AnalyzeCoupling(a.deps)
	result.Statistics = Statistics{
		CallGraph:        statsFor(a.calls),
		DependencyGraph:  statsFor(a.deps),
		InheritanceGraph: statsFor(a.classes),
	}

	wg.Wait()
	return result
}

// DetectCycles enumerates simple cycles in all three graphs.
func (a *Analyzer) DetectCycles() CycleAnalysis {
	analysis := CycleAnalysis{
		CallCycles:        cycleLabels(a.calls, FindAllCycles(a.calls)),
		DependencyCycles:  cycleLabels(a.deps, FindAllCycles(a.deps)),
		InheritanceCycles: cycleLabels(a.classes, FindAllCycles(a.classes)),
	}
	analysis.TotalCycles = len(analysis.CallCycles) +
		len(analysis.DependencyCycles) +
		len(analysis.InheritanceCycles)
	return analysis
}

// Components computes strongly connected components in all three graphs,
// singletons included.
func (a *Analyzer) Components() ComponentAnalysis {
	analysis := ComponentAnalysis{
		CallComponents:        StronglyConnectedComponents(a.calls),
		DependencyComponents:  StronglyConnectedComponents(a.deps),
		InheritanceComponents: StronglyConnectedComponents(a.classes),
	}
	analysis.TotalComponents = len(analysis.CallComponents) +
		len(analysis.DependencyComponents) +
		len(analysis.InheritanceComponents)
	return analysis
}

// networkMetricsFor is the heavy per-graph connectivity pass.
func networkMetricsFor[P Payload](g *Model[P]) NetworkMetrics {
	componentCount, largest := WeakComponents(g)
	communityCount, modularity := Communities(g)
	return NetworkMetrics{
		Density:              Density(g),
		AverageClustering:    AverageClustering(g),
		AveragePathLength:    AveragePathLength(g),
		Diameter:             Diameter(g),
		ComponentCount:       componentCount,
		LargestComponentSize: largest,
		CommunityCount:       communityCount,
		Modularity:           modularity,
	}
}

// CallNetworkMetrics profiles the call graph.
func (a *Analyzer) CallNetworkMetrics() NetworkMetrics { return networkMetricsFor(a.calls) }

// DependencyNetworkMetrics profiles the dependency graph.
func (a *Analyzer) DependencyNetworkMetrics() NetworkMetrics { return networkMetricsFor(a.deps) }

// InheritanceNetworkMetrics profiles the inheritance graph.
func (a *Analyzer) InheritanceNetworkMetrics() NetworkMetrics { return networkMetricsFor(a.classes) }

// Graph name keys used in NetworkMetrics results and CLI output.
const (
	CallGraphName        = "call_graph"
	DependencyGraphName  = "dependency_graph"
	InheritanceGraphName = "inheritance_graph"
)

// NetworkMetrics runs the connectivity pass over all three graphs, keyed by
// graph name. It is separate from Analyze because the all-pairs work is
// considerably more expensive than the centrality passes.
func (a *Analyzer) NetworkMetrics() map[string]NetworkMetrics {
	return map[string]NetworkMetrics{
		CallGraphName:        a.CallNetworkMetrics(),
		DependencyGraphName:  a.DependencyNetworkMetrics(),
		InheritanceGraphName: a.InheritanceNetworkMetrics(),
	}
}

// Pattern thresholds. These are load-bearing: downstream reports compare
// message text across runs, so wording and limits stay fixed.
const (
	callCycleLimit          = 10
	instabilityLimit        = 0.8
	couplingLimit           = 20
	dependencyDensityLimit  = 0.3
	callDensityLimit        = 0.5
	patternCategoryCycles   = "cycles"
	patternCategoryCoupling = "coupling"
	patternCategoryDensity  = "density"
)

// CheckProblematicPatterns applies heuristic diagnostics over the cycle,
// coupling and density measures and returns human-readable messages grouped
// by category.
func (a *Analyzer) CheckProblematicPatterns() map[string][]string {
	patterns := make(map[string][]string)
	add := func(category, message string) {
		patterns[category] = append(patterns[category], message)
	}

	cycles := a.DetectCycles()
	if len(cycles.DependencyCycles) > 0 {
		add(patternCategoryCycles, fmt.Sprintf(
			"Found %d dependency cycles which can cause circular imports", len(cycles.DependencyCycles)))
	}
	if len(cycles.InheritanceCycles) > 0 {
		add(patternCategoryCycles, fmt.Sprintf(
			"Found %d inheritance cycles which indicate design problems", len(cycles.InheritanceCycles)))
	}
	if len(cycles.CallCycles) > callCycleLimit {
		add(patternCategoryCycles, fmt.Sprintf(
			"Found %d call cycles - consider refactoring recursive patterns", len(cycles.CallCycles)))
	}

	coupling := AnalyzeCoupling(a.deps)
	if coupling.AverageInstability > instabilityLimit {
		add(patternCategoryCoupling,
			"High average instability detected - modules are too dependent on others")
	}
	if coupling.MaxCoupling > couplingLimit {
		add(patternCategoryCoupling,
			"Modules with very high coupling detected - consider decomposition")
	}

	if Density(a.deps) > dependencyDensityLimit {
		add(patternCategoryDensity,
			"Dependency graph is very dense - consider modularization")
	}
	if Density(a.calls) > callDensityLimit {
		add(patternCategoryDensity,
			"Call graph is very dense - functions are tightly coupled")
	}
	return patterns
}
