package graph

import "sort"

// CentralityMetrics bundles the per-node centrality maps for one graph,
// keyed by node label. Eigenvector reuses the PageRank scores; it is a
// stand-in, not an independent computation.
type CentralityMetrics struct {
	Degree      map[string]float64 `json:"degree"`
	Betweenness map[string]float64 `json:"betweenness"`
	Closeness   map[string]float64 `json:"closeness"`
	PageRank    map[string]float64 `json:"pagerank"`
	Eigenvector map[string]float64 `json:"eigenvector"`
}

func maxEntry(m map[string]float64) (string, float64) {
	best := ""
	bestScore := 0.0
	first := true
	for label, score := range m {
		if first || score > bestScore || (score == bestScore && label < best) {
			best, bestScore = label, score
			first = false
		}
	}
	return best, bestScore
}

// MostCentralBetweenness returns the label and score of the node with the
// highest betweenness, ties broken by label.
func (c CentralityMetrics) MostCentralBetweenness() (string, float64) {
	return maxEntry(c.Betweenness)
}

// MostCentralCloseness returns the label and score of the node with the
// highest closeness, ties broken by label.
func (c CentralityMetrics) MostCentralCloseness() (string, float64) {
	return maxEntry(c.Closeness)
}

// HighestDegree returns the label and score of the node with the highest
// degree centrality, ties broken by label.
func (c CentralityMetrics) HighestDegree() (string, float64) {
	return maxEntry(c.Degree)
}

// RankedNode pairs a node label with a score for sorted reporting.
type RankedNode struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TopPageRank returns the n highest-ranked nodes in descending score order,
// ties broken by label.
func (c CentralityMetrics) TopPageRank(n int) []RankedNode {
	ranked := make([]RankedNode, 0, len(c.PageRank))
	for label, score := range c.PageRank {
		ranked = append(ranked, RankedNode{Label: label, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Label < ranked[j].Label
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// CentralityAverages holds the mean of each centrality map.
type CentralityAverages struct {
	Degree      float64 `json:"degree"`
	Betweenness float64 `json:"betweenness"`
	Closeness   float64 `json:"closeness"`
	PageRank    float64 `json:"pagerank"`
}

func mean(m map[string]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total / float64(len(m))
}

// Averages returns the mean score of each centrality measure.
func (c CentralityMetrics) Averages() CentralityAverages {
	return CentralityAverages{
		Degree:      mean(c.Degree),
		Betweenness: mean(c.Betweenness),
		Closeness:   mean(c.Closeness),
		PageRank:    mean(c.PageRank),
	}
}

// CycleAnalysis lists the simple cycles found per graph, as label sequences,
// plus the aggregate count.
type CycleAnalysis struct {
	CallCycles        [][]string `json:"call_cycles"`
	DependencyCycles  [][]string `json:"dependency_cycles"`
	InheritanceCycles [][]string `json:"inheritance_cycles"`
	TotalCycles       int        `json:"total_cycles"`
}

// ComponentAnalysis lists strongly connected components per graph,
// singletons included, plus the aggregate count.
type ComponentAnalysis struct {
	CallComponents        [][]string `json:"call_components"`
	DependencyComponents  [][]string `json:"dependency_components"`
	InheritanceComponents [][]string `json:"inheritance_components"`
	TotalComponents       int        `json:"total_components"`
}

// ModuleCoupling holds the coupling measures of one module. Abstractness is
// a fixed 0.5 placeholder; computing it for real needs interface and
// implementation counts this layer never sees.
type ModuleCoupling struct {
	Afferent     int     `json:"afferent"`
	Efferent     int     `json:"efferent"`
	Instability  float64 `json:"instability"`
	Abstractness float64 `json:"abstractness"`
	Distance     float64 `json:"distance"`
}

// Total is afferent plus efferent coupling.
func (m ModuleCoupling) Total() int { return m.Afferent + m.Efferent }

// CouplingMetrics holds per-module coupling for the dependency graph plus
// summary statistics.
type CouplingMetrics struct {
	Modules            map[string]ModuleCoupling `json:"modules"`
	AverageAfferent    float64                   `json:"average_afferent"`
	AverageEfferent    float64                   `json:"average_efferent"`
	AverageInstability float64                   `json:"average_instability"`
	AverageDistance    float64                   `json:"average_distance"`
	MaxCoupling        int                       `json:"max_coupling"`
}

// MostCoupled returns the module with the highest total coupling, ties
// broken by name.
func (c CouplingMetrics) MostCoupled() (string, ModuleCoupling) {
	best := ""
	var bestCoupling ModuleCoupling
	first := true
	for name, m := range c.Modules {
		if first || m.Total() > bestCoupling.Total() ||
			(m.Total() == bestCoupling.Total() && name < best) {
			best, bestCoupling = name, m
			first = false
		}
	}
	return best, bestCoupling
}

// MostUnstable returns the module with the highest instability, ties broken
// by name.
func (c CouplingMetrics) MostUnstable() (string, ModuleCoupling) {
	best := ""
	var bestCoupling ModuleCoupling
	first := true
	for name, m := range c.Modules {
		if first || m.Instability > bestCoupling.Instability ||
			(m.Instability == bestCoupling.Instability && name < best) {
			best, bestCoupling = name, m
			first = false
		}
	}
	return best, bestCoupling
}

// Stats are per-graph scalar aggregates included in every analysis result.
type Stats struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	Density       float64 `json:"density"`
	IsCyclic      bool    `json:"is_cyclic"`
	AverageDegree float64 `json:"average_degree"`
}

// Statistics groups the per-graph stats of one analysis run.
type Statistics struct {
	CallGraph        Stats `json:"call_graph"`
	DependencyGraph  Stats `json:"dependency_graph"`
	InheritanceGraph Stats `json:"inheritance_graph"`
}

// NetworkMetrics is the heavier connectivity profile of one graph, produced
// separately from Analyze.
type NetworkMetrics struct {
	Density              float64 `json:"density"`
	AverageClustering    float64 `json:"clustering_coefficient"`
	AveragePathLength    float64 `json:"average_path_length"`
	Diameter             int     `json:"diameter"`
	ComponentCount       int     `json:"connected_components"`
	LargestComponentSize int     `json:"largest_component_size"`
	CommunityCount       int     `json:"community_count"`
	Modularity           float64 `json:"modularity"`
}

// IsSparse reports density below 0.1.
func (n NetworkMetrics) IsSparse() bool { return n.Density < 0.1 }

// IsDense reports density above 0.5.
func (n NetworkMetrics) IsDense() bool { return n.Density > 0.5 }

// ComplexityScore folds density, clustering and the inverse path length into
// a single 0..1 figure.
func (n NetworkMetrics) ComplexityScore() float64 {
	pathScore := 0.0
	if n.AveragePathLength > 0 {
		pathScore = 1 / n.AveragePathLength
		if pathScore > 1 {
			pathScore = 1
		}
	}
	return (n.Density + n.AverageClustering + pathScore) / 3
}

// AnalysisResult is the composite output of Analyzer.Analyze.
type AnalysisResult struct {
	CallCentrality        CentralityMetrics `json:"call_centrality"`
	DependencyCentrality  CentralityMetrics `json:"dependency_centrality"`
	InheritanceCentrality CentralityMetrics `json:"inheritance_centrality"`
	Cycles                CycleAnalysis     `json:"cycles"`
	Components            ComponentAnalysis `json:"components"`
	Coupling              CouplingMetrics   `json:"coupling"`
	Statistics            Statistics        `json:"statistics"`
}
