// Package analysis wires the manifest loader, graph builder and analyzer
// together for the CLI commands.
package analysis

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/auspexlabs/auspex/internal/manifest"
	"github.com/auspexlabs/auspex/pkg/config"
	"github.com/auspexlabs/auspex/pkg/graph"
)

// Service orchestrates graph analysis operations.
type Service struct {
	config *config.Config
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// New creates a new analysis service.
func New(opts ...Option) *Service {
	s := &Service{
		config: config.LoadOrDefault(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the service configuration.
func (s *Service) Config() *config.Config {
	return s.config
}

// LoadAnalyzer reads the relations manifest and builds an analyzer over its
// three graphs, applying the configured PageRank parameters.
func (s *Service) LoadAnalyzer(manifestPath string) (*graph.Analyzer, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	if m.RelationCount() == 0 && len(m.Functions)+len(m.Modules)+len(m.Classes) == 0 {
		return nil, fmt.Errorf("manifest %s contains no nodes or relations", manifestPath)
	}

	b := graph.NewBuilder()
	m.Populate(b)
	pr := s.config.PageRank
	return b.Build(graph.WithPageRank(pr.Damping, pr.MaxIterations, pr.Tolerance)), nil
}

// AnalyzeOptions configures a full analysis run.
type AnalyzeOptions struct {
	OnProgress func()
}

// Analyze loads the manifest and runs the full analysis pass.
func (s *Service) Analyze(manifestPath string, opts AnalyzeOptions) (*graph.AnalysisResult, error) {
	a, err := s.LoadAnalyzer(manifestPath)
	if err != nil {
		return nil, err
	}
	result := a.Analyze()
	if opts.OnProgress != nil {
		opts.OnProgress()
	}
	return result, nil
}

// NetworkMetricsOptions configures the connectivity pass.
type NetworkMetricsOptions struct {
	OnProgress func()
}

// NetworkMetrics loads the manifest and profiles the three graphs. The
// passes are independent, so they run on a worker pool; results are keyed
// by graph name and identical to a sequential run.
func (s *Service) NetworkMetrics(manifestPath string, opts NetworkMetricsOptions) (map[string]graph.NetworkMetrics, error) {
	a, err := s.LoadAnalyzer(manifestPath)
	if err != nil {
		return nil, err
	}

	var call, dep, inherit graph.NetworkMetrics
	p := pool.New().WithMaxGoroutines(3)
	p.Go(func() {
		call = a.CallNetworkMetrics()
		if opts.OnProgress != nil {
			opts.OnProgress()
		}
	})
	p.Go(func() {
		dep = a.DependencyNetworkMetrics()
		if opts.OnProgress != nil {
			opts.OnProgress()
		}
	})
	p.Go(func() {
		inherit = a.InheritanceNetworkMetrics()
		if opts.OnProgress != nil {
			opts.OnProgress()
		}
	})
	p.Wait()

	return map[string]graph.NetworkMetrics{
		graph.CallGraphName:        call,
		graph.DependencyGraphName:  dep,
		graph.InheritanceGraphName: inherit,
	}, nil
}

// CheckPatterns loads the manifest and runs the heuristic diagnostics.
func (s *Service) CheckPatterns(manifestPath string) (map[string][]string, error) {
	a, err := s.LoadAnalyzer(manifestPath)
	if err != nil {
		return nil, err
	}
	return a.CheckProblematicPatterns(), nil
}
