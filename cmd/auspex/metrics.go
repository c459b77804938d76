package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/auspexlabs/auspex/internal/output"
	"github.com/auspexlabs/auspex/internal/progress"
	"github.com/auspexlabs/auspex/internal/service/analysis"
	"github.com/auspexlabs/auspex/pkg/graph"
)

var metricsCmd = &cobra.Command{
	Use:     "metrics <manifest>",
	Aliases: []string{"m"},
	Short:   "Compute network metrics (clustering, path length, components)",
	Long: `Computes the heavier connectivity profile of each graph: density,
average clustering coefficient, average path length, diameter, weakly
connected components and community structure. Separate from analyze because
the all-pairs passes are expensive on large graphs.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc := analysis.New(analysis.WithConfig(cfg))

	tracker := progress.NewTracker("Profiling graphs...", 3)
	metrics, err := svc.NetworkMetrics(args[0], analysis.NetworkMetricsOptions{OnProgress: tracker.Tick})
	if err != nil {
		tracker.FinishError(err)
		return fmt.Errorf("metrics failed: %w", err)
	}
	tracker.FinishSuccess()

	formatter, err := output.NewFormatter(output.ParseFormat(cfg.Output.Format), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON {
		return formatter.Output(metrics)
	}
	return formatter.Output(networkMetricsTable(metrics))
}

func networkMetricsTable(metrics map[string]graph.NetworkMetrics) *output.Table {
	rows := make([][]string, 0, len(metrics))
	for _, name := range sortedKeys(metrics) {
		m := metrics[name]
		rows = append(rows, []string{
			name,
			formatFloat(m.Density),
			formatFloat(m.AverageClustering),
			fmt.Sprintf("%.2f", m.AveragePathLength),
			strconv.Itoa(m.Diameter),
			strconv.Itoa(m.ComponentCount),
			strconv.Itoa(m.LargestComponentSize),
			strconv.Itoa(m.CommunityCount),
			formatFloat(m.Modularity),
		})
	}
	return output.NewTable("Network Metrics",
		[]string{"Graph", "Density", "Clustering", "Avg Path", "Diameter", "Components", "Largest", "Communities", "Modularity"},
		rows, nil, metrics)
}
