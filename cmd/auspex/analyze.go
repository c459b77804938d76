package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auspexlabs/auspex/internal/output"
	"github.com/auspexlabs/auspex/internal/progress"
	"github.com/auspexlabs/auspex/internal/service/analysis"
	"github.com/auspexlabs/auspex/pkg/config"
	"github.com/auspexlabs/auspex/pkg/graph"
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze <manifest>",
	Aliases: []string{"a"},
	Short:   "Run the full graph analysis on a relations manifest",
	Args:    cobra.ExactArgs(1),
	RunE:    runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc := analysis.New(analysis.WithConfig(cfg))

	spinner := progress.NewSpinner("Analyzing graphs...")
	result, err := svc.Analyze(args[0], analysis.AnalyzeOptions{OnProgress: spinner.Tick})
	if err != nil {
		spinner.FinishError(err)
		return fmt.Errorf("analysis failed: %w", err)
	}
	spinner.FinishSuccess()

	formatter, err := output.NewFormatter(output.ParseFormat(cfg.Output.Format), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON {
		return formatter.Output(result)
	}
	if cfg.Output.Verbose {
		formatter.Info("Analyzed %s", args[0])
	}
	return renderAnalysis(formatter, result, cfg.Report)
}

func renderAnalysis(f *output.Formatter, result *graph.AnalysisResult, report config.ReportConfig) error {
	stats := statsTable(result.Statistics)
	if err := f.Output(stats); err != nil {
		return err
	}

	if err := f.Output(topPageRankTable(result.CallCentrality, report.TopNodes)); err != nil {
		return err
	}

	if err := f.Output(couplingTable(result.Coupling, report.TopNodes)); err != nil {
		return err
	}

	if report.ShowCycles {
		if err := f.Output(cyclesSection(result.Cycles)); err != nil {
			return err
		}
	} else if result.Cycles.TotalCycles > 0 {
		f.Warning("%d cycles detected (cycle listing disabled)", result.Cycles.TotalCycles)
	}
	return nil
}

func statsRow(name string, s graph.Stats) []string {
	return []string{
		name,
		strconv.Itoa(s.NodeCount),
		strconv.Itoa(s.EdgeCount),
		formatFloat(s.Density),
		fmt.Sprintf("%.2f", s.AverageDegree),
		strconv.FormatBool(s.IsCyclic),
	}
}

func statsTable(stats graph.Statistics) *output.Table {
	return output.NewTable("Graph Statistics",
		[]string{"Graph", "Nodes", "Edges", "Density", "Avg Degree", "Cyclic"},
		[][]string{
			statsRow("call", stats.CallGraph),
			statsRow("dependency", stats.DependencyGraph),
			statsRow("inheritance", stats.InheritanceGraph),
		},
		nil, stats)
}

func topPageRankTable(c graph.CentralityMetrics, topN int) *output.Table {
	ranked := c.TopPageRank(topN)
	rows := make([][]string, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, []string{
			truncate(r.Label, 60),
			formatFloat(r.Score),
			formatFloat(c.Degree[r.Label]),
			formatFloat(c.Betweenness[r.Label]),
		})
	}
	return output.NewTable("Top Functions by PageRank",
		[]string{"Function", "PageRank", "Degree", "Betweenness"},
		rows, nil, ranked)
}

func couplingTable(coupling graph.CouplingMetrics, topN int) *output.Table {
	type entry struct {
		name string
		m    graph.ModuleCoupling
	}
	entries := make([]entry, 0, len(coupling.Modules))
	for _, name := range sortedKeys(coupling.Modules) {
		entries = append(entries, entry{name, coupling.Modules[name]})
	}
	// Highest total coupling first; lexical order breaks ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].m.Total() > entries[j].m.Total()
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			truncate(e.name, 60),
			strconv.Itoa(e.m.Afferent),
			strconv.Itoa(e.m.Efferent),
			formatFloat(e.m.Instability),
			formatFloat(e.m.Distance),
		})
	}
	footer := []string{
		"average",
		formatFloat(coupling.AverageAfferent),
		formatFloat(coupling.AverageEfferent),
		formatFloat(coupling.AverageInstability),
		formatFloat(coupling.AverageDistance),
	}
	return output.NewTable("Module Coupling",
		[]string{"Module", "Ca", "Ce", "Instability", "Distance"},
		rows, footer, coupling)
}

func cyclesSection(cycles graph.CycleAnalysis) *output.Section {
	if cycles.TotalCycles == 0 {
		return &output.Section{
			Title:   "Cycles",
			Content: "No cycles detected.",
			Data:    cycles,
		}
	}

	var b strings.Builder
	writeCycles := func(name string, found [][]string) {
		if len(found) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s (%d):\n", name, len(found))
		for _, cycle := range found {
			fmt.Fprintf(&b, "  %s\n", strings.Join(cycle, " -> "))
		}
	}
	writeCycles("call", cycles.CallCycles)
	writeCycles("dependency", cycles.DependencyCycles)
	writeCycles("inheritance", cycles.InheritanceCycles)

	return &output.Section{
		Title:   fmt.Sprintf("Cycles (%d)", cycles.TotalCycles),
		Content: strings.TrimRight(b.String(), "\n"),
		Data:    cycles,
	}
}
