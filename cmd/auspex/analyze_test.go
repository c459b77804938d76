package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/auspexlabs/auspex/internal/output"
	"github.com/auspexlabs/auspex/pkg/config"
	"github.com/auspexlabs/auspex/pkg/graph"
)

func sampleResult() *graph.AnalysisResult {
	b := graph.NewBuilder()
	b.AddCall("main", "helper", 5)
	b.AddCall("helper", "util", 3)
	b.AddDependency("main_module", "helper_module", "import")
	b.AddInheritance("Child", "Parent")
	return b.Build().Analyze()
}

func TestStatsTable(t *testing.T) {
	table := statsTable(sampleResult().Statistics)

	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}
	call := table.Rows[0]
	if call[0] != "call" || call[1] != "3" || call[2] != "2" {
		t.Errorf("call row = %v, want 3 nodes and 2 edges", call)
	}
	if call[5] != "false" {
		t.Errorf("cyclic column = %q, want false", call[5])
	}
}

func TestTopPageRankTable(t *testing.T) {
	result := sampleResult()
	table := topPageRankTable(result.CallCentrality, 2)

	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want top 2", len(table.Rows))
	}
	// util is the only sink, so it accumulates the highest rank.
	if table.Rows[0][0] != "util" {
		t.Errorf("top node = %q, want util", table.Rows[0][0])
	}
}

func TestCouplingTable(t *testing.T) {
	result := sampleResult()
	table := couplingTable(result.Coupling, 10)

	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 modules", len(table.Rows))
	}
	if len(table.Footer) == 0 || table.Footer[0] != "average" {
		t.Errorf("footer = %v, want averages row", table.Footer)
	}
}

func TestCyclesSectionEmpty(t *testing.T) {
	section := cyclesSection(sampleResult().Cycles)
	if !strings.Contains(section.Content, "No cycles") {
		t.Errorf("content = %q, want no-cycles message", section.Content)
	}
}

func TestCyclesSectionWithCycles(t *testing.T) {
	b := graph.NewBuilder()
	b.AddDependency("a", "b", "import")
	b.AddDependency("b", "a", "import")
	cycles := b.Build().DetectCycles()

	section := cyclesSection(cycles)
	if !strings.Contains(section.Title, "1") {
		t.Errorf("title = %q, want cycle count", section.Title)
	}
	if !strings.Contains(section.Content, "a -> b") {
		t.Errorf("content = %q, want rendered cycle path", section.Content)
	}

	var buf bytes.Buffer
	if err := section.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}
}

func TestRenderAnalysisWarnsOnHiddenCycles(t *testing.T) {
	b := graph.NewBuilder()
	b.AddCall("a", "b", 1)
	b.AddCall("b", "a", 1)
	result := b.Build().Analyze()

	path := filepath.Join(t.TempDir(), "report.txt")
	formatter, err := output.NewFormatter(output.FormatText, path, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	if err := renderAnalysis(formatter, result, config.ReportConfig{TopNodes: 5, ShowCycles: false}); err != nil {
		t.Fatalf("renderAnalysis() error: %v", err)
	}
	formatter.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	report := string(data)
	if !strings.Contains(report, "WARNING: 1 cycles detected") {
		t.Errorf("report = %q, want warning about hidden cycles", report)
	}
	if strings.Contains(report, "a -> b") {
		t.Errorf("report = %q, cycle paths should not be listed", report)
	}
}

func TestNetworkMetricsTable(t *testing.T) {
	metrics := map[string]graph.NetworkMetrics{
		graph.CallGraphName:        {Density: 0.5, Diameter: 2},
		graph.DependencyGraphName:  {},
		graph.InheritanceGraphName: {},
	}
	table := networkMetricsTable(metrics)

	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}
	// Rows are sorted by graph name.
	if table.Rows[0][0] != graph.CallGraphName {
		t.Errorf("first row = %q, want %q", table.Rows[0][0], graph.CallGraphName)
	}
	if table.Rows[0][1] != "0.5000" {
		t.Errorf("density cell = %q, want 0.5000", table.Rows[0][1])
	}
}
