package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auspexlabs/auspex/internal/output"
	"github.com/auspexlabs/auspex/internal/service/analysis"
	"github.com/auspexlabs/auspex/pkg/graph"
)

var graphCmd = &cobra.Command{
	Use:     "graph <manifest>",
	Aliases: []string{"g"},
	Short:   "Export a graph as a Mermaid diagram",
	Args:    cobra.ExactArgs(1),
	RunE:    runGraph,
}

func init() {
	graphCmd.Flags().String("kind", "dependency", "Graph to export: call, dependency, inheritance")

	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc := analysis.New(analysis.WithConfig(cfg))

	a, err := svc.LoadAnalyzer(args[0])
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("kind")
	var diagram string
	switch kind {
	case "call":
		diagram = graph.ToMermaid(a.CallGraph())
	case "dependency", "":
		diagram = graph.ToMermaid(a.DependencyGraph())
	case "inheritance":
		diagram = graph.ToMermaid(a.InheritanceGraph())
	default:
		return fmt.Errorf("unknown graph kind %q (want call, dependency or inheritance)", kind)
	}

	formatter, err := output.NewFormatter(output.ParseFormat(cfg.Output.Format), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	w := formatter.Writer()
	if formatter.Format() == output.FormatMarkdown {
		fmt.Fprintln(w, "```mermaid")
		fmt.Fprint(w, diagram)
		fmt.Fprintln(w, "```")
		return nil
	}
	fmt.Fprint(w, diagram)
	return nil
}
