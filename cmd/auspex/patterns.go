package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auspexlabs/auspex/internal/output"
	"github.com/auspexlabs/auspex/internal/service/analysis"
)

var patternsCmd = &cobra.Command{
	Use:     "patterns <manifest>",
	Aliases: []string{"p"},
	Short:   "Detect problematic structural patterns",
	Long: `Flags heuristic design problems: dependency and inheritance cycles,
excessive call recursion, unstable or highly coupled modules, and overly
dense graphs.`,
	Args: cobra.ExactArgs(1),
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc := analysis.New(analysis.WithConfig(cfg))

	patterns, err := svc.CheckPatterns(args[0])
	if err != nil {
		return fmt.Errorf("pattern check failed: %w", err)
	}

	formatter, err := output.NewFormatter(output.ParseFormat(cfg.Output.Format), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON {
		return formatter.Output(patterns)
	}

	return renderPatterns(formatter, patterns)
}

func renderPatterns(formatter *output.Formatter, patterns map[string][]string) error {
	if len(patterns) == 0 {
		formatter.Success("No problematic patterns detected")
		return nil
	}

	w := formatter.Writer()
	total := 0
	for _, category := range sortedKeys(patterns) {
		tag := fmt.Sprintf("[%s]", category)
		if formatter.Colored() {
			tag = output.CategoryColor(category, tag)
		}
		for _, msg := range patterns[category] {
			fmt.Fprintf(w, "%s %s\n", tag, msg)
			total++
		}
	}
	formatter.Error("Found %d problematic patterns", total)
	return nil
}
