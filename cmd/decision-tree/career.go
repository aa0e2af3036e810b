package main

import (
	"github.com/spf13/cobra"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/output"
)

func careerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "career",
		Short: "Rank home-career paths by net benefit over staying in role",
		Long: `Career projects the decision graph's outcome nodes over ten working
years in Pakistan and compares each against the stay-in-role baseline.

Examples:
  decision-tree career
  decision-tree career --node-type trading
  decision-tree career --leaf-only=false --format json`,
		RunE: runCareer,
	}

	cmd.Flags().String("lifestyle", "frugal", "living cost tier (frugal, comfortable)")
	cmd.Flags().Int("family-year", 0, "calendar year of the single-to-family transition (0 = default)")
	cmd.Flags().String("node-type", "", "filter by node type (career, trading, startup, freelance)")
	cmd.Flags().Bool("leaf-only", true, "project terminal outcomes only")
	cmd.Flags().String("format", "console", "output format (console, json, csv)")
	cmd.Flags().Bool("save", false, "write the report to a timestamped file")

	return cmd
}

func runCareer(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	graph, err := a.loadGraph()
	if err != nil {
		return err
	}

	lifestyleFlag, _ := cmd.Flags().GetString("lifestyle")
	lifestyle, err := parseLifestyleFlag(lifestyleFlag)
	if err != nil {
		return err
	}
	nodeTypeFlag, _ := cmd.Flags().GetString("node-type")
	nodeType, err := parseNodeTypeFlag(nodeTypeFlag)
	if err != nil {
		return err
	}
	familyYear, _ := cmd.Flags().GetInt("family-year")
	leafOnly, _ := cmd.Flags().GetBool("leaf-only")

	ranking := a.engine.RankCareerNodes(graph, calculation.CareerParams{
		Lifestyle:            lifestyle,
		FamilyTransitionYear: familyYear,
		NodeType:             nodeType,
		LeafOnly:             leafOnly,
	})

	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")
	return emit(&output.Report{Career: &ranking}, format, save)
}
