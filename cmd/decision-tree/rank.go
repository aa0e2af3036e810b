package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/output"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank graduate programs by net benefit over staying home",
		Long: `Rank projects every program in the catalog over the twelve-year
graduate horizon and compares each against the stay-home baseline.

Examples:
  decision-tree rank
  decision-tree rank --aid-scenario expected --lifestyle comfortable
  decision-tree rank --format json --save`,
		RunE: runRank,
	}

	cmd.Flags().String("lifestyle", "frugal", "living cost tier (frugal, comfortable)")
	cmd.Flags().String("aid-scenario", "no_aid", "financial aid scenario (no_aid, expected, best_case)")
	cmd.Flags().Int("family-year", 0, "calendar year of the single-to-family transition (0 = default)")
	cmd.Flags().Float64("baseline-salary", 0, "baseline annual salary in $K (0 = default)")
	cmd.Flags().Float64("baseline-growth", 0, "baseline annual salary growth rate (0 = default)")
	cmd.Flags().String("format", "console", "output format (console, json, csv)")
	cmd.Flags().Bool("save", false, "write the report to a timestamped file")

	return cmd
}

func runRank(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	programs, err := a.loadPrograms()
	if err != nil {
		return err
	}
	params, err := programParamsFromFlags(cmd)
	if err != nil {
		return err
	}

	ranking := a.engine.RankPrograms(programs, params)

	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")
	return emit(&output.Report{Programs: &ranking}, format, save)
}

// programParamsFromFlags assembles the graduate-track knobs shared by the
// rank, program, and affordability commands.
func programParamsFromFlags(cmd *cobra.Command) (calculation.ProgramParams, error) {
	var params calculation.ProgramParams

	lifestyleFlag, _ := cmd.Flags().GetString("lifestyle")
	lifestyle, err := parseLifestyleFlag(lifestyleFlag)
	if err != nil {
		return params, err
	}
	aidFlag, _ := cmd.Flags().GetString("aid-scenario")
	aid, err := parseAidScenarioFlag(aidFlag, "")
	if err != nil {
		return params, err
	}

	params.Lifestyle = lifestyle
	params.AidScenario = aid
	params.FamilyTransitionYear, _ = cmd.Flags().GetInt("family-year")

	if salary, _ := cmd.Flags().GetFloat64("baseline-salary"); salary > 0 {
		params.BaselineSalaryK = money.New(salary)
	}
	if growth, _ := cmd.Flags().GetFloat64("baseline-growth"); growth > 0 {
		params.BaselineGrowth = decimal.NewFromFloat(growth)
	}
	return params, nil
}
