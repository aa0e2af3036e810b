package main

import (
	"github.com/spf13/cobra"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/output"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func affordabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affordability",
		Short: "Classify programs by whether their upfront capital is within reach",
		Long: `Affordability compares each program's upfront capital requirement
against current savings plus side income earned before the program
starts. Savings default to the profile's figure.

Examples:
  decision-tree affordability
  decision-tree affordability --savings 8000 --monthly-income 500`,
		RunE: runAffordability,
	}

	cmd.Flags().Float64("savings", -1, "available savings in USD (-1 = from profile)")
	cmd.Flags().Float64("monthly-income", 0, "expected monthly side income in USD during prep")
	cmd.Flags().Int("prep-months", 6, "months until the program starts")
	cmd.Flags().String("aid-scenario", "expected", "financial aid scenario (no_aid, expected, best_case)")
	cmd.Flags().String("format", "console", "output format (console, json, csv)")
	cmd.Flags().Bool("save", false, "write the report to a timestamped file")

	return cmd
}

func runAffordability(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	programs, err := a.loadPrograms()
	if err != nil {
		return err
	}

	aidFlag, _ := cmd.Flags().GetString("aid-scenario")
	aid, err := parseAidScenarioFlag(aidFlag, "expected")
	if err != nil {
		return err
	}

	savings, _ := cmd.Flags().GetFloat64("savings")
	if savings < 0 {
		profile, err := a.loadProfile()
		if err != nil {
			return err
		}
		savings = profile.AvailableSavingsUSD
	}
	monthlyIncome, _ := cmd.Flags().GetFloat64("monthly-income")
	prepMonths, _ := cmd.Flags().GetInt("prep-months")

	ranking := a.engine.RankPrograms(programs, calculation.ProgramParams{AidScenario: aid})
	report := a.engine.Affordability(calculation.AffordabilityParams{
		AvailableSavingsUSD:  money.New(savings),
		MonthlySideIncomeUSD: money.New(monthlyIncome),
		PrepMonths:           prepMonths,
		AidScenario:          aid,
	}, ranking.Projections)

	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")
	return emit(&output.Report{Affordability: &report}, format, save)
}
