package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/output"
)

func programCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program <id>",
		Short: "Project a single graduate program",
		Long: `Program projects one program from the catalog by its ID. With
--compare it runs all three aid scenarios side by side.

Examples:
  decision-tree program uw-cs-ms
  decision-tree program uw-cs-ms --aid-scenario best_case
  decision-tree program uw-cs-ms --compare`,
		Args: cobra.ExactArgs(1),
		RunE: runProgram,
	}

	cmd.Flags().String("lifestyle", "frugal", "living cost tier (frugal, comfortable)")
	cmd.Flags().String("aid-scenario", "no_aid", "financial aid scenario (no_aid, expected, best_case)")
	cmd.Flags().Int("family-year", 0, "calendar year of the single-to-family transition (0 = default)")
	cmd.Flags().Float64("baseline-salary", 0, "baseline annual salary in $K (0 = default)")
	cmd.Flags().Float64("baseline-growth", 0, "baseline annual salary growth rate (0 = default)")
	cmd.Flags().Bool("compare", false, "project all three aid scenarios")
	cmd.Flags().String("format", "console", "output format (console, json, csv)")
	cmd.Flags().Bool("save", false, "write the report to a timestamped file")

	return cmd
}

func runProgram(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	programs, err := a.loadPrograms()
	if err != nil {
		return err
	}

	var program domain.GraduateProgram
	found := false
	for _, p := range programs {
		if p.ID == args[0] {
			program = p
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("program %q not found in %s", args[0], a.cfg.ProgramsFile)
	}

	params, err := programParamsFromFlags(cmd)
	if err != nil {
		return err
	}

	if compare, _ := cmd.Flags().GetBool("compare"); compare {
		return compareProgram(a, program, params)
	}

	ranking := a.engine.RankPrograms([]domain.GraduateProgram{program}, params)

	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")
	return emit(&output.Report{Programs: &ranking}, format, save)
}

// compareProgram prints the three aid scenarios for one program side by
// side.
func compareProgram(a *app, program domain.GraduateProgram, params calculation.ProgramParams) error {
	baseline := a.engine.ProgramBaseline(params)

	fmt.Printf("%s / %s (tuition %s)\n", program.University, program.Name, output.FormatMoney(program.TuitionK))
	fmt.Printf("Baseline (stay home): %s over 12 years\n\n", output.FormatMoney(baseline.TotalSavingsK))
	fmt.Printf("%-12s %12s %12s %12s %12s\n", "Scenario", "Tuition", "Capital", "NetWorth", "Benefit")

	for _, scenario := range []domain.AidScenario{domain.AidScenarioNone, domain.AidScenarioExpected, domain.AidScenarioBestCase} {
		scenarioParams := params
		scenarioParams.AidScenario = scenario
		p := a.engine.ProjectProgram(program, scenarioParams, baseline.TotalSavingsK)
		fmt.Printf("%-12s %12s %12s %12s %12s\n",
			scenario,
			output.FormatMoney(p.TuitionPaidK),
			"$"+p.InitialCapitalUSD.Decimal.StringFixed(0),
			output.FormatMoney(p.NetWorthK),
			output.FormatBenefit(p.NetBenefitK),
		)
	}
	return nil
}
