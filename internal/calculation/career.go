package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// The home-career track has no study gap, so it runs a shorter horizon
// and the family transition lands earlier than on the graduate track.
const (
	CareerTotalYears           = 10
	CareerFamilyTransitionYear = 3
)

// CareerParams are the scenario knobs for a home-career projection.
type CareerParams struct {
	Lifestyle            domain.Lifestyle
	FamilyTransitionYear int
	BaselineSalaryK      money.Amount
	BaselineGrowth       decimal.Decimal
	NodeType             domain.NodeType // empty means all types
	LeafOnly             bool
}

func (p CareerParams) withDefaults() CareerParams {
	if p.Lifestyle == "" {
		p.Lifestyle = domain.LifestyleFrugal
	}
	if p.FamilyTransitionYear <= 0 {
		p.FamilyTransitionYear = CareerFamilyTransitionYear
	}
	return p
}

// CareerBaseline projects the stay-home counterfactual over the career
// horizon with the same household transition.
func (e *Engine) CareerBaseline(params CareerParams) domain.BaselineResult {
	params = params.withDefaults()
	return e.Baseline(BaselineParams{
		Years:                CareerTotalYears,
		StartSalaryK:         params.BaselineSalaryK,
		GrowthRate:           params.BaselineGrowth,
		Lifestyle:            params.Lifestyle,
		FamilyTransitionYear: params.FamilyTransitionYear,
	})
}

// ProjectCareerNode projects one career-graph node: ten working years in
// Pakistan under Pakistan tax and living costs, with the node's upfront
// capital deducted at year zero and its ongoing costs each year.
func (e *Engine) ProjectCareerNode(node domain.CareerNode, params CareerParams, baselineK money.Amount) domain.CareerProjection {
	params = params.withDefaults()

	initialCapitalK := money.FromUSD(node.InitialCapitalUSD.Decimal)
	ongoingAnnualK := money.FromUSD(node.OngoingMonthlyUSD.Annual().Decimal)

	years := make([]domain.CashFlowYear, 0, CareerTotalYears)
	totalWorkSavings := money.Zero()

	for workYear := 1; workYear <= CareerTotalYears; workYear++ {
		gross := interpolateSalary(workYear, node.Year1IncomeK, node.Year5IncomeK, node.Year10IncomeK)
		afterTax := e.taxes.AfterTax(gross, "Pakistan", "", "")

		household := domain.HouseholdSingle
		if workYear >= params.FamilyTransitionYear {
			household = domain.HouseholdFamily
		}
		living := e.living.HomeAnnual(params.Lifestyle, household)

		savings := afterTax.Sub(living).Sub(ongoingAnnualK)
		totalWorkSavings = totalWorkSavings.Add(savings)

		years = append(years, domain.CashFlowYear{
			Year:       workYear,
			Phase:      domain.PhaseWork,
			Household:  household,
			Gross:      gross.Round(),
			AfterTax:   afterTax.Round(),
			LivingCost: living.Round(),
			Ongoing:    ongoingAnnualK.Round(),
			Savings:    savings.Round(),
		})
	}

	// The cumulative balance opens in the red by the upfront capital.
	cumulative := initialCapitalK.Neg()
	for i := range years {
		cumulative = cumulative.Add(years[i].Savings)
		years[i].Cumulative = cumulative.Round()
	}

	netWorth := totalWorkSavings.Sub(initialCapitalK)

	effY1 := decimal.Zero
	if node.Year1IncomeK.IsPositive() {
		effY1 = e.taxes.EffectiveRate(node.Year1IncomeK, "Pakistan", "", "")
	}
	effY10 := decimal.Zero
	if node.Year10IncomeK.IsPositive() {
		effY10 = e.taxes.EffectiveRate(node.Year10IncomeK, "Pakistan", "", "")
	}

	return domain.CareerProjection{
		NodeID:    node.ID,
		Label:     node.Label,
		NodeType:  node.Type,
		Lifestyle: params.Lifestyle,

		InitialCapitalK: initialCapitalK.Round(),
		OngoingAnnualK:  ongoingAnnualK.Round(),
		Year10IncomeK:   node.Year10IncomeK,

		NetWorthK:   netWorth.Round(),
		BaselineK:   baselineK.Round(),
		NetBenefitK: netWorth.Sub(baselineK).Round(),

		EffectiveTaxY1:  effY1.Round(4),
		EffectiveTaxY10: effY10.Round(4),

		Years: years,
	}
}
