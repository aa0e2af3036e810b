package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// BaselineParams parameterizes the stay-home counterfactual: keep the
// current Pakistan job and let the salary compound.
type BaselineParams struct {
	Years                int
	StartSalaryK         money.Amount
	GrowthRate           decimal.Decimal
	Lifestyle            domain.Lifestyle
	FamilyTransitionYear int
}

// withDefaults fills unset fields with the standard assumptions: a 9.5
// $K starting salary growing 8% a year, frugal spending.
func (p BaselineParams) withDefaults() BaselineParams {
	if p.StartSalaryK.IsZero() {
		p.StartSalaryK = money.New(9.5)
	}
	if p.GrowthRate.IsZero() {
		p.GrowthRate = decimal.NewFromFloat(0.08)
	}
	if p.Lifestyle == "" {
		p.Lifestyle = domain.LifestyleFrugal
	}
	return p
}

// Baseline projects the stay-home path year by year: Pakistan tax and
// living costs, household switching from single to family at the
// transition year, savings accumulating without investment return.
func (e *Engine) Baseline(params BaselineParams) domain.BaselineResult {
	params = params.withDefaults()

	salary := params.StartSalaryK
	growth := decimal.NewFromInt(1).Add(params.GrowthRate)
	cumulative := money.Zero()
	years := make([]domain.CashFlowYear, 0, params.Years)

	for year := 1; year <= params.Years; year++ {
		household := domain.HouseholdSingle
		if year >= params.FamilyTransitionYear && params.FamilyTransitionYear > 0 {
			household = domain.HouseholdFamily
		}

		afterTax := e.taxes.AfterTax(salary, "Pakistan", "", "")
		living := e.living.HomeAnnual(params.Lifestyle, household)
		savings := afterTax.Sub(living)
		cumulative = cumulative.Add(savings)

		years = append(years, domain.CashFlowYear{
			Year:       year,
			Phase:      domain.PhaseWork,
			Household:  household,
			Gross:      salary.Round(),
			AfterTax:   afterTax.Round(),
			LivingCost: living.Round(),
			Savings:    savings.Round(),
			Cumulative: cumulative.Round(),
		})

		salary = salary.Mul(growth)
	}

	return domain.BaselineResult{
		TotalSavingsK: cumulative.Round(),
		Years:         years,
	}
}
