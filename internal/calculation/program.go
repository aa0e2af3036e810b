package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// The graduate track runs over a fixed calendar horizon: study years
// first, then work years up to the horizon. The household switches from
// single to family at the transition year unless the caller moves it.
const (
	ProgramTotalYears           = 12
	ProgramFamilyTransitionYear = 5
)

// ProgramParams are the scenario knobs for a graduate-track projection.
type ProgramParams struct {
	Lifestyle            domain.Lifestyle
	FamilyTransitionYear int
	AidScenario          domain.AidScenario
	BaselineSalaryK      money.Amount
	BaselineGrowth       decimal.Decimal
}

func (p ProgramParams) withDefaults() ProgramParams {
	if p.Lifestyle == "" {
		p.Lifestyle = domain.LifestyleFrugal
	}
	if p.FamilyTransitionYear <= 0 {
		p.FamilyTransitionYear = ProgramFamilyTransitionYear
	}
	if p.AidScenario == "" {
		p.AidScenario = domain.AidScenarioNone
	}
	return p
}

// ProgramBaseline projects the stay-home counterfactual over the graduate
// horizon with the same household transition.
func (e *Engine) ProgramBaseline(params ProgramParams) domain.BaselineResult {
	params = params.withDefaults()
	return e.Baseline(BaselineParams{
		Years:                ProgramTotalYears,
		StartSalaryK:         params.BaselineSalaryK,
		GrowthRate:           params.BaselineGrowth,
		Lifestyle:            params.Lifestyle,
		FamilyTransitionYear: params.FamilyTransitionYear,
	})
}

// ProjectProgram projects one graduate program over the full horizon:
// study years burn tuition and student living costs with no income, work
// years earn the interpolated market salary net of local tax and living
// costs. baselineK is the counterfactual total the net benefit compares
// against.
func (e *Engine) ProjectProgram(p domain.GraduateProgram, params ProgramParams, baselineK money.Amount) domain.ProgramProjection {
	params = params.withDefaults()

	rawTuition := p.TuitionK
	var scholarship money.Amount
	switch params.AidScenario {
	case domain.AidScenarioExpected:
		scholarship = p.ExpectedAidK
	case domain.AidScenarioBestCase:
		scholarship = p.BestCaseAidK
	}
	tuition := rawTuition.Sub(scholarship).ClampNonNegative()

	capitalBase := e.DeriveInitialCapitalUSD(p)
	initialCapital := adjustedInitialCapital(capitalBase, params.AidScenario, p.AidType, scholarship, rawTuition)

	market := e.markets.Resolve(p.PrimaryMarket, p.UniversityCountry)
	studyCountry := e.markets.StudyCountry(p.UniversityCountry)

	studyYears := p.StudyYears()
	tuitionPerYear := tuition.Div(decimal.NewFromInt(int64(studyYears)))

	years := make([]domain.CashFlowYear, 0, ProgramTotalYears)
	totalStudyCost := money.Zero()

	for calYear := 1; calYear <= studyYears; calYear++ {
		studentLiving := e.living.StudyAnnual(studyCountry, params.Lifestyle)
		yearCost := tuitionPerYear.Add(studentLiving)
		totalStudyCost = totalStudyCost.Add(yearCost)

		years = append(years, domain.CashFlowYear{
			Year:       calYear,
			Phase:      domain.PhaseStudy,
			Household:  domain.HouseholdStudent,
			Tuition:    tuitionPerYear.Round(),
			LivingCost: studentLiving.Round(),
			Savings:    yearCost.Neg().Round(),
		})
	}

	workYears := ProgramTotalYears - studyYears
	totalWorkSavings := money.Zero()

	for workYear := 1; workYear <= workYears; workYear++ {
		calYear := studyYears + workYear

		gross := interpolateSalary(workYear, p.Year1SalaryK, p.Year5SalaryK, p.Year10SalaryK)
		afterTax := e.taxes.AfterTax(gross, market.WorkCountry, market.USState, market.WorkCity)

		household := domain.HouseholdSingle
		if calYear >= params.FamilyTransitionYear {
			household = domain.HouseholdFamily
		}
		living := e.living.Annual(market.WorkCity, market.WorkCountry, params.Lifestyle, household)

		savings := afterTax.Sub(living)
		totalWorkSavings = totalWorkSavings.Add(savings)

		years = append(years, domain.CashFlowYear{
			Year:       calYear,
			Phase:      domain.PhaseWork,
			Household:  household,
			Gross:      gross.Round(),
			AfterTax:   afterTax.Round(),
			LivingCost: living.Round(),
			Savings:    savings.Round(),
		})
	}

	// Co-op earnings offset study costs only in the aid scenarios that
	// assume the placements materialize.
	coopApplied := money.Zero()
	if params.AidScenario != domain.AidScenarioNone && p.CoopEarningsK.IsPositive() {
		coopApplied = p.CoopEarningsK
		totalStudyCost = totalStudyCost.Sub(coopApplied)
	}

	cumulative := money.Zero()
	for i := range years {
		cumulative = cumulative.Add(years[i].Savings)
		years[i].Cumulative = cumulative.Round()
	}

	netWorth := totalWorkSavings.Sub(totalStudyCost)

	effY1 := decimal.Zero
	if p.Year1SalaryK.IsPositive() {
		effY1 = e.taxes.EffectiveRate(p.Year1SalaryK, market.WorkCountry, market.USState, market.WorkCity)
	}
	effY10 := decimal.Zero
	if p.Year10SalaryK.IsPositive() {
		effY10 = e.taxes.EffectiveRate(p.Year10SalaryK, market.WorkCountry, market.USState, market.WorkCity)
	}

	return domain.ProgramProjection{
		ProgramID:   p.ID,
		University:  p.University,
		Program:     p.Name,
		Field:       p.Field,
		Tier:        p.Tier,
		AidScenario: params.AidScenario,
		Lifestyle:   params.Lifestyle,

		WorkCountry: market.WorkCountry,
		WorkCity:    market.WorkCity,
		USState:     market.USState,

		TuitionPaidK:      tuition.Round(),
		ScholarshipK:      scholarship.Round(),
		InitialCapitalUSD: initialCapital,
		StudyCostK:        totalStudyCost.Round(),
		StudyLivingK:      totalStudyCost.Sub(tuition).Add(coopApplied).Round(),
		CoopAppliedK:      coopApplied.Round(),
		WorkSavingsK:      totalWorkSavings.Round(),

		NetWorthK:   netWorth.Round(),
		BaselineK:   baselineK.Round(),
		NetBenefitK: netWorth.Sub(baselineK).Round(),

		EffectiveTaxY1:  effY1.Round(4),
		EffectiveTaxY10: effY10.Round(4),

		Years: years,
	}
}
