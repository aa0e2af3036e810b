package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// DeriveInitialCapitalUSD returns the upfront capital a program demands
// in full USD: blocked accounts, first-semester tuition, visa fees,
// flights, and proof of funds. A capital figure recorded on the program
// wins; otherwise the country rule applies, with overrides for fully
// funded universities.
func (e *Engine) DeriveInitialCapitalUSD(p domain.GraduateProgram) money.Amount {
	if p.InitialCapitalUSD.IsPositive() {
		return p.InitialCapitalUSD
	}

	switch p.University {
	case "KAUST":
		return money.NewFromDecimal(decimal.NewFromInt(2000))
	case "KAIST", "POSTECH":
		return money.NewFromDecimal(decimal.NewFromInt(2000))
	}
	if strings.Contains(p.Notes, "MEXT") || strings.Contains(p.Name, "MEXT") {
		return money.NewFromDecimal(decimal.NewFromInt(1500))
	}

	rule, ok := e.data.CapitalRules[p.UniversityCountry]
	if !ok {
		rule = e.data.DefaultCapitalRule
	}

	base := rule.BaseUSD
	tuitionFactor := rule.TuitionFactor
	if p.AidType == domain.AidTypeGuaranteedFunding && rule.GuaranteedFundedUSD.IsPositive() {
		base = rule.GuaranteedFundedUSD
		tuitionFactor = decimal.Zero
	}

	thousand := decimal.NewFromInt(1000)
	tuitionComponent := p.TuitionK.Decimal.Mul(tuitionFactor).Mul(thousand).Floor()
	proofComponent := p.TuitionK.Decimal.Mul(rule.ProofOfFundsFactor).Mul(thousand).Floor()

	return money.NewFromDecimal(base.Add(tuitionComponent).Add(proofComponent))
}

// adjustedInitialCapital scales the base capital requirement for an aid
// scenario. Guaranteed funding collapses the requirement to settling
// costs; partial scholarships reduce the tuition half of the requirement
// in proportion to tuition covered.
func adjustedInitialCapital(baseUSD money.Amount, scenario domain.AidScenario, aidType domain.AidType, scholarshipK, rawTuitionK money.Amount) money.Amount {
	if scenario == domain.AidScenarioNone {
		return baseUSD
	}
	if aidType == domain.AidTypeGuaranteedFunding {
		return money.Min(baseUSD, money.NewFromDecimal(decimal.NewFromInt(3000)))
	}

	tuitionBase := decimal.Max(rawTuitionK.Decimal, decimal.NewFromInt(1))
	covered := decimal.Min(decimal.NewFromInt(1), scholarshipK.Decimal.Div(tuitionBase))

	half := baseUSD.Decimal.Div(decimal.NewFromInt(2))
	adjusted := half.Add(half.Mul(decimal.NewFromInt(1).Sub(covered)))
	return money.NewFromDecimal(adjusted.Floor())
}

// AffordabilityParams describes the funds the user can raise before a
// program starts.
type AffordabilityParams struct {
	AvailableSavingsUSD  money.Amount
	MonthlySideIncomeUSD money.Amount
	PrepMonths           int
	AidScenario          domain.AidScenario
}

func (p AffordabilityParams) withDefaults() AffordabilityParams {
	if p.PrepMonths <= 0 {
		p.PrepMonths = 6
	}
	if p.AidScenario == "" {
		p.AidScenario = domain.AidScenarioExpected
	}
	return p
}

// Affordability classifies each projected program by whether its upfront
// capital is covered by current savings (affordable), by savings plus
// prep-period side income (stretch), or neither (needs funding). Each
// band is sorted by net benefit; the needs-funding list is capped.
func (e *Engine) Affordability(params AffordabilityParams, projections []domain.ProgramProjection) domain.AffordabilityReport {
	params = params.withDefaults()

	sideIncome := params.MonthlySideIncomeUSD.Mul(decimal.NewFromInt(int64(params.PrepMonths)))
	totalAvailable := params.AvailableSavingsUSD.Add(sideIncome)

	report := domain.AffordabilityReport{
		AvailableSavingsUSD:  params.AvailableSavingsUSD,
		MonthlySideIncomeUSD: params.MonthlySideIncomeUSD,
		PrepMonths:           params.PrepMonths,
		TotalAvailableUSD:    totalAvailable,
		AidScenario:          params.AidScenario,
	}

	hundred := decimal.NewFromInt(100)
	for _, proj := range projections {
		capital := proj.InitialCapitalUSD

		var band domain.AffordabilityBand
		switch {
		case capital.LessThanOrEqual(params.AvailableSavingsUSD):
			band = domain.BandAffordable
		case capital.LessThanOrEqual(totalAvailable):
			band = domain.BandStretch
		default:
			band = domain.BandNeedsFunding
		}

		capitalBase := decimal.Max(capital.Decimal, decimal.NewFromInt(1))
		pct := decimal.Min(hundred, totalAvailable.Decimal.Div(capitalBase).Mul(hundred))

		entry := domain.AffordabilityEntry{
			ProgramID:         proj.ProgramID,
			University:        proj.University,
			Program:           proj.Program,
			NetBenefitK:       proj.NetBenefitK,
			InitialCapitalUSD: capital,
			ShortfallUSD:      capital.Sub(totalAvailable).ClampNonNegative(),
			AffordabilityPct:  money.NewFromDecimal(pct.Round(1)),
			Band:              band,
		}

		switch band {
		case domain.BandAffordable:
			report.Affordable = append(report.Affordable, entry)
		case domain.BandStretch:
			report.Stretch = append(report.Stretch, entry)
		default:
			report.NeedsFunding = append(report.NeedsFunding, entry)
		}
	}

	// Projections arrive sorted by net benefit, so each band stays sorted.
	if len(report.NeedsFunding) > 20 {
		report.NeedsFunding = report.NeedsFunding[:20]
	}
	return report
}
