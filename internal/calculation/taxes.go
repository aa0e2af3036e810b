// Tax calculation for ~37 jurisdictions.
//
// ASSUMPTIONS:
// - Single filer, employment income only, 2024 rates.
// - Bracket thresholds and payroll parameters are converted from local
//   currency to USD once, at dataset construction.
// - Each country follows one of a small set of calculation strategies;
//   countries sharing a strategy differ only in parameters.
// - Unlisted countries fall back to a flat effective rate.

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// TaxCalculator computes annual tax and after-tax income for a work
// country. The US composite (federal + state + city + FICA) lives in
// taxes_us.go; everything else dispatches on the country's strategy.
type TaxCalculator struct {
	data   *refdata.Dataset
	logger Logger
}

// NewTaxCalculator creates a calculator over the given reference data.
func NewTaxCalculator(data *refdata.Dataset, logger Logger) *TaxCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &TaxCalculator{data: data, logger: logger}
}

// AnnualTax returns total annual tax in $K for a gross salary in $K.
// usState and usCity only apply when country is "USA".
func (t *TaxCalculator) AnnualTax(grossK money.Amount, country, usState, usCity string) money.Amount {
	if !grossK.IsPositive() {
		return money.Zero()
	}
	gross := grossK.USD()

	var tax decimal.Decimal
	switch {
	case country == "USA":
		tax = t.usTotalTax(gross, usState, usCity)
	default:
		cfg, ok := t.data.Countries[country]
		if !ok {
			t.logger.Warnf("no tax table for %q, using flat %s fallback rate",
				country, t.data.FallbackTaxRate.String())
			tax = gross.Mul(t.data.FallbackTaxRate)
		} else {
			tax = countryTax(cfg, gross)
		}
	}
	return money.FromUSD(tax)
}

// AfterTax returns annual after-tax income in $K, floored at zero.
func (t *TaxCalculator) AfterTax(grossK money.Amount, country, usState, usCity string) money.Amount {
	return grossK.Sub(t.AnnualTax(grossK, country, usState, usCity)).ClampNonNegative()
}

// EffectiveRate returns total tax as a fraction of gross. Zero or
// negative gross yields zero rather than a degenerate ratio.
func (t *TaxCalculator) EffectiveRate(grossK money.Amount, country, usState, usCity string) decimal.Decimal {
	if !grossK.IsPositive() {
		return decimal.Zero
	}
	after := t.AfterTax(grossK, country, usState, usCity)
	return decimal.NewFromInt(1).Sub(after.Decimal.Div(grossK.Decimal))
}

// countryTax dispatches a non-US country to its strategy.
func countryTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	switch cfg.Strategy {
	case refdata.StrategyStandard:
		return standardTax(cfg, gross)
	case refdata.StrategyAllowanceTaper:
		return allowanceTaperTax(cfg, gross)
	case refdata.StrategyCreditSystem:
		return creditSystemTax(cfg, gross)
	case refdata.StrategyEmploymentDeduction:
		return employmentDeductionTax(cfg, gross)
	case refdata.StrategyStandardRateCap:
		return standardRateCapTax(cfg, gross)
	case refdata.StrategyDeductionFirst:
		return deductionFirstTax(cfg, gross)
	case refdata.StrategyLaborMarketLevy:
		return laborMarketLevyTax(cfg, gross)
	case refdata.StrategyDualBase:
		return dualBaseTax(cfg, gross)
	case refdata.StrategyTwoTierFlat:
		return twoTierFlatTax(cfg, gross)
	case refdata.StrategyFlatAboveExemption:
		return flatAboveExemptionTax(cfg, gross)
	case refdata.StrategySocialOnly:
		return socialContribution(cfg, gross)
	case refdata.StrategyZeroTax:
		return decimal.Zero
	default:
		panic("calculation: unknown tax strategy " + string(cfg.Strategy))
	}
}

// socialContribution computes the employee social levy with optional wage
// and contribution caps.
func socialContribution(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	if cfg.SocialRate.IsZero() {
		return decimal.Zero
	}
	wages := gross
	if cfg.SocialWageCap.IsPositive() {
		wages = decimal.Min(gross, cfg.SocialWageCap)
	}
	contribution := wages.Mul(cfg.SocialRate)
	if cfg.SocialContribCap.IsPositive() {
		contribution = decimal.Min(contribution, cfg.SocialContribCap)
	}
	return contribution
}

// standardTax covers the common pattern: optional deductions off gross,
// the bracket schedule, an optional credit and surcharge, flat levies,
// and social contributions.
func standardTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	taxable := gross
	if cfg.GrossDeductionRate.IsPositive() {
		taxable = taxable.Sub(taxable.Mul(cfg.GrossDeductionRate))
	}
	if cfg.Allowance.IsPositive() {
		taxable = nonNegative(taxable.Sub(cfg.Allowance))
	}

	tax := applyBrackets(cfg.Brackets, taxable)
	if cfg.TaxCredit.IsPositive() {
		tax = nonNegative(tax.Sub(cfg.TaxCredit))
	}
	if cfg.TaxSurchargeRate.IsPositive() {
		if cfg.SurchargeThreshold.IsZero() || tax.GreaterThan(cfg.SurchargeThreshold) {
			tax = tax.Add(tax.Mul(cfg.TaxSurchargeRate))
		}
	}

	total := tax
	if cfg.FlatRate.IsPositive() {
		total = total.Add(gross.Mul(cfg.FlatRate))
	}
	social := socialContribution(cfg, gross)
	total = total.Add(social)
	if cfg.HealthOnNetRate.IsPositive() {
		total = total.Add(gross.Sub(social).Mul(cfg.HealthOnNetRate))
	}
	return total
}

// allowanceTaperTax (UK): the personal allowance shrinks by half the
// income above the taper threshold, so the zero band is rebuilt per
// income before walking the schedule. National insurance runs on its own
// band schedule over full gross.
func allowanceTaperTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	allowance := cfg.Allowance
	if gross.GreaterThan(cfg.AllowanceTaperStart) {
		reduction := gross.Sub(cfg.AllowanceTaperStart).Div(decimal.NewFromInt(2))
		allowance = nonNegative(allowance.Sub(reduction))
	}

	brackets := make([]refdata.TaxBracket, len(cfg.Brackets))
	copy(brackets, cfg.Brackets)
	brackets[0].Max = allowance
	if len(brackets) > 1 {
		brackets[1].Min = allowance
	}

	incomeTax := applyBrackets(brackets, gross)
	nationalInsurance := applyBrackets(cfg.SocialBrackets, gross)
	return incomeTax.Add(nationalInsurance)
}

// creditSystemTax (Canada/Ontario): federal and provincial schedules with
// non-refundable personal-amount credits, tiered provincial surtax, CPP
// and EI contributions, and the Ontario Health Premium.
func creditSystemTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	federalCredit := cfg.Allowance.Mul(cfg.Brackets[0].Rate)
	federal := nonNegative(applyBrackets(cfg.Brackets, gross).Sub(federalCredit))

	provincialCredit := cfg.ProvincialAllowance.Mul(cfg.ProvincialBrackets[0].Rate)
	provincial := nonNegative(applyBrackets(cfg.ProvincialBrackets, gross).Sub(provincialCredit))

	// Surtax tiers stack on provincial tax, not on income.
	surtax := decimal.Zero
	if provincial.GreaterThan(cfg.SurtaxThreshold1) {
		surtax = surtax.Add(provincial.Sub(cfg.SurtaxThreshold1).Mul(cfg.SurtaxRate1))
	}
	if provincial.GreaterThan(cfg.SurtaxThreshold2) {
		surtax = surtax.Add(provincial.Sub(cfg.SurtaxThreshold2).Mul(cfg.SurtaxRate2))
	}

	pension := decimal.Min(gross.Mul(cfg.PensionRate), cfg.PensionMax)
	unemployment := decimal.Min(gross.Mul(cfg.UnemploymentRate), cfg.UnemploymentMax)
	premium := healthPremium(cfg.HealthPremiumTiers, gross)

	return federal.Add(provincial).Add(surtax).Add(pension).Add(unemployment).Add(premium)
}

// healthPremium evaluates a piecewise premium schedule at gross income.
func healthPremium(tiers []refdata.PremiumTier, gross decimal.Decimal) decimal.Decimal {
	for _, tier := range tiers {
		if gross.LessThanOrEqual(tier.UpTo) {
			premium := tier.Base
			if tier.Rate.IsPositive() {
				excess := gross.Sub(tier.From).Mul(tier.Rate)
				premium = premium.Add(decimal.Min(tier.Cap, excess))
			}
			return premium
		}
	}
	return decimal.Zero
}

// employmentDeductionTax (Japan): a tiered employment-income deduction
// and the basic exemption come off gross along with social insurance,
// then the national schedule applies with the reconstruction surtax and
// a flat resident tax on the same taxable base.
func employmentDeductionTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	social := socialContribution(cfg, gross)

	var deduction decimal.Decimal
	switch {
	case gross.LessThan(cfg.LowIncomeThreshold):
		deduction = cfg.EmploymentDeductionLow
	case gross.LessThan(cfg.HighIncomeThreshold):
		deduction = gross.Mul(cfg.EmploymentDeductionMidRate).Add(cfg.EmploymentDeductionMidAdd)
	default:
		deduction = cfg.EmploymentDeductionHigh
	}

	taxable := nonNegative(gross.Sub(deduction).Sub(social).Sub(cfg.BasicExemption))
	incomeTax := applyBrackets(cfg.Brackets, taxable)
	incomeTax = incomeTax.Add(incomeTax.Mul(cfg.TaxSurchargeRate))
	resident := taxable.Mul(cfg.LocalRate)

	return incomeTax.Add(resident).Add(social)
}

// standardRateCapTax (Hong Kong): the lesser of the progressive schedule
// on income above the allowance and a flat standard rate on full gross,
// plus capped MPF contributions.
func standardRateCapTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	progressive := applyBrackets(cfg.Brackets, nonNegative(gross.Sub(cfg.Allowance)))
	standard := gross.Mul(cfg.StandardRateCap)
	tax := decimal.Min(progressive, standard)
	return tax.Add(socialContribution(cfg, gross))
}

// deductionFirstTax (China): social contributions and the standard
// deduction come off gross before the schedule.
func deductionFirstTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	social := socialContribution(cfg, gross)
	taxable := nonNegative(gross.Sub(cfg.Allowance).Sub(social))
	return applyBrackets(cfg.Brackets, taxable).Add(social)
}

// laborMarketLevyTax (Denmark): the AM-bidrag comes off gross first,
// municipal and state tax apply to the remainder less the allowance
// under an effective ceiling, and ATP is a fixed annual amount.
func laborMarketLevyTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	levy := gross.Mul(cfg.LevyRate)
	taxable := nonNegative(gross.Sub(levy).Sub(cfg.Allowance))

	municipal := taxable.Mul(cfg.MunicipalRate)
	bottom := taxable.Mul(cfg.BottomRate)
	top := nonNegative(taxable.Sub(cfg.TopThreshold)).Mul(cfg.TopRate)
	incomeTax := decimal.Min(municipal.Add(bottom).Add(top), taxable.Mul(cfg.CeilingRate))

	return levy.Add(incomeTax).Add(cfg.FixedAnnual)
}

// dualBaseTax (Norway): the step schedule (trinnskatt) runs on full
// gross while the flat ordinary rate runs on gross less the personal
// allowance; the social levy is uncapped.
func dualBaseTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	step := applyBrackets(cfg.Brackets, gross)
	flat := nonNegative(gross.Sub(cfg.Allowance)).Mul(cfg.FlatRate)
	social := gross.Mul(cfg.SocialRate)
	return step.Add(flat).Add(social)
}

// twoTierFlatTax (Czech Republic): a low flat rate up to the threshold
// and a higher flat rate above it, plus an uncapped social levy.
func twoTierFlatTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	threshold := cfg.Brackets[0].Max
	lowRate := cfg.Brackets[0].Rate
	highRate := cfg.Brackets[1].Rate

	var incomeTax decimal.Decimal
	if gross.LessThanOrEqual(threshold) {
		incomeTax = gross.Mul(lowRate)
	} else {
		incomeTax = threshold.Mul(lowRate).Add(gross.Sub(threshold).Mul(highRate))
	}
	return incomeTax.Add(gross.Mul(cfg.SocialRate))
}

// flatAboveExemptionTax (Estonia): a single flat rate above the basic
// exemption plus an uncapped social levy.
func flatAboveExemptionTax(cfg refdata.CountryTax, gross decimal.Decimal) decimal.Decimal {
	incomeTax := nonNegative(gross.Sub(cfg.Allowance)).Mul(cfg.FlatRate)
	return incomeTax.Add(gross.Mul(cfg.SocialRate))
}
