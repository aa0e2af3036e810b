// Package refdata holds the compiled-in 2024 reference tables used by the
// projection and tax engines: exchange rates, progressive tax brackets and
// per-country payroll parameters, city living costs, market-to-location
// mappings, and initial capital rules. The tables are immutable; engines
// receive them through an explicit *Dataset rather than package globals so
// tests can substitute synthetic data.
package refdata

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/pkg/money"
)

// Unbounded marks the open-ended top bracket. Stored as a large finite
// value so bracket math never has to special-case infinity.
var Unbounded = decimal.NewFromInt(999999999999)

// TaxBracket represents a single income band. Min and Max are USD amounts
// (converted from local currency at dataset construction); Max is Unbounded
// for the top bracket.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// Strategy identifies which calculation pattern a country's tax system
// follows. Countries sharing a pattern share a strategy and differ only in
// parameters.
type Strategy string

const (
	// StrategyStandard covers brackets on (gross - allowance), optional
	// surcharge on the computed tax, optional flat levies on gross, and
	// optional capped social contributions.
	StrategyStandard Strategy = "standard"
	// StrategyAllowanceTaper rebuilds the zero band from a personal
	// allowance that tapers away above a threshold (UK).
	StrategyAllowanceTaper Strategy = "allowance_taper"
	// StrategyCreditSystem applies non-refundable credits against federal
	// and provincial schedules plus tiered surtax and a health premium
	// (Canada/Ontario).
	StrategyCreditSystem Strategy = "credit_system"
	// StrategyEmploymentDeduction derives taxable income through a tiered
	// employment-income deduction before the national schedule (Japan).
	StrategyEmploymentDeduction Strategy = "employment_deduction"
	// StrategyStandardRateCap caps progressive tax at a flat standard rate
	// on gross (Hong Kong).
	StrategyStandardRateCap Strategy = "standard_rate_cap"
	// StrategyDeductionFirst removes social contributions and a standard
	// deduction from gross before the schedule (China).
	StrategyDeductionFirst Strategy = "deduction_first"
	// StrategyLaborMarketLevy applies a labor-market contribution before
	// municipal and state tax, under an effective ceiling (Denmark).
	StrategyLaborMarketLevy Strategy = "labor_market_levy"
	// StrategyDualBase taxes full gross on a step schedule and
	// gross-less-allowance at a flat ordinary rate (Norway).
	StrategyDualBase Strategy = "dual_base"
	// StrategyTwoTierFlat splits gross at one threshold between two flat
	// rates (Czech Republic).
	StrategyTwoTierFlat Strategy = "two_tier_flat"
	// StrategyFlatAboveExemption taxes gross above a basic exemption at a
	// single flat rate (Estonia).
	StrategyFlatAboveExemption Strategy = "flat_above_exemption"
	// StrategySocialOnly has no income tax, only a social levy (Saudi
	// Arabia).
	StrategySocialOnly Strategy = "social_only"
	// StrategyZeroTax has no income tax or employee social levy (UAE).
	StrategyZeroTax Strategy = "zero_tax"
)

// PremiumTier is one band of a piecewise health premium schedule
// (Ontario). Premium = Base + min(Cap, Rate*(gross-From)) for the first
// tier whose UpTo bound covers gross. All amounts USD.
type PremiumTier struct {
	UpTo decimal.Decimal
	From decimal.Decimal
	Base decimal.Decimal
	Rate decimal.Decimal
	Cap  decimal.Decimal
}

// CountryTax carries the parameters for one country's tax calculation.
// Monetary fields are USD; which fields are read depends on Strategy.
type CountryTax struct {
	Strategy Strategy
	Brackets []TaxBracket

	// Shared parameters.
	Allowance           decimal.Decimal // subtracted from gross before the schedule
	AllowanceTaperStart decimal.Decimal // gross level where the allowance starts shrinking
	GrossDeductionRate  decimal.Decimal // fraction of gross deducted before the schedule
	TaxCredit           decimal.Decimal // non-refundable credit against schedule tax
	TaxSurchargeRate    decimal.Decimal // surcharge as a fraction of schedule tax
	SurchargeThreshold  decimal.Decimal // surcharge applies only when schedule tax exceeds this
	FlatRate            decimal.Decimal // flat levy outside the schedule (base varies by strategy)
	SocialRate          decimal.Decimal
	SocialWageCap       decimal.Decimal // cap on wages subject to SocialRate
	SocialContribCap    decimal.Decimal // cap on the contribution itself
	SocialBrackets      []TaxBracket    // banded social levy (UK national insurance)
	HealthOnNetRate     decimal.Decimal // health levy on gross minus social (Poland)
	FixedAnnual         decimal.Decimal // fixed annual contribution (Denmark ATP)

	// Credit-system parameters (Canada).
	ProvincialBrackets  []TaxBracket
	ProvincialAllowance decimal.Decimal
	PensionRate         decimal.Decimal
	PensionMax          decimal.Decimal
	UnemploymentRate    decimal.Decimal
	UnemploymentMax     decimal.Decimal
	SurtaxThreshold1    decimal.Decimal
	SurtaxRate1         decimal.Decimal
	SurtaxThreshold2    decimal.Decimal
	SurtaxRate2         decimal.Decimal
	HealthPremiumTiers  []PremiumTier

	// Employment-deduction parameters (Japan).
	EmploymentDeductionLow     decimal.Decimal
	EmploymentDeductionMidAdd  decimal.Decimal
	EmploymentDeductionMidRate decimal.Decimal
	EmploymentDeductionHigh    decimal.Decimal
	LowIncomeThreshold         decimal.Decimal
	HighIncomeThreshold        decimal.Decimal
	LocalRate                  decimal.Decimal // resident/local tax on taxable income
	BasicExemption             decimal.Decimal

	// Standard-rate cap (Hong Kong).
	StandardRateCap decimal.Decimal

	// Labor-market levy parameters (Denmark).
	LevyRate      decimal.Decimal // AM-bidrag on gross
	MunicipalRate decimal.Decimal
	BottomRate    decimal.Decimal
	TopThreshold  decimal.Decimal
	TopRate       decimal.Decimal
	CeilingRate   decimal.Decimal // income tax capped at CeilingRate * taxable
}

// USStateTax is one state's schedule plus its standard deduction. States
// without an income tax have an empty schedule.
type USStateTax struct {
	Brackets          []TaxBracket
	StandardDeduction decimal.Decimal
}

// USTax carries the federal, state, city, and payroll parameters for the
// US composite calculation.
type USTax struct {
	FederalBrackets   []TaxBracket
	StandardDeduction decimal.Decimal
	SSWageBase        decimal.Decimal
	SSRate            decimal.Decimal
	MedicareRate      decimal.Decimal
	SurtaxThreshold   decimal.Decimal
	SurtaxRate        decimal.Decimal
	States            map[string]USStateTax
	CityBrackets      map[string][]TaxBracket
	DefaultState      string
}

// HouseholdCost holds annual living cost in $K for the three household
// shapes a projection can pass through.
type HouseholdCost struct {
	Student money.Amount
	Single  money.Amount
	Family  money.Amount
}

// LivingCost holds the frugal and comfortable tiers for one location.
type LivingCost struct {
	Frugal      HouseholdCost
	Comfortable HouseholdCost
}

// MarketInfo is the resolved work location for a market descriptor.
type MarketInfo struct {
	WorkCountry string
	WorkCity    string
	USState     string // empty outside the US
}

// RegionKeyword maps a substring of a free-text US market descriptor to a
// state and display city. Order matters: the first match wins.
type RegionKeyword struct {
	Keyword string
	State   string
	City    string
}

// CapitalRule derives the upfront capital a program in a country demands:
// a fixed base plus a fraction of tuition, with an optional reduced base
// for guaranteed-funded offers and an extra proof-of-funds fraction.
type CapitalRule struct {
	BaseUSD             decimal.Decimal
	TuitionFactor       decimal.Decimal
	GuaranteedFundedUSD decimal.Decimal // zero when no reduced base applies
	ProofOfFundsFactor  decimal.Decimal
}

// Dataset bundles every reference table. Engines hold a *Dataset; nothing
// mutates it after construction.
type Dataset struct {
	ExchangeRates map[string]decimal.Decimal // local currency units per USD

	US              USTax
	Countries       map[string]CountryTax
	FallbackTaxRate decimal.Decimal // flat effective rate for unlisted countries

	CityCosts          map[string]LivingCost
	CountryDefaultCity map[string]string
	StudyCountryCosts  map[string]LivingCost
	GenericCost        LivingCost

	MarketMap        map[string]MarketInfo
	USRegionKeywords []RegionKeyword

	CapitalRules       map[string]CapitalRule
	DefaultCapitalRule CapitalRule
}

// Default returns the 2024 dataset. Bracket thresholds and monetary
// parameters are converted from local currency to USD here, once.
func Default() *Dataset {
	fx := exchangeRates()
	ds := &Dataset{
		ExchangeRates:      fx,
		US:                 usTax(),
		Countries:          countryTaxes(fx),
		FallbackTaxRate:    decimal.NewFromFloat(0.30),
		CityCosts:          cityCosts(),
		CountryDefaultCity: countryDefaultCities(),
		StudyCountryCosts:  studyCountryCosts(),
		GenericCost:        genericCost(),
		MarketMap:          marketMap(),
		USRegionKeywords:   usRegionKeywords(),
		CapitalRules:       capitalRules(),
		DefaultCapitalRule: capitalRule(8000, 0.5),
	}
	return ds
}

// converter builds USD bracket schedules and amounts from local-currency
// literals using the dataset's exchange rates.
type converter struct {
	fx map[string]decimal.Decimal
}

// usd converts a local-currency amount to USD.
func (c converter) usd(currency string, amount float64) decimal.Decimal {
	d := decimal.NewFromFloat(amount)
	if currency == "USD" {
		return d
	}
	rate, ok := c.fx[currency]
	if !ok {
		panic("refdata: unknown currency " + currency)
	}
	return d.Div(rate)
}

// schedule builds a bracket list from alternating (upper threshold, rate)
// pairs in the given currency. A threshold at or above the Unbounded
// sentinel closes the schedule without conversion.
func (c converter) schedule(currency string, pairs ...float64) []TaxBracket {
	if len(pairs)%2 != 0 {
		panic("refdata: schedule requires threshold/rate pairs")
	}
	out := make([]TaxBracket, 0, len(pairs)/2)
	prev := decimal.Zero
	for i := 0; i < len(pairs); i += 2 {
		threshold, rate := pairs[i], pairs[i+1]
		max := Unbounded
		if decimal.NewFromFloat(threshold).LessThan(Unbounded) {
			max = c.usd(currency, threshold)
		}
		out = append(out, TaxBracket{
			Min:  prev,
			Max:  max,
			Rate: decimal.NewFromFloat(rate),
		})
		prev = max
	}
	return out
}

// unbounded is the literal used in schedule calls to close the top bracket.
const unbounded = 999999999999.0

func rate(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func capitalRule(baseUSD float64, tuitionFactor float64) CapitalRule {
	return CapitalRule{
		BaseUSD:       decimal.NewFromFloat(baseUSD),
		TuitionFactor: decimal.NewFromFloat(tuitionFactor),
	}
}

func fundedCapitalRule(baseUSD, tuitionFactor, guaranteedUSD float64) CapitalRule {
	r := capitalRule(baseUSD, tuitionFactor)
	r.GuaranteedFundedUSD = decimal.NewFromFloat(guaranteedUSD)
	return r
}
