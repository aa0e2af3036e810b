package calculation

import (
	"github.com/shopspring/decimal"
)

// usTotalTax composes federal income tax, state (and NYC city) income
// tax, and FICA payroll taxes. An empty state means the dataset default;
// a named state missing from the bracket table is a dataset gap and
// panics.
func (t *TaxCalculator) usTotalTax(gross decimal.Decimal, state, city string) decimal.Decimal {
	us := t.data.US

	if state == "" {
		state = us.DefaultState
	}
	stateTable, ok := us.States[state]
	if !ok {
		panic("calculation: no tax table for US state " + state)
	}

	federalTaxable := nonNegative(gross.Sub(us.StandardDeduction))
	federal := applyBrackets(us.FederalBrackets, federalTaxable)

	stateTaxable := nonNegative(gross.Sub(stateTable.StandardDeduction))
	stateTax := applyBrackets(stateTable.Brackets, stateTaxable)
	if state == "NY" && (city == "NYC" || city == "New York") {
		stateTax = stateTax.Add(applyBrackets(us.CityBrackets["NYC"], stateTaxable))
	}

	return federal.Add(stateTax).Add(t.fica(gross))
}

// fica returns Social Security up to the wage base, Medicare on full
// gross, and the additional Medicare surtax above the threshold.
func (t *TaxCalculator) fica(gross decimal.Decimal) decimal.Decimal {
	us := t.data.US
	socialSecurity := decimal.Min(gross, us.SSWageBase).Mul(us.SSRate)
	medicare := gross.Mul(us.MedicareRate)
	surtax := nonNegative(gross.Sub(us.SurtaxThreshold)).Mul(us.SurtaxRate)
	return socialSecurity.Add(medicare).Add(surtax)
}
