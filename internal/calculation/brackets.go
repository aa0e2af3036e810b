package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/refdata"
)

// applyBrackets walks a progressive schedule over taxable income. Each
// band taxes the slice of income between its Min and Max at its rate.
func applyBrackets(brackets []refdata.TaxBracket, taxableIncome decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	for _, bracket := range brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		tax = tax.Add(incomeInBracket.Mul(bracket.Rate))
	}
	return tax
}

// nonNegative floors a decimal at zero.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
