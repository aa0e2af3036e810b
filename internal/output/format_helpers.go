package output

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/pkg/money"
)

// FormatMoney formats a $K amount for display, e.g. "$180.00K".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatMoney(amount money.Amount) string { return amount.Format() }

// FormatBenefit formats a net benefit with an explicit sign, e.g. "+$45K".
func FormatBenefit(amount money.Amount) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().Decimal.StringFixed(0) + "K"
	}
	return "+$" + amount.Decimal.StringFixed(0) + "K"
}

// FormatPercentage formats a fractional rate as a percentage with 1 decimal.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
