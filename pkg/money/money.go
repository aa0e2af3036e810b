package money

import (
	"github.com/shopspring/decimal"
)

// Amount represents a monetary amount in thousands of USD ($K) with
// proper financial precision
type Amount struct {
	decimal.Decimal
}

// New creates a new Amount from a float64 number of $K
func New(value float64) Amount {
	return Amount{decimal.NewFromFloat(value)}
}

// NewFromDecimal creates a new Amount from a decimal.Decimal
func NewFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// NewFromString creates a new Amount from a string
func NewFromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// FromUSD converts a full-dollar amount to $K
func FromUSD(usd decimal.Decimal) Amount {
	return Amount{usd.Div(decimal.NewFromInt(1000))}
}

// USD converts the $K amount back to full dollars
func (m Amount) USD() decimal.Decimal {
	return m.Decimal.Mul(decimal.NewFromInt(1000))
}

// Round rounds the amount to two decimal places, half away from zero
func (m Amount) Round() Amount {
	return Amount{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Amount) Annual() Amount {
	return Amount{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Amount) Monthly() Amount {
	return Amount{m.Decimal.Div(decimal.NewFromInt(12))}
}

// ApplyRate multiplies the amount by a rate (e.g. a growth or tax rate)
func (m Amount) ApplyRate(rate decimal.Decimal) Amount {
	return Amount{m.Decimal.Mul(rate)}
}

// AfterRate returns the amount remaining after removing rate of it
func (m Amount) AfterRate(rate decimal.Decimal) Amount {
	return Amount{m.Decimal.Sub(m.Decimal.Mul(rate))}
}

// Add adds another Amount
func (m Amount) Add(other Amount) Amount {
	return Amount{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Amount
func (m Amount) Sub(other Amount) Amount {
	return Amount{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Amount) Div(factor decimal.Decimal) Amount {
	return Amount{m.Decimal.Div(factor)}
}

// Neg negates the amount
func (m Amount) Neg() Amount {
	return Amount{m.Decimal.Neg()}
}

// GreaterThan checks if this amount is greater than another
func (m Amount) GreaterThan(other Amount) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Amount) GreaterThanOrEqual(other Amount) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Amount) LessThan(other Amount) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another
func (m Amount) LessThanOrEqual(other Amount) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another
func (m Amount) Equal(other Amount) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Amount) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive
func (m Amount) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative
func (m Amount) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// ClampNonNegative floors the amount at zero
func (m Amount) ClampNonNegative() Amount {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// Min returns the minimum of two Amounts
func Min(a, b Amount) Amount {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Amounts
func Max(a, b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Amount
func Zero() Amount {
	return Amount{decimal.Zero}
}

// String returns the string representation with two decimal places
func (m Amount) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount with a $K suffix for display
func (m Amount) Format() string {
	return "$" + m.String() + "K"
}
