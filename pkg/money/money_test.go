package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewAndString(t *testing.T) {
	assert.Equal(t, "123.45", New(123.45).String())
	assert.Equal(t, "$123.45K", New(123.45).Format())
	assert.Equal(t, "0.00", Zero().String())
}

func TestNewFromString(t *testing.T) {
	m, err := NewFromString("42.5")
	assert.NoError(t, err)
	assert.Equal(t, "42.50", m.String())

	_, err = NewFromString("not-a-number")
	assert.Error(t, err)
}

func TestUSDConversion(t *testing.T) {
	m := FromUSD(decimal.NewFromInt(55000))
	assert.Equal(t, "55.00", m.String())
	assert.True(t, m.USD().Equal(decimal.NewFromInt(55000)))
}

func TestAnnualMonthly(t *testing.T) {
	monthly := New(2)
	assert.Equal(t, "24.00", monthly.Annual().String())
	assert.Equal(t, "2.00", New(24).Monthly().String())
}

func TestRates(t *testing.T) {
	m := New(100)
	assert.Equal(t, "8.00", m.ApplyRate(decimal.NewFromFloat(0.08)).String())
	assert.Equal(t, "92.00", m.AfterRate(decimal.NewFromFloat(0.08)).String())
}

func TestArithmetic(t *testing.T) {
	a := New(10.5)
	b := New(2.5)

	assert.Equal(t, "13.00", a.Add(b).String())
	assert.Equal(t, "8.00", a.Sub(b).String())
	assert.Equal(t, "21.00", a.Mul(decimal.NewFromInt(2)).String())
	assert.Equal(t, "5.25", a.Div(decimal.NewFromInt(2)).String())
	assert.Equal(t, "-10.50", a.Neg().String())
}

func TestComparisons(t *testing.T) {
	a := New(5)
	b := New(10)

	assert.True(t, b.GreaterThan(a))
	assert.True(t, b.GreaterThanOrEqual(b))
	assert.True(t, a.LessThan(b))
	assert.True(t, a.LessThanOrEqual(a))
	assert.True(t, a.Equal(New(5)))
	assert.False(t, a.Equal(b))
}

func TestPredicates(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, New(1).IsPositive())
	assert.True(t, New(-1).IsNegative())
	assert.False(t, New(-1).IsPositive())
}

func TestClampNonNegative(t *testing.T) {
	assert.Equal(t, "0.00", New(-3).ClampNonNegative().String())
	assert.Equal(t, "3.00", New(3).ClampNonNegative().String())
}

func TestMinMax(t *testing.T) {
	a := New(5)
	b := New(10)

	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Min(b, b).Equal(b))
}

func TestRound(t *testing.T) {
	assert.Equal(t, "12.35", New(12.349).Round().String())
	assert.Equal(t, "-12.35", New(-12.349).Round().String())
}
