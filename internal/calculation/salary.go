package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/pkg/money"
)

// interpolateSalary returns the gross salary for a given work year from
// the year-1/5/10 anchors. Growth is linear between anchors and flat
// after year 10.
func interpolateSalary(workYear int, y1, y5, y10 money.Amount) money.Amount {
	switch {
	case workYear <= 1:
		return y1
	case workYear <= 5:
		fraction := decimal.NewFromInt(int64(workYear - 1)).Div(decimal.NewFromInt(4))
		return y1.Add(y5.Sub(y1).Mul(fraction))
	case workYear <= 10:
		fraction := decimal.NewFromInt(int64(workYear - 5)).Div(decimal.NewFromInt(5))
		return y5.Add(y10.Sub(y5).Mul(fraction))
	default:
		return y10
	}
}
