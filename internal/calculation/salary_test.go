package calculation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Simba256/Decision-Tree/pkg/money"
)

func TestInterpolateSalary(t *testing.T) {
	y1 := money.New(100)
	y5 := money.New(200)
	y10 := money.New(300)

	tests := []struct {
		workYear int
		want     float64
	}{
		{1, 100},
		{2, 125},
		{3, 150},
		{4, 175},
		{5, 200},
		{6, 220},
		{7, 240},
		{10, 300},
		{11, 300}, // flat after year 10
		{12, 300},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("year_%d", tt.workYear), func(t *testing.T) {
			got := interpolateSalary(tt.workYear, y1, y5, y10)
			assert.True(t, got.Equal(money.New(tt.want)),
				"year %d: got %s, want %v", tt.workYear, got, tt.want)
		})
	}
}

func TestInterpolateSalaryFlatAnchors(t *testing.T) {
	flat := money.New(50)
	for year := 1; year <= 12; year++ {
		assert.True(t, interpolateSalary(year, flat, flat, flat).Equal(flat))
	}
}
