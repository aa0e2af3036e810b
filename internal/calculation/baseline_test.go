package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func TestBaselineDefaults(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Baseline(BaselineParams{Years: 12, FamilyTransitionYear: 5})
	require.Len(t, result.Years, 12)

	first := result.Years[0]
	assert.True(t, first.Gross.Equal(money.New(9.5)), "got %s", first.Gross)
	assert.Equal(t, domain.PhaseWork, first.Phase)
	assert.Equal(t, domain.HouseholdSingle, first.Household)

	// 8% growth compounds year over year.
	assert.True(t, result.Years[1].Gross.Equal(money.New(10.26)), "got %s", result.Years[1].Gross)

	for _, y := range result.Years {
		if y.Year < 5 {
			assert.Equal(t, domain.HouseholdSingle, y.Household, "year %d", y.Year)
		} else {
			assert.Equal(t, domain.HouseholdFamily, y.Household, "year %d", y.Year)
		}
		assert.True(t, y.AfterTax.LessThanOrEqual(y.Gross), "year %d taxed above gross", y.Year)
	}

	last := result.Years[len(result.Years)-1]
	assert.True(t, result.TotalSavingsK.Equal(last.Cumulative))
}

func TestBaselineNoFamilyTransition(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Baseline(BaselineParams{Years: 10})
	for _, y := range result.Years {
		assert.Equal(t, domain.HouseholdSingle, y.Household, "year %d", y.Year)
	}
}

func TestBaselineMonotonicInFamilyYear(t *testing.T) {
	engine := newTestEngine(t)

	// Each year later the family transition lands, one family year turns
	// back into a cheaper single year, so total savings strictly rise.
	const years = 6
	var prev money.Amount
	for transition := 1; transition <= years+1; transition++ {
		result := engine.Baseline(BaselineParams{
			Years:                years,
			FamilyTransitionYear: transition,
		})
		if transition > 1 {
			assert.True(t, result.TotalSavingsK.GreaterThan(prev),
				"transition %d: total %s <= %s", transition, result.TotalSavingsK, prev)
		}
		prev = result.TotalSavingsK
	}

	// One past the horizon means the family never arrives.
	never := engine.Baseline(BaselineParams{Years: years})
	assert.True(t, prev.Equal(never.TotalSavingsK),
		"transition %d: total %s != never %s", years+1, prev, never.TotalSavingsK)
}

func TestBaselineLifestyle(t *testing.T) {
	engine := newTestEngine(t)

	frugal := engine.Baseline(BaselineParams{Years: 10, Lifestyle: domain.LifestyleFrugal})
	comfortable := engine.Baseline(BaselineParams{Years: 10, Lifestyle: domain.LifestyleComfortable})

	assert.True(t, comfortable.TotalSavingsK.LessThan(frugal.TotalSavingsK),
		"comfortable %s should save less than frugal %s",
		comfortable.TotalSavingsK, frugal.TotalSavingsK)
}

func TestBaselineCustomSalary(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Baseline(BaselineParams{
		Years:        5,
		StartSalaryK: money.New(20),
	})
	require.Len(t, result.Years, 5)
	assert.True(t, result.Years[0].Gross.Equal(money.New(20)))
	assert.True(t, result.TotalSavingsK.IsPositive())
}
