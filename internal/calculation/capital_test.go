package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(refdata.Default(), nil)
}

func TestDeriveInitialCapitalUSD(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name    string
		program domain.GraduateProgram
		want    float64
	}{
		{
			name: "recorded_capital_wins",
			program: domain.GraduateProgram{
				UniversityCountry: "USA",
				TuitionK:          money.New(50),
				InitialCapitalUSD: money.New(9000),
			},
			want: 9000,
		},
		{
			name: "kaust_override",
			program: domain.GraduateProgram{
				University:        "KAUST",
				UniversityCountry: "Saudi Arabia",
			},
			want: 2000,
		},
		{
			name: "mext_override",
			program: domain.GraduateProgram{
				University:        "University of Tokyo",
				UniversityCountry: "Japan",
				TuitionK:          money.New(5),
				Notes:             "MEXT scholarship likely",
			},
			want: 1500,
		},
		{
			// USA: $5,000 base + 50% of tuition + 50% proof of funds.
			name: "usa_rule",
			program: domain.GraduateProgram{
				UniversityCountry: "USA",
				TuitionK:          money.New(50),
			},
			want: 55000,
		},
		{
			// Germany's blocked account is a flat base, no tuition share.
			name: "germany_blocked_account",
			program: domain.GraduateProgram{
				UniversityCountry: "Germany",
				TuitionK:          money.New(40),
			},
			want: 15000,
		},
		{
			// Guaranteed funding drops the base and the tuition share.
			name: "japan_guaranteed_funding",
			program: domain.GraduateProgram{
				UniversityCountry: "Japan",
				TuitionK:          money.New(20),
				AidType:           domain.AidTypeGuaranteedFunding,
			},
			want: 1500,
		},
		{
			// Unlisted countries use the default rule: $8,000 + 50%.
			name: "default_rule",
			program: domain.GraduateProgram{
				UniversityCountry: "Atlantis",
				TuitionK:          money.New(10),
			},
			want: 13000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.DeriveInitialCapitalUSD(tt.program)
			assert.True(t, got.Equal(money.New(tt.want)), "got %s, want %v", got, tt.want)
		})
	}
}

func TestAdjustedInitialCapital(t *testing.T) {
	base := money.New(55000)

	// No aid keeps the full requirement.
	got := adjustedInitialCapital(base, domain.AidScenarioNone, domain.AidTypeScholarship, money.New(10), money.New(50))
	assert.True(t, got.Equal(base))

	// Guaranteed funding collapses to settling costs.
	got = adjustedInitialCapital(base, domain.AidScenarioExpected, domain.AidTypeGuaranteedFunding, money.Zero(), money.New(50))
	assert.True(t, got.Equal(money.New(3000)))
	got = adjustedInitialCapital(money.New(2000), domain.AidScenarioExpected, domain.AidTypeGuaranteedFunding, money.Zero(), money.New(50))
	assert.True(t, got.Equal(money.New(2000)))

	// A scholarship covering 20% of tuition reduces the tuition half by
	// 20%: 27500 + 27500*0.8 = 49500.
	got = adjustedInitialCapital(base, domain.AidScenarioExpected, domain.AidTypeScholarship, money.New(10), money.New(50))
	assert.True(t, got.Equal(money.New(49500)), "got %s", got)

	// Full coverage halves the requirement.
	got = adjustedInitialCapital(base, domain.AidScenarioBestCase, domain.AidTypeScholarship, money.New(60), money.New(50))
	assert.True(t, got.Equal(money.New(27500)), "got %s", got)
}

func TestAffordabilityBands(t *testing.T) {
	engine := newTestEngine(t)

	projections := []domain.ProgramProjection{
		{ProgramID: "cheap", NetBenefitK: money.New(100), InitialCapitalUSD: money.New(3000)},
		{ProgramID: "mid", NetBenefitK: money.New(50), InitialCapitalUSD: money.New(7000)},
		{ProgramID: "pricey", NetBenefitK: money.New(10), InitialCapitalUSD: money.New(50000)},
	}
	report := engine.Affordability(AffordabilityParams{
		AvailableSavingsUSD:  money.New(5000),
		MonthlySideIncomeUSD: money.New(500),
		PrepMonths:           6,
	}, projections)

	assert.True(t, report.TotalAvailableUSD.Equal(money.New(8000)))
	assert.Equal(t, domain.AidScenarioExpected, report.AidScenario)

	require.Len(t, report.Affordable, 1)
	assert.Equal(t, "cheap", report.Affordable[0].ProgramID)
	assert.True(t, report.Affordable[0].ShortfallUSD.IsZero())
	assert.True(t, report.Affordable[0].AffordabilityPct.Equal(money.New(100)))

	require.Len(t, report.Stretch, 1)
	assert.Equal(t, "mid", report.Stretch[0].ProgramID)

	require.Len(t, report.NeedsFunding, 1)
	assert.Equal(t, "pricey", report.NeedsFunding[0].ProgramID)
	assert.True(t, report.NeedsFunding[0].ShortfallUSD.Equal(money.New(42000)))
	assert.True(t, report.NeedsFunding[0].AffordabilityPct.Equal(money.New(16)), "got %s", report.NeedsFunding[0].AffordabilityPct)
}

func TestAffordabilityDefaults(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.Affordability(AffordabilityParams{
		AvailableSavingsUSD:  money.New(1000),
		MonthlySideIncomeUSD: money.New(100),
	}, nil)

	assert.Equal(t, 6, report.PrepMonths)
	assert.True(t, report.TotalAvailableUSD.Equal(money.New(1600)))
}

func TestAffordabilityNeedsFundingCap(t *testing.T) {
	engine := newTestEngine(t)

	projections := make([]domain.ProgramProjection, 25)
	for i := range projections {
		projections[i] = domain.ProgramProjection{
			ProgramID:         "p",
			InitialCapitalUSD: money.New(100000),
		}
	}
	report := engine.Affordability(AffordabilityParams{}, projections)
	assert.Len(t, report.NeedsFunding, 20)
}
