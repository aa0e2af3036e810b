package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func seattleProgram() domain.GraduateProgram {
	return domain.GraduateProgram{
		ID:                "uw-cs-ms",
		University:        "University of Washington",
		Name:              "CS MS",
		Field:             "CS",
		Tier:              "top",
		UniversityCountry: "USA",
		TuitionK:          money.New(50),
		DurationYears:     2,
		PrimaryMarket:     "USA (Seattle/National)",
		Year1SalaryK:      money.New(180),
		Year5SalaryK:      money.New(250),
		Year10SalaryK:     money.New(350),
		AidType:           domain.AidTypeScholarship,
		ExpectedAidK:      money.New(10),
		BestCaseAidK:      money.New(25),
	}
}

func TestProjectProgramLedger(t *testing.T) {
	engine := newTestEngine(t)

	proj := engine.ProjectProgram(seattleProgram(), ProgramParams{}, money.Zero())

	assert.Equal(t, "USA", proj.WorkCountry)
	assert.Equal(t, "Seattle", proj.WorkCity)
	assert.Equal(t, "WA", proj.USState)
	assert.Equal(t, domain.AidScenarioNone, proj.AidScenario)

	require.Len(t, proj.Years, ProgramTotalYears)

	// Two study years: no income, tuition split evenly, student costs at
	// the Bay Area rate (the USA study fallback).
	for _, y := range proj.Years[:2] {
		assert.Equal(t, domain.PhaseStudy, y.Phase)
		assert.Equal(t, domain.HouseholdStudent, y.Household)
		assert.True(t, y.Gross.IsZero())
		assert.True(t, y.Tuition.Equal(money.New(25)), "got %s", y.Tuition)
		assert.True(t, y.LivingCost.Equal(money.New(32)), "got %s", y.LivingCost)
		assert.True(t, y.Savings.Equal(money.New(-57)), "got %s", y.Savings)
	}

	// Ten work years follow, family from calendar year 5.
	for _, y := range proj.Years[2:] {
		assert.Equal(t, domain.PhaseWork, y.Phase)
		assert.True(t, y.Gross.IsPositive())
		if y.Year < ProgramFamilyTransitionYear {
			assert.Equal(t, domain.HouseholdSingle, y.Household, "year %d", y.Year)
		} else {
			assert.Equal(t, domain.HouseholdFamily, y.Household, "year %d", y.Year)
		}
	}

	// Work year 1 lands in calendar year 3 at the year-1 anchor.
	assert.True(t, proj.Years[2].Gross.Equal(money.New(180)))

	assert.True(t, proj.TuitionPaidK.Equal(money.New(50)))
	assert.True(t, proj.ScholarshipK.IsZero())
	assert.True(t, proj.NetWorthK.GreaterThan(money.New(500)), "got %s", proj.NetWorthK)
	assert.True(t, proj.EffectiveTaxY10.IsPositive())
}

func TestProjectProgramAidScenarios(t *testing.T) {
	engine := newTestEngine(t)
	program := seattleProgram()

	noAid := engine.ProjectProgram(program, ProgramParams{AidScenario: domain.AidScenarioNone}, money.Zero())
	expected := engine.ProjectProgram(program, ProgramParams{AidScenario: domain.AidScenarioExpected}, money.Zero())
	best := engine.ProjectProgram(program, ProgramParams{AidScenario: domain.AidScenarioBestCase}, money.Zero())

	assert.True(t, expected.TuitionPaidK.Equal(money.New(40)))
	assert.True(t, expected.ScholarshipK.Equal(money.New(10)))
	assert.True(t, best.TuitionPaidK.Equal(money.New(25)))

	assert.True(t, noAid.NetWorthK.LessThanOrEqual(expected.NetWorthK))
	assert.True(t, expected.NetWorthK.LessThanOrEqual(best.NetWorthK))

	// Aid also lowers the upfront capital requirement.
	assert.True(t, expected.InitialCapitalUSD.LessThan(noAid.InitialCapitalUSD))
}

func TestProjectProgramCoopEarnings(t *testing.T) {
	engine := newTestEngine(t)
	program := seattleProgram()
	program.CoopEarningsK = money.New(15)

	noAid := engine.ProjectProgram(program, ProgramParams{AidScenario: domain.AidScenarioNone}, money.Zero())
	expected := engine.ProjectProgram(program, ProgramParams{AidScenario: domain.AidScenarioExpected}, money.Zero())

	// Co-op placements only count in the aid scenarios.
	assert.True(t, noAid.CoopAppliedK.IsZero())
	assert.True(t, expected.CoopAppliedK.Equal(money.New(15)))
}

func TestProjectProgramLifestyle(t *testing.T) {
	engine := newTestEngine(t)
	program := seattleProgram()

	frugal := engine.ProjectProgram(program, ProgramParams{Lifestyle: domain.LifestyleFrugal}, money.Zero())
	comfortable := engine.ProjectProgram(program, ProgramParams{Lifestyle: domain.LifestyleComfortable}, money.Zero())

	assert.True(t, comfortable.NetWorthK.LessThan(frugal.NetWorthK))
}

func TestRankProgramsOrderingAndGroups(t *testing.T) {
	engine := newTestEngine(t)

	programs := []domain.GraduateProgram{seattleProgram(), {
		ID:                "tum-informatics-ms",
		University:        "TUM",
		Name:              "Informatics MS",
		Field:             "CS",
		Tier:              "strong",
		UniversityCountry: "Germany",
		TuitionK:          money.New(1),
		DurationYears:     2,
		PrimaryMarket:     "Munich",
		Year1SalaryK:      money.New(65),
		Year5SalaryK:      money.New(95),
		Year10SalaryK:     money.New(130),
	}}

	ranking := engine.RankPrograms(programs, ProgramParams{})
	require.Equal(t, 2, ranking.Total)
	assert.Equal(t, "uw-cs-ms", ranking.Projections[0].ProgramID)
	assert.True(t, ranking.Projections[0].NetBenefitK.GreaterThanOrEqual(ranking.Projections[1].NetBenefitK))

	assert.Len(t, ranking.Top, 2)
	assert.Contains(t, ranking.ByTier, "top")
	assert.Contains(t, ranking.ByField, "CS")
	assert.Equal(t, 2, ranking.ByField["CS"].Count)
	assert.Contains(t, ranking.ByWorkCountry, "Germany")
	assert.Equal(t, "frugal", ranking.Assumptions["lifestyle"])
}
