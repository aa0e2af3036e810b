package server

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

var programSortKeys = []string{"net_benefit", "cost", "y1", "y10", "networth", "initial_capital"}

// handlePrograms lists the loaded programs with optional filters.
func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	maxTuition, hasMaxTuition, err := parseOptionalInt(q, "max_tuition")
	if err != nil {
		s.writeError(w, err)
		return
	}
	minY10, hasMinY10, err := parseOptionalInt(q, "min_y10_salary")
	if err != nil {
		s.writeError(w, err)
		return
	}

	programs := make([]domain.GraduateProgram, 0, len(s.programs))
	for _, p := range s.programs {
		if f := q.Get("field"); f != "" && p.Field != f {
			continue
		}
		if t := q.Get("funding_tier"); t != "" && p.Tier != t {
			continue
		}
		if c := q.Get("country"); c != "" && p.UniversityCountry != c {
			continue
		}
		if hasMaxTuition && p.TuitionK.GreaterThan(money.New(float64(maxTuition))) {
			continue
		}
		if hasMinY10 && p.Year10SalaryK.LessThan(money.New(float64(minY10))) {
			continue
		}
		programs = append(programs, p)
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(programs),
		"programs": programs,
	})
}

// programParamsFromQuery assembles the projection knobs shared by the
// net-worth endpoints.
func programParamsFromQuery(q url.Values, defaultAid domain.AidScenario) (calculation.ProgramParams, error) {
	var params calculation.ProgramParams

	lifestyle, err := parseLifestyle(q)
	if err != nil {
		return params, err
	}
	aid, err := parseAidScenario(q, defaultAid)
	if err != nil {
		return params, err
	}
	familyYear, err := parseFamilyYear(q, maxFamilyYearProgram)
	if err != nil {
		return params, err
	}
	salary, hasSalary, err := parseOptionalFloat(q, "baseline_salary")
	if err != nil {
		return params, err
	}
	growth, hasGrowth, err := parseOptionalFloat(q, "baseline_growth")
	if err != nil {
		return params, err
	}

	params.Lifestyle = lifestyle
	params.AidScenario = aid
	params.FamilyTransitionYear = familyYear
	if hasSalary {
		params.BaselineSalaryK = money.New(salary)
	}
	if hasGrowth {
		params.BaselineGrowth = decimal.NewFromFloat(growth)
	}
	return params, nil
}

type netWorthResponse struct {
	domain.ProgramRanking
	TotalFiltered int `json:"total_filtered"`
}

// handleNetWorth ranks every program over the graduate horizon, then
// filters, re-sorts, and trims the projection list per the query.
func (s *Server) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params, err := programParamsFromQuery(q, domain.AidScenarioNone)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sortBy, err := parseSortKey(q, programSortKeys, "net_benefit")
	if err != nil {
		s.writeError(w, err)
		return
	}
	maxCapital, hasMaxCapital, err := parseOptionalInt(q, "max_initial_capital")
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, hasLimit, err := parseOptionalInt(q, "limit")
	if err != nil {
		s.writeError(w, err)
		return
	}

	ranking := s.engine.RankPrograms(s.programs, params)

	projections := ranking.Projections[:0:0]
	for _, p := range ranking.Projections {
		if f := q.Get("field"); f != "" && p.Field != f {
			continue
		}
		if t := q.Get("funding_tier"); t != "" && p.Tier != t {
			continue
		}
		if c := q.Get("work_country"); c != "" && p.WorkCountry != c {
			continue
		}
		if hasMaxCapital && p.InitialCapitalUSD.GreaterThan(money.New(float64(maxCapital))) {
			continue
		}
		projections = append(projections, p)
	}

	sortProgramProjections(projections, sortBy)

	if hasLimit && limit >= 0 && len(projections) > limit {
		projections = projections[:limit]
	}
	if parseBool(q, "compact", false) {
		for i := range projections {
			projections[i].Years = nil
		}
	}

	ranking.Projections = projections
	s.writeJSON(w, http.StatusOK, netWorthResponse{
		ProgramRanking: ranking,
		TotalFiltered:  len(projections),
	})
}

// sortProgramProjections re-sorts by the requested key. Cost and capital
// sort ascending since lower is better; everything else descending.
func sortProgramProjections(projections []domain.ProgramProjection, key string) {
	less := func(a, b domain.ProgramProjection) bool {
		return a.NetBenefitK.GreaterThan(b.NetBenefitK)
	}
	switch key {
	case "cost":
		less = func(a, b domain.ProgramProjection) bool {
			return a.StudyCostK.LessThan(b.StudyCostK)
		}
	case "initial_capital":
		less = func(a, b domain.ProgramProjection) bool {
			return a.InitialCapitalUSD.LessThan(b.InitialCapitalUSD)
		}
	case "networth":
		less = func(a, b domain.ProgramProjection) bool {
			return a.NetWorthK.GreaterThan(b.NetWorthK)
		}
	case "y1":
		less = func(a, b domain.ProgramProjection) bool {
			return firstWorkGross(a).GreaterThan(firstWorkGross(b))
		}
	case "y10":
		less = func(a, b domain.ProgramProjection) bool {
			return lastWorkGross(a).GreaterThan(lastWorkGross(b))
		}
	}
	sort.SliceStable(projections, func(i, j int) bool {
		return less(projections[i], projections[j])
	})
}

func firstWorkGross(p domain.ProgramProjection) money.Amount {
	for _, y := range p.Years {
		if y.Phase == domain.PhaseWork {
			return y.Gross
		}
	}
	return money.Zero()
}

func lastWorkGross(p domain.ProgramProjection) money.Amount {
	for i := len(p.Years) - 1; i >= 0; i-- {
		if p.Years[i].Phase == domain.PhaseWork {
			return p.Years[i].Gross
		}
	}
	return money.Zero()
}

func (s *Server) findProgram(id string) (domain.GraduateProgram, error) {
	for _, p := range s.programs {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.GraduateProgram{}, fmt.Errorf("%w: program %q", domain.ErrNotFound, id)
}

type programNetWorthResponse struct {
	domain.ProgramProjection
	Baseline domain.BaselineResult `json:"baseline"`
}

// handleProgramNetWorth projects a single program by ID.
func (s *Server) handleProgramNetWorth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params, err := programParamsFromQuery(q, domain.AidScenarioNone)
	if err != nil {
		s.writeError(w, err)
		return
	}
	program, err := s.findProgram(chi.URLParam(r, "programID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	baseline := s.engine.ProgramBaseline(params)
	projection := s.engine.ProjectProgram(program, params, baseline.TotalSavingsK)

	s.writeJSON(w, http.StatusOK, programNetWorthResponse{
		ProgramProjection: projection,
		Baseline:          baseline,
	})
}

type compareResponse struct {
	ProgramID    string                                          `json:"program_id"`
	University   string                                          `json:"university"`
	Program      string                                          `json:"program"`
	Country      string                                          `json:"country"`
	RawTuitionK  money.Amount                                    `json:"raw_tuition_k"`
	AidType      domain.AidType                                  `json:"aid_type"`
	ExpectedAidK money.Amount                                    `json:"expected_aid_k"`
	BestCaseAidK money.Amount                                    `json:"best_case_aid_k"`
	Baseline     domain.BaselineResult                           `json:"baseline"`
	Scenarios    map[domain.AidScenario]domain.ProgramProjection `json:"scenarios"`
	AidImpact    map[string]money.Amount                         `json:"aid_impact"`
}

// handleProgramCompare projects one program under all three aid scenarios
// so their net benefits can be compared side by side.
func (s *Server) handleProgramCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params, err := programParamsFromQuery(q, domain.AidScenarioNone)
	if err != nil {
		s.writeError(w, err)
		return
	}
	program, err := s.findProgram(chi.URLParam(r, "programID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	baseline := s.engine.ProgramBaseline(params)

	scenarios := make(map[domain.AidScenario]domain.ProgramProjection, 3)
	for _, scenario := range []domain.AidScenario{domain.AidScenarioNone, domain.AidScenarioExpected, domain.AidScenarioBestCase} {
		scenarioParams := params
		scenarioParams.AidScenario = scenario
		projection := s.engine.ProjectProgram(program, scenarioParams, baseline.TotalSavingsK)
		projection.Years = nil
		scenarios[scenario] = projection
	}

	noAid := scenarios[domain.AidScenarioNone].NetBenefitK
	s.writeJSON(w, http.StatusOK, compareResponse{
		ProgramID:    program.ID,
		University:   program.University,
		Program:      program.Name,
		Country:      program.UniversityCountry,
		RawTuitionK:  program.TuitionK,
		AidType:      program.AidType,
		ExpectedAidK: program.ExpectedAidK,
		BestCaseAidK: program.BestCaseAidK,
		Baseline:     baseline,
		Scenarios:    scenarios,
		AidImpact: map[string]money.Amount{
			"expected_vs_no_aid_k":  scenarios[domain.AidScenarioExpected].NetBenefitK.Sub(noAid).Round(),
			"best_case_vs_no_aid_k": scenarios[domain.AidScenarioBestCase].NetBenefitK.Sub(noAid).Round(),
		},
	})
}

type affordabilityResponse struct {
	domain.AffordabilityReport
	Summary map[string]int `json:"summary"`
}

// handleAffordability classifies the ranked programs by whether their
// upfront capital is within reach. Savings default to the profile's
// figure when not supplied.
func (s *Server) handleAffordability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	aid, err := parseAidScenario(q, domain.AidScenarioExpected)
	if err != nil {
		s.writeError(w, err)
		return
	}
	savings, hasSavings, err := parseOptionalFloat(q, "available_savings")
	if err != nil {
		s.writeError(w, err)
		return
	}
	sideIncome, _, err := parseOptionalFloat(q, "monthly_side_income")
	if err != nil {
		s.writeError(w, err)
		return
	}
	prepMonths, _, err := parseOptionalInt(q, "prep_months")
	if err != nil {
		s.writeError(w, err)
		return
	}

	if !hasSavings {
		savings = s.Profile().AvailableSavingsUSD
	}

	ranking := s.engine.RankPrograms(s.programs, calculation.ProgramParams{AidScenario: aid})
	report := s.engine.Affordability(calculation.AffordabilityParams{
		AvailableSavingsUSD:  money.New(savings),
		MonthlySideIncomeUSD: money.New(sideIncome),
		PrepMonths:           prepMonths,
		AidScenario:          aid,
	}, ranking.Projections)

	s.writeJSON(w, http.StatusOK, affordabilityResponse{
		AffordabilityReport: report,
		Summary: map[string]int{
			"affordable_count":    len(report.Affordable),
			"stretch_count":       len(report.Stretch),
			"needs_funding_count": len(report.NeedsFunding),
			"total_programs":      len(ranking.Projections),
		},
	})
}
