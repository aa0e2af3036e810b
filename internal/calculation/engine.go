// Package calculation implements the financial engines: per-country tax
// calculation, living cost resolution, market mapping, and the net-worth
// projection tracks (graduate programs abroad versus home career paths),
// each compared against the stay-home baseline.
package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// Engine composes the calculators over one reference dataset.
type Engine struct {
	data    *refdata.Dataset
	taxes   *TaxCalculator
	living  *LivingCostResolver
	markets *MarketMapper
	logger  Logger
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(data *refdata.Dataset, logger Logger) *Engine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Engine{
		data:    data,
		taxes:   NewTaxCalculator(data, logger),
		living:  NewLivingCostResolver(data, logger),
		markets: NewMarketMapper(data, logger),
		logger:  logger,
	}
}

// Taxes exposes the tax calculator for callers that need rates directly.
func (e *Engine) Taxes() *TaxCalculator { return e.taxes }

// LivingCosts exposes the living cost resolver.
func (e *Engine) LivingCosts() *LivingCostResolver { return e.living }

// Markets exposes the market mapper.
func (e *Engine) Markets() *MarketMapper { return e.markets }

// RankPrograms projects every program under one scenario and ranks the
// results by net benefit over the baseline, with grouped summaries by
// funding tier, field, and work country.
func (e *Engine) RankPrograms(programs []domain.GraduateProgram, params ProgramParams) domain.ProgramRanking {
	params = params.withDefaults()

	baseline := e.ProgramBaseline(params)
	baselineK := baseline.TotalSavingsK

	projections := make([]domain.ProgramProjection, 0, len(programs))
	for _, p := range programs {
		projections = append(projections, e.ProjectProgram(p, params, baselineK))
	}

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].NetBenefitK.GreaterThan(projections[j].NetBenefitK)
	})

	positive := 0
	byTier := map[string][]money.Amount{}
	byField := map[string][]money.Amount{}
	byCountry := map[string][]money.Amount{}
	for _, proj := range projections {
		if proj.Beats() {
			positive++
		}
		byTier[proj.Tier] = append(byTier[proj.Tier], proj.NetBenefitK)
		byField[proj.Field] = append(byField[proj.Field], proj.NetBenefitK)
		byCountry[proj.WorkCountry] = append(byCountry[proj.WorkCountry], proj.NetBenefitK)
	}

	top := make([]domain.RankedProgram, 0, 5)
	for _, proj := range head(projections, 5) {
		top = append(top, rankedProgram(proj))
	}
	bottom := make([]domain.RankedProgram, 0, 5)
	for _, proj := range tail(projections, 5) {
		bottom = append(bottom, rankedProgram(proj))
	}

	return domain.ProgramRanking{
		BaselineK:     baselineK,
		Projections:   projections,
		Total:         len(projections),
		PositiveCount: positive,
		Top:           top,
		Bottom:        bottom,
		ByTier:        groupStats(byTier),
		ByField:       groupStats(byField),
		ByWorkCountry: groupStats(byCountry),
		Assumptions: map[string]string{
			"total_years":            fmt.Sprintf("%d", ProgramTotalYears),
			"family_transition_year": fmt.Sprintf("%d", params.FamilyTransitionYear),
			"lifestyle":              string(params.Lifestyle),
			"aid_scenario":           string(params.AidScenario),
			"tax_model":              "progressive_brackets_per_country",
			"living_cost_model":      "per_city_single_family_student",
		},
	}
}

// RankCareerNodes projects the career graph's outcome nodes and ranks
// them by net benefit. Interior routing nodes and nodes without income
// data are skipped; LeafOnly restricts the run to terminal outcomes.
func (e *Engine) RankCareerNodes(graph domain.Graph, params CareerParams) domain.CareerRanking {
	params = params.withDefaults()

	baseline := e.CareerBaseline(params)
	baselineK := baseline.TotalSavingsK

	var projections []domain.CareerProjection
	for _, node := range graph.Nodes {
		if params.NodeType != "" && node.Type != params.NodeType {
			continue
		}
		if params.LeafOnly && !graph.IsLeaf(node.ID) {
			continue
		}
		if !node.HasIncome() {
			continue
		}
		proj := e.ProjectCareerNode(node, params, baselineK)
		proj.ParentEdges = graph.ParentEdges(node.ID)
		projections = append(projections, proj)
	}

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].NetBenefitK.GreaterThan(projections[j].NetBenefitK)
	})

	positive := 0
	byType := map[string][]money.Amount{}
	for _, proj := range projections {
		if proj.NetBenefitK.IsPositive() {
			positive++
		}
		byType[string(proj.NodeType)] = append(byType[string(proj.NodeType)], proj.NetBenefitK)
	}

	top := make([]domain.RankedNode, 0, 5)
	for _, proj := range head(projections, 5) {
		top = append(top, rankedNode(proj))
	}
	bottom := make([]domain.RankedNode, 0, 5)
	for _, proj := range tail(projections, 5) {
		bottom = append(bottom, rankedNode(proj))
	}

	return domain.CareerRanking{
		BaselineK:     baselineK,
		Projections:   projections,
		Total:         len(projections),
		PositiveCount: positive,
		Top:           top,
		Bottom:        bottom,
		ByType:        groupStats(byType),
		Assumptions: map[string]string{
			"total_years":            fmt.Sprintf("%d", CareerTotalYears),
			"family_transition_year": fmt.Sprintf("%d", params.FamilyTransitionYear),
			"lifestyle":              string(params.Lifestyle),
			"tax_jurisdiction":       "Pakistan",
			"living_cost_location":   "Pakistan",
			"leaf_only":              fmt.Sprintf("%t", params.LeafOnly),
		},
	}
}

func rankedProgram(p domain.ProgramProjection) domain.RankedProgram {
	return domain.RankedProgram{
		University:  p.University,
		Program:     p.Program,
		Field:       p.Field,
		WorkCountry: p.WorkCountry,
		NetBenefitK: p.NetBenefitK,
	}
}

func rankedNode(p domain.CareerProjection) domain.RankedNode {
	return domain.RankedNode{
		NodeID:        p.NodeID,
		Label:         p.Label,
		NodeType:      p.NodeType,
		Year10IncomeK: p.Year10IncomeK,
		NetBenefitK:   p.NetBenefitK,
	}
}

// groupStats reduces grouped net benefits to avg/count/min/max, each
// rounded to one decimal.
func groupStats(groups map[string][]money.Amount) map[string]domain.GroupStat {
	out := make(map[string]domain.GroupStat, len(groups))
	for key, values := range groups {
		if len(values) == 0 {
			continue
		}
		sum := money.Zero()
		min := values[0]
		max := values[0]
		for _, v := range values {
			sum = sum.Add(v)
			min = money.Min(min, v)
			max = money.Max(max, v)
		}
		avg := sum.Decimal.Div(decimal.NewFromInt(int64(len(values))))
		out[key] = domain.GroupStat{
			Avg:   money.NewFromDecimal(avg.Round(1)),
			Count: len(values),
			Min:   money.NewFromDecimal(min.Decimal.Round(1)),
			Max:   money.NewFromDecimal(max.Decimal.Round(1)),
		}
	}
	return out
}

func head[T any](s []T, n int) []T {
	if len(s) < n {
		n = len(s)
	}
	return s[:n]
}

func tail[T any](s []T, n int) []T {
	if len(s) < n {
		n = len(s)
	}
	return s[len(s)-n:]
}
