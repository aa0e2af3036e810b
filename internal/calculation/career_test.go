package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func tradingNode() domain.CareerNode {
	return domain.CareerNode{
		ID:                "p1_trading",
		Label:             "Part-time trading",
		Type:              domain.NodeTypeTrading,
		Phase:             1,
		Year1IncomeK:      money.New(10),
		Year5IncomeK:      money.New(18),
		Year10IncomeK:     money.New(35),
		InitialCapitalUSD: money.New(5000),
		OngoingMonthlyUSD: money.New(50),
	}
}

func TestProjectCareerNodeLedger(t *testing.T) {
	engine := newTestEngine(t)

	proj := engine.ProjectCareerNode(tradingNode(), CareerParams{}, money.Zero())

	require.Len(t, proj.Years, CareerTotalYears)
	assert.True(t, proj.InitialCapitalK.Equal(money.New(5)))
	assert.True(t, proj.OngoingAnnualK.Equal(money.New(0.6)))

	first := proj.Years[0]
	assert.True(t, first.Gross.Equal(money.New(10)))
	assert.Equal(t, domain.HouseholdSingle, first.Household)
	assert.True(t, first.Ongoing.Equal(money.New(0.6)))

	// The upfront capital opens the running balance in the red.
	assert.True(t, first.Cumulative.Equal(first.Savings.Sub(money.New(5)).Round()),
		"got %s", first.Cumulative)

	// Family from year 3 on the career track.
	for _, y := range proj.Years {
		if y.Year < CareerFamilyTransitionYear {
			assert.Equal(t, domain.HouseholdSingle, y.Household, "year %d", y.Year)
		} else {
			assert.Equal(t, domain.HouseholdFamily, y.Household, "year %d", y.Year)
		}
	}

	last := proj.Years[len(proj.Years)-1]
	assert.True(t, last.Gross.Equal(money.New(35)))
	assert.True(t, proj.EffectiveTaxY10.IsPositive())
}

func TestRankCareerNodesFilters(t *testing.T) {
	engine := newTestEngine(t)

	graph := domain.Graph{
		Nodes: []domain.CareerNode{
			{ID: "root", Label: "Today", Type: domain.NodeTypeCareer},
			{
				ID: "p1_promoted", Label: "Promoted", Type: domain.NodeTypeCareer,
				Year1IncomeK: money.New(13), Year5IncomeK: money.New(20), Year10IncomeK: money.New(30),
			},
			tradingNode(),
		},
		Edges: []domain.Edge{
			{SourceID: "root", TargetID: "p1_promoted", Probability: 0.6, Type: domain.EdgeTypeChild},
			{SourceID: "root", TargetID: "p1_trading", Probability: 0.4, Type: domain.EdgeTypeChild},
		},
	}

	// The root has no income data and is not a leaf; only the two
	// outcome nodes project.
	ranking := engine.RankCareerNodes(graph, CareerParams{LeafOnly: true})
	require.Equal(t, 2, ranking.Total)
	for _, p := range ranking.Projections {
		assert.NotEqual(t, "root", p.NodeID)
		assert.Len(t, p.ParentEdges, 1)
		assert.Equal(t, "root", p.ParentEdges[0].ParentID)
	}

	// Sorted by net benefit, best first.
	assert.True(t, ranking.Projections[0].NetBenefitK.GreaterThanOrEqual(ranking.Projections[1].NetBenefitK))

	// Node-type filter narrows the run.
	trading := engine.RankCareerNodes(graph, CareerParams{NodeType: domain.NodeTypeTrading})
	require.Equal(t, 1, trading.Total)
	assert.Equal(t, "p1_trading", trading.Projections[0].NodeID)
	assert.Contains(t, trading.ByType, "trading")

	assert.Equal(t, "Pakistan", ranking.Assumptions["tax_jurisdiction"])
}

func TestRankCareerNodesSkipsInteriorNodes(t *testing.T) {
	engine := newTestEngine(t)

	graph := domain.Graph{
		Nodes: []domain.CareerNode{
			{
				ID: "mid", Label: "Interior", Type: domain.NodeTypeCareer,
				Year1IncomeK: money.New(12), Year10IncomeK: money.New(25),
			},
			{
				ID: "leaf", Label: "Terminal", Type: domain.NodeTypeCareer,
				Year1IncomeK: money.New(14), Year10IncomeK: money.New(28),
			},
		},
		Edges: []domain.Edge{
			{SourceID: "mid", TargetID: "leaf", Probability: 1.0, Type: domain.EdgeTypeChild},
		},
	}

	all := engine.RankCareerNodes(graph, CareerParams{})
	assert.Equal(t, 2, all.Total)

	leaves := engine.RankCareerNodes(graph, CareerParams{LeafOnly: true})
	require.Equal(t, 1, leaves.Total)
	assert.Equal(t, "leaf", leaves.Projections[0].NodeID)
}
