package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/calibration"
	"github.com/Simba256/Decision-Tree/internal/config"
	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func TestEndToEndProgramRanking(t *testing.T) {
	parser := config.NewInputParser()
	programs, err := parser.LoadPrograms("../testdata/programs.yaml")
	require.NoError(t, err)
	require.Len(t, programs, 3)

	engine := calculation.NewEngine(refdata.Default(), nil)
	ranking := engine.RankPrograms(programs, calculation.ProgramParams{})

	assert.Equal(t, 3, ranking.Total)
	assert.Len(t, ranking.Projections, 3)

	// Sorted by net benefit, best first. The Seattle program's salaries
	// dwarf the others.
	for i := 1; i < len(ranking.Projections); i++ {
		assert.True(t, ranking.Projections[i-1].NetBenefitK.GreaterThanOrEqual(ranking.Projections[i].NetBenefitK))
	}
	assert.Equal(t, "uw-cs-ms", ranking.Projections[0].ProgramID)

	for _, p := range ranking.Projections {
		assert.Len(t, p.Years, 12)
		assert.True(t, p.BaselineK.Equal(ranking.BaselineK))
	}

	assert.Contains(t, ranking.Assumptions, "tax_model")
	assert.NotEmpty(t, ranking.ByTier)
}

func TestEndToEndCareerRanking(t *testing.T) {
	parser := config.NewInputParser()
	graph, err := parser.LoadGraph("../testdata/career_graph.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine(refdata.Default(), nil)
	ranking := engine.RankCareerNodes(graph, calculation.CareerParams{LeafOnly: true})

	// The root routes probability to its children and is not a leaf.
	require.Equal(t, 3, ranking.Total)
	for _, p := range ranking.Projections {
		assert.NotEqual(t, "root", p.NodeID)
		assert.Len(t, p.Years, 10)
		assert.Len(t, p.ParentEdges, 1)
	}

	for _, p := range ranking.Projections {
		if p.NodeID != "p1_trading" {
			continue
		}
		// 5000 USD of upfront capital opens the cumulative balance in
		// the red.
		assert.True(t, p.InitialCapitalK.Equal(money.New(5)))
		expected := p.Years[0].Savings.Sub(p.InitialCapitalK)
		assert.True(t, p.Years[0].Cumulative.Equal(expected.Round()))
	}
}

func TestEndToEndCalibration(t *testing.T) {
	parser := config.NewInputParser()
	graph, err := parser.LoadGraph("../testdata/career_graph.yaml")
	require.NoError(t, err)
	profile, err := parser.LoadProfile("../testdata/profile.yaml")
	require.NoError(t, err)

	summary := calibration.Summarize(graph.Edges, profile)
	assert.Equal(t, 3, summary.TotalEdges)
	assert.Equal(t, 3, summary.ChildEdges)
	assert.Greater(t, summary.EdgesChanged, 0)

	// Renormalization keeps each parent's child group summing to one.
	calibrated := calibration.Calibrate(graph.Edges, profile)
	total := 0.0
	for _, e := range calibrated {
		total += e.CalibratedProbability
	}
	assert.InDelta(t, 1.0, total, 0.001)
}
