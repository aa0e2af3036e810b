package calibration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/domain"
)

func TestSummarizeDefaultProfile(t *testing.T) {
	summary := Summarize(rootEdges(), domain.DefaultProfile())

	assert.Equal(t, 3, summary.TotalEdges)
	assert.Equal(t, 3, summary.ChildEdges)
	assert.Equal(t, 0, summary.EdgesChanged)
	assert.Empty(t, summary.Changes)
}

func TestSummarizeReportsShifts(t *testing.T) {
	profile := domain.DefaultProfile()
	profile.RiskTolerance = "high"

	edges := append(rootEdges(), domain.Edge{
		SourceID: "p1_trading", TargetID: "p2_trade_stocks",
		Probability: 0.8, Type: domain.EdgeTypeTransition,
	})
	summary := Summarize(edges, profile)

	assert.Equal(t, 4, summary.TotalEdges)
	assert.Equal(t, 3, summary.ChildEdges)
	require.NotEmpty(t, summary.Changes)
	assert.Equal(t, len(summary.Changes), summary.EdgesChanged)

	// Largest absolute shift first.
	for i := 1; i < len(summary.Changes); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(summary.Changes[i-1].Change),
			math.Abs(summary.Changes[i].Change))
	}

	// The suppressed stable branch moves the most.
	first := summary.Changes[0]
	assert.Equal(t, "p1_promoted", first.TargetID)
	assert.Less(t, first.Change, 0.0)
	assert.NotZero(t, first.ChangePct)
}

func TestSummarizeIgnoresSmallShifts(t *testing.T) {
	// A profile shift below the reporting threshold stays out of the
	// change list even though the multiplier moved.
	profile := domain.DefaultProfile()
	gpa := 3.9
	profile.GPA = &gpa

	edges := []domain.Edge{
		{SourceID: "root", TargetID: "p1_promoted", Probability: 0.999, Type: domain.EdgeTypeChild},
		{SourceID: "root", TargetID: "p1_trading", Probability: 0.001, Type: domain.EdgeTypeChild},
	}
	summary := Summarize(edges, profile)
	assert.Equal(t, 2, summary.ChildEdges)
	assert.Equal(t, 0, summary.EdgesChanged)
}
