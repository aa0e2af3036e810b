package calibration

import (
	"math"
	"sort"

	"github.com/Simba256/Decision-Tree/internal/domain"
)

// EdgeChange reports one child edge whose probability moved meaningfully
// under calibration.
type EdgeChange struct {
	SourceID              string  `json:"source_id"`
	TargetID              string  `json:"target_id"`
	BaseProbability       float64 `json:"base_probability"`
	CalibratedProbability float64 `json:"calibrated_probability"`
	Change                float64 `json:"change"`
	ChangePct             float64 `json:"change_pct"`
	Multiplier            float64 `json:"multiplier"`
}

// Summary is the transparency view over one calibration run.
type Summary struct {
	TotalEdges   int          `json:"total_edges"`
	ChildEdges   int          `json:"child_edges"`
	EdgesChanged int          `json:"edges_changed"`
	Changes      []EdgeChange `json:"changes"`
}

// Reporting threshold: shifts within half a percentage point are noise
// from renormalization rounding.
const changeThreshold = 0.005

// Summarize calibrates the edges and reports the child edges whose
// probabilities moved more than the threshold, largest shifts first.
func Summarize(edges []domain.Edge, profile domain.UserProfile) Summary {
	calibrated := Calibrate(edges, profile)

	summary := Summary{
		TotalEdges: len(calibrated),
		Changes:    []EdgeChange{},
	}

	for _, e := range calibrated {
		if e.LinkType != domain.EdgeTypeChild {
			continue
		}
		summary.ChildEdges++

		change := e.CalibratedProbability - e.BaseProbability
		if math.Abs(change) <= changeThreshold {
			continue
		}

		changePct := 0.0
		if e.BaseProbability > 0 {
			changePct = round1(change / e.BaseProbability * 100)
		}
		summary.Changes = append(summary.Changes, EdgeChange{
			SourceID:              e.SourceID,
			TargetID:              e.TargetID,
			BaseProbability:       e.BaseProbability,
			CalibratedProbability: e.CalibratedProbability,
			Change:                round4(change),
			ChangePct:             changePct,
			Multiplier:            e.Multiplier,
		})
	}

	sort.SliceStable(summary.Changes, func(i, j int) bool {
		return math.Abs(summary.Changes[i].Change) > math.Abs(summary.Changes[j].Change)
	})

	summary.EdgesChanged = len(summary.Changes)
	return summary
}
