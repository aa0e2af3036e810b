// Package calibration adjusts career-graph edge probabilities to a user
// profile. Each profile factor produces an independent multiplier on
// specific edges; the multipliers compose, then each parent's child group
// is re-normalized to sum to 1.0. Only child edges are calibrated:
// transition, fallback, and enables edges keep their base probabilities
// because they do not participate in the sum-to-one constraint.
package calibration

import (
	"math"

	"github.com/Simba256/Decision-Tree/internal/domain"
)

// CalibratedEdge is one edge with its profile-adjusted probability.
type CalibratedEdge struct {
	SourceID              string          `json:"source_id"`
	TargetID              string          `json:"target_id"`
	LinkType              domain.EdgeType `json:"link_type"`
	BaseProbability       float64         `json:"probability"`
	CalibratedProbability float64         `json:"calibrated_probability"`
	Multiplier            float64         `json:"multiplier"`
	Note                  string          `json:"note,omitempty"`
}

// Calibrate applies the profile's multiplier rules to every edge and
// re-normalizes each parent's child group. Edge order is preserved.
func Calibrate(edges []domain.Edge, profile domain.UserProfile) []CalibratedEdge {
	out := make([]CalibratedEdge, len(edges))
	rawAdjusted := make([]float64, len(edges))
	childGroups := map[string][]int{}

	for i, e := range edges {
		out[i] = CalibratedEdge{
			SourceID:        e.SourceID,
			TargetID:        e.TargetID,
			LinkType:        e.Type,
			BaseProbability: e.Probability,
			Multiplier:      1.0,
			Note:            e.Note,
		}

		if e.Type != domain.EdgeTypeChild {
			out[i].CalibratedProbability = e.Probability
			continue
		}

		combined := 1.0
		for _, r := range multiplierRules {
			combined *= r(profile, e.SourceID, e.TargetID)
		}
		out[i].Multiplier = round4(combined)
		rawAdjusted[i] = e.Probability * combined
		childGroups[e.SourceID] = append(childGroups[e.SourceID], i)
	}

	for _, group := range childGroups {
		total := 0.0
		for _, i := range group {
			total += rawAdjusted[i]
		}
		if total > 0 {
			for _, i := range group {
				out[i].CalibratedProbability = round4(rawAdjusted[i] / total)
			}
		} else {
			uniform := round4(1.0 / float64(len(group)))
			for _, i := range group {
				out[i].CalibratedProbability = uniform
			}
		}
	}

	return out
}

// EdgeMap returns the calibrated probabilities keyed by source then
// target.
func EdgeMap(edges []domain.Edge, profile domain.UserProfile) map[string]map[string]float64 {
	calibrated := Calibrate(edges, profile)
	m := make(map[string]map[string]float64)
	for _, e := range calibrated {
		if m[e.SourceID] == nil {
			m[e.SourceID] = make(map[string]float64)
		}
		m[e.SourceID][e.TargetID] = e.CalibratedProbability
	}
	return m
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
