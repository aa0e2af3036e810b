package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/domain"
)

var careerSortKeys = []string{"net_benefit", "y1", "y10", "networth"}

type careerNetWorthResponse struct {
	domain.CareerRanking
	TotalFiltered int `json:"total_filtered"`
}

// handleCareerNetWorth ranks the home-career outcome nodes. Leaf-only is
// the default; interior nodes only route probability.
func (s *Server) handleCareerNetWorth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lifestyle, err := parseLifestyle(q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	familyYear, err := parseFamilyYear(q, maxFamilyYearCareer)
	if err != nil {
		s.writeError(w, err)
		return
	}
	nodeType, err := parseNodeType(q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sortBy, err := parseSortKey(q, careerSortKeys, "net_benefit")
	if err != nil {
		s.writeError(w, err)
		return
	}
	limit, hasLimit, err := parseOptionalInt(q, "limit")
	if err != nil {
		s.writeError(w, err)
		return
	}

	ranking := s.engine.RankCareerNodes(s.graph, calculation.CareerParams{
		Lifestyle:            lifestyle,
		FamilyTransitionYear: familyYear,
		NodeType:             nodeType,
		LeafOnly:             parseBool(q, "leaf_only", true),
	})

	projections := ranking.Projections
	sortCareerProjections(projections, sortBy)

	if hasLimit && limit >= 0 && len(projections) > limit {
		projections = projections[:limit]
	}
	if parseBool(q, "compact", false) {
		for i := range projections {
			projections[i].Years = nil
		}
	}

	ranking.Projections = projections
	s.writeJSON(w, http.StatusOK, careerNetWorthResponse{
		CareerRanking: ranking,
		TotalFiltered: len(projections),
	})
}

func sortCareerProjections(projections []domain.CareerProjection, key string) {
	less := func(a, b domain.CareerProjection) bool {
		return a.NetBenefitK.GreaterThan(b.NetBenefitK)
	}
	switch key {
	case "networth":
		less = func(a, b domain.CareerProjection) bool {
			return a.NetWorthK.GreaterThan(b.NetWorthK)
		}
	case "y1":
		less = func(a, b domain.CareerProjection) bool {
			if len(a.Years) == 0 || len(b.Years) == 0 {
				return len(a.Years) > len(b.Years)
			}
			return a.Years[0].Gross.GreaterThan(b.Years[0].Gross)
		}
	case "y10":
		less = func(a, b domain.CareerProjection) bool {
			return a.Year10IncomeK.GreaterThan(b.Year10IncomeK)
		}
	}
	sort.SliceStable(projections, func(i, j int) bool {
		return less(projections[i], projections[j])
	})
}

type careerNodeResponse struct {
	domain.CareerProjection
	Baseline domain.BaselineResult `json:"baseline"`
}

// handleCareerNodeNetWorth projects a single career node by ID. Nodes
// without income data cannot be projected and are rejected.
func (s *Server) handleCareerNodeNetWorth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lifestyle, err := parseLifestyle(q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	familyYear, err := parseFamilyYear(q, maxFamilyYearCareer)
	if err != nil {
		s.writeError(w, err)
		return
	}

	nodeID := chi.URLParam(r, "nodeID")
	node, err := s.graph.Node(nodeID)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: career node %q", domain.ErrNotFound, nodeID))
		return
	}
	if !node.HasIncome() {
		s.writeError(w, fmt.Errorf("%w: career node %q has no income data", domain.ErrValidation, nodeID))
		return
	}

	params := calculation.CareerParams{
		Lifestyle:            lifestyle,
		FamilyTransitionYear: familyYear,
	}
	baseline := s.engine.CareerBaseline(params)
	projection := s.engine.ProjectCareerNode(node, params, baseline.TotalSavingsK)
	projection.ParentEdges = s.graph.ParentEdges(node.ID)

	s.writeJSON(w, http.StatusOK, careerNodeResponse{
		CareerProjection: projection,
		Baseline:         baseline,
	})
}
