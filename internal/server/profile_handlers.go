package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Simba256/Decision-Tree/internal/calibration"
	"github.com/Simba256/Decision-Tree/internal/domain"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]domain.UserProfile{
		"profile": s.Profile(),
	})
}

// profileUpdate is the partial-update payload: only supplied fields are
// merged into the stored profile.
type profileUpdate struct {
	YearsExperience     *float64 `json:"years_experience"`
	PerformanceRating   *string  `json:"performance_rating"`
	RiskTolerance       *string  `json:"risk_tolerance"`
	AvailableSavingsUSD *float64 `json:"available_savings_usd"`
	EnglishLevel        *string  `json:"english_level"`
	GPA                 *float64 `json:"gpa"`
	GREScore            *int     `json:"gre_score"`
	IELTSScore          *float64 `json:"ielts_score"`
	HasPublications     *bool    `json:"has_publications"`
	HasFreelanceProfile *bool    `json:"has_freelance_profile"`
	HasSideProjects     *bool    `json:"has_side_projects"`
	QuantAptitude       *string  `json:"quant_aptitude"`
	CurrentSalaryPKR    *float64 `json:"current_salary_pkr"`
}

func (u profileUpdate) applyTo(p domain.UserProfile) domain.UserProfile {
	if u.YearsExperience != nil {
		p.YearsExperience = *u.YearsExperience
	}
	if u.PerformanceRating != nil {
		p.PerformanceRating = *u.PerformanceRating
	}
	if u.RiskTolerance != nil {
		p.RiskTolerance = *u.RiskTolerance
	}
	if u.AvailableSavingsUSD != nil {
		p.AvailableSavingsUSD = *u.AvailableSavingsUSD
	}
	if u.EnglishLevel != nil {
		p.EnglishLevel = *u.EnglishLevel
	}
	if u.GPA != nil {
		p.GPA = u.GPA
	}
	if u.GREScore != nil {
		p.GREScore = u.GREScore
	}
	if u.IELTSScore != nil {
		p.IELTSScore = u.IELTSScore
	}
	if u.HasPublications != nil {
		p.HasPublications = *u.HasPublications
	}
	if u.HasFreelanceProfile != nil {
		p.HasFreelanceProfile = *u.HasFreelanceProfile
	}
	if u.HasSideProjects != nil {
		p.HasSideProjects = *u.HasSideProjects
	}
	if u.QuantAptitude != nil {
		p.QuantAptitude = *u.QuantAptitude
	}
	if u.CurrentSalaryPKR != nil {
		p.CurrentSalaryPKR = *u.CurrentSalaryPKR
	}
	return p
}

// handleUpdateProfile merges the supplied fields into the stored profile
// after validating the result as a whole.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update profileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.writeError(w, fmt.Errorf("%w: request body must be JSON: %v", domain.ErrValidation, err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := update.applyTo(s.profile)
	if err := s.validate.Struct(merged); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}
	if err := merged.Validate(); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}
	s.profile = merged

	s.writeJSON(w, http.StatusOK, map[string]any{
		"profile": merged,
		"message": "profile updated",
	})
}

// handleCalibrationSummary reports how the stored profile shifts the
// career graph's child-edge probabilities.
func (s *Server) handleCalibrationSummary(w http.ResponseWriter, r *http.Request) {
	summary := calibration.Summarize(s.graph.Edges, s.Profile())
	s.writeJSON(w, http.StatusOK, summary)
}
