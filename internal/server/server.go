// Package server exposes the projection, affordability, and calibration
// engines over an HTTP JSON API.
package server

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/domain"
)

// Server holds the loaded inputs and the engines the handlers call. The
// profile is mutable through the API and guarded by mu; everything else is
// read-only after construction.
type Server struct {
	engine   *calculation.Engine
	programs []domain.GraduateProgram
	graph    domain.Graph
	validate *validator.Validate
	logger   calculation.Logger

	mu      sync.RWMutex
	profile domain.UserProfile
}

// NewServer creates a server over the given inputs. A nil logger disables
// logging.
func NewServer(engine *calculation.Engine, programs []domain.GraduateProgram, graph domain.Graph, profile domain.UserProfile, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		engine:   engine,
		programs: programs,
		graph:    graph,
		validate: validator.New(),
		logger:   logger,
		profile:  profile,
	}
}

// Profile returns a copy of the current user profile.
func (s *Server) Profile() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/programs", s.handlePrograms)

		r.Get("/networth", s.handleNetWorth)
		r.Get("/networth/career", s.handleCareerNetWorth)
		r.Get("/networth/career/{nodeID}", s.handleCareerNodeNetWorth)
		r.Get("/networth/{programID}", s.handleProgramNetWorth)
		r.Get("/networth/{programID}/compare", s.handleProgramCompare)

		r.Get("/affordability", s.handleAffordability)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleUpdateProfile)
		r.Get("/calibration-summary", s.handleCalibrationSummary)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "resource not found"})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "decision tree API is running",
	})
}
