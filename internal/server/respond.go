package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Simba256/Decision-Tree/internal/domain"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
	}
}

// writeError maps the error taxonomy to HTTP statuses: rejected input is a
// 400, missing entities a 404, anything else a 500 with the detail kept out
// of the response body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.logger.Warnf("bad request: %v", err)
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		s.logger.Errorf("internal error: %v", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
