package api

import (
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	learnerID := learnerFromContext(r.Context())

	summary, err := s.StatsService.LearnerSummary(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, summary)
}
