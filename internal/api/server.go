package api

import (
	"encoding/json"
	"net/http"

	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/services"
)

// Server holds the HTTP handlers' collaborators.
type Server struct {
	QueueService services.QueueService
	StatsService services.StatsService
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
