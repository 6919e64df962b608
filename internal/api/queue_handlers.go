package api

import (
	"net/http"
	"strconv"

	"github.com/Matraca130/axon-backend/internal/errors"
	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/queue"
)

func (s *Server) handleQueue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	learnerID := learnerFromContext(r.Context())

	params := queue.Params{}

	if v := r.URL.Query().Get("scope_id"); v != "" {
		params.ScopeID = &v
	}

	// Out-of-range limits are clamped downstream, not rejected; only a
	// non-numeric value is a client error.
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			log.Warn("invalid limit value: %s", v)
			handleError(w, r, errors.NewBadRequestError("invalid limit"))
			return
		}
		params.Limit = limit
	}

	if v := r.URL.Query().Get("include_future"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			log.Warn("invalid include_future value: %s", v)
			handleError(w, r, errors.NewBadRequestError("invalid include_future"))
			return
		}
		params.IncludeFuture = include
	}

	log.Debug("building queue: scope_id=%v, limit=%d, include_future=%t",
		params.ScopeID, params.Limit, params.IncludeFuture)

	result, err := s.QueueService.BuildQueue(r.Context(), learnerID, params)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, result)
}
