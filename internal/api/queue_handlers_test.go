package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Matraca130/axon-backend/internal/api"
	"github.com/Matraca130/axon-backend/internal/errors"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/queue"
	"github.com/Matraca130/axon-backend/internal/testutil/mocks"
)

const testLearner = "4f8a9b2c-1111-4222-8333-444455556666"

func emptyResult() *models.QueueResult {
	return &models.QueueResult{
		Entries: []models.QueueEntry{},
		Counters: models.QueueCounters{
			Limit:       20,
			GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			Weights:     queue.DefaultWeights(),
		},
	}
}

func doRequest(t *testing.T, svc *mocks.MockQueueService, target string, learnerID string) *httptest.ResponseRecorder {
	t.Helper()

	srv := &api.Server{QueueService: svc}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if learnerID != "" {
		req.Header.Set("X-Learner-ID", learnerID)
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error.Code
}

func TestHandleQueue_Success(t *testing.T) {
	svc := new(mocks.MockQueueService)
	svc.On("BuildQueue", mock.Anything, testLearner, queue.Params{}).Return(emptyResult(), nil)

	rec := doRequest(t, svc, "/api/queue", testLearner)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result models.QueueResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 20, result.Counters.Limit)
	svc.AssertExpectations(t)
}

func TestHandleQueue_PassesParams(t *testing.T) {
	scopeID := "7c1d2e3f-0000-4000-8000-000000000042"
	svc := new(mocks.MockQueueService)
	svc.On("BuildQueue", mock.Anything, testLearner, mock.MatchedBy(func(p queue.Params) bool {
		return p.ScopeID != nil && *p.ScopeID == scopeID && p.Limit == 50 && p.IncludeFuture
	})).Return(emptyResult(), nil)

	rec := doRequest(t, svc, "/api/queue?scope_id="+scopeID+"&limit=50&include_future=true", testLearner)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleQueue_MissingLearnerHeader(t *testing.T) {
	svc := new(mocks.MockQueueService)

	rec := doRequest(t, svc, "/api/queue", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec.Body.Bytes()))
	svc.AssertNotCalled(t, "BuildQueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleQueue_MalformedLearnerHeader(t *testing.T) {
	svc := new(mocks.MockQueueService)

	rec := doRequest(t, svc, "/api/queue", "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec.Body.Bytes()))
	svc.AssertNotCalled(t, "BuildQueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleQueue_NonNumericLimit(t *testing.T) {
	svc := new(mocks.MockQueueService)

	rec := doRequest(t, svc, "/api/queue?limit=abc", testLearner)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec.Body.Bytes()))
	svc.AssertNotCalled(t, "BuildQueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleQueue_InvalidIncludeFuture(t *testing.T) {
	svc := new(mocks.MockQueueService)

	rec := doRequest(t, svc, "/api/queue?include_future=maybe", testLearner)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "BuildQueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleQueue_ServiceValidationError(t *testing.T) {
	svc := new(mocks.MockQueueService)
	svc.On("BuildQueue", mock.Anything, testLearner, mock.Anything).
		Return(nil, errors.NewValidationError("scope_id", "must be a valid UUID"))

	rec := doRequest(t, svc, "/api/queue?scope_id=nope", testLearner)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec.Body.Bytes()))
}

func TestHandleQueue_UpstreamError(t *testing.T) {
	svc := new(mocks.MockQueueService)
	svc.On("BuildQueue", mock.Anything, testLearner, mock.Anything).
		Return(nil, errors.NewUpstreamError("scheduling", assert.AnError))

	rec := doRequest(t, svc, "/api/queue", testLearner)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "UPSTREAM_ERROR", errorCode(t, rec.Body.Bytes()))
}

func TestHealth_NoAuthRequired(t *testing.T) {
	svc := new(mocks.MockQueueService)

	rec := doRequest(t, svc, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
