package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Matraca130/axon-backend/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) LearnerSummary(ctx context.Context, learnerID string) (*models.LearnerSummary, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LearnerSummary), args.Error(1)
}
