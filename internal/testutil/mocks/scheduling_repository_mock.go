package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Matraca130/axon-backend/internal/models"
)

// MockSchedulingRepository is a mock implementation of repository.SchedulingRepository
type MockSchedulingRepository struct {
	mock.Mock
}

func (m *MockSchedulingRepository) SchedulingByLearner(ctx context.Context, learnerID string, dueBefore *time.Time) (map[string]models.ItemScheduling, error) {
	args := m.Called(ctx, learnerID, dueBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.ItemScheduling), args.Error(1)
}
