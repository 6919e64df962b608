package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Matraca130/axon-backend/internal/models"
)

// MockMasteryRepository is a mock implementation of repository.MasteryRepository
type MockMasteryRepository struct {
	mock.Mock
}

func (m *MockMasteryRepository) MasteryByLearner(ctx context.Context, learnerID string) (map[string]models.ConceptMastery, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.ConceptMastery), args.Error(1)
}
