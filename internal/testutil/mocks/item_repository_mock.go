package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Matraca130/axon-backend/internal/models"
)

// MockItemRepository is a mock implementation of repository.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) ActiveItems(ctx context.Context) ([]models.LearningItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearningItem), args.Error(1)
}
