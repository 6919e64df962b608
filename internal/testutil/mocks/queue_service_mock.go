package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/queue"
)

// MockQueueService is a mock implementation of services.QueueService
type MockQueueService struct {
	mock.Mock
}

func (m *MockQueueService) BuildQueue(ctx context.Context, learnerID string, params queue.Params) (*models.QueueResult, error) {
	args := m.Called(ctx, learnerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QueueResult), args.Error(1)
}
