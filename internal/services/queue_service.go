package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Matraca130/axon-backend/internal/errors"
	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/queue"
)

// QueueService builds ranked study queues for learners
type QueueService interface {
	BuildQueue(ctx context.Context, learnerID string, params queue.Params) (*models.QueueResult, error)
}

type queueService struct {
	assembler *queue.Assembler
}

// NewQueueService creates a new QueueService
func NewQueueService(assembler *queue.Assembler) QueueService {
	return &queueService{assembler: assembler}
}

func (s *queueService) BuildQueue(ctx context.Context, learnerID string, params queue.Params) (*models.QueueResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("building study queue: learner_id=%s", learnerID)

	// Reject malformed scope ids before any I/O happens.
	if params.ScopeID != nil {
		if _, err := uuid.Parse(*params.ScopeID); err != nil {
			return nil, errors.NewValidationError("scope_id", "must be a valid UUID")
		}
	}

	result, err := s.assembler.BuildQueue(ctx, learnerID, params)
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return nil, err
		}
		log.Error("queue build failed: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return result, nil
}
