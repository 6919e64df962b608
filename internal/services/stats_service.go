package services

import (
	"context"

	"github.com/Matraca130/axon-backend/internal/errors"
	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/repository"
)

// StatsService exposes read-only study aggregates
type StatsService interface {
	LearnerSummary(ctx context.Context, learnerID string) (*models.LearnerSummary, error)
}

type statsService struct {
	stats repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) LearnerSummary(ctx context.Context, learnerID string) (*models.LearnerSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching learner summary: learner_id=%s", learnerID)

	summary, err := s.stats.LearnerSummary(ctx, learnerID)
	if err != nil {
		log.Error("failed to get learner summary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return summary, nil
}
