package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/repository"
)

type masteryRepository struct {
	db *sqlx.DB
}

// NewMasteryRepository creates a new MasteryRepository implementation
func NewMasteryRepository(db *sqlx.DB) repository.MasteryRepository {
	return &masteryRepository{db: db}
}

func (r *masteryRepository) MasteryByLearner(ctx context.Context, learnerID string) (map[string]models.ConceptMastery, error) {
	log := logger.FromContext(ctx).WithPrefix("mastery_repo")
	log.Debug("fetching concept mastery: learner_id=%s", learnerID)

	query, args, err := sqlBuilder.
		Select("m.learner_id", "m.concept_id", "m.p_know", "m.total_attempts").
		From("concept_mastery m").
		Join("concepts c ON c.id = m.concept_id").
		Where(activeOnly("c")).
		Where("m.learner_id = ?", learnerID).
		ToSql()
	if err != nil {
		log.Error("failed to build mastery query: %v", err)
		return nil, err
	}

	var rows []models.ConceptMastery
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to query concept mastery: %v", err)
		return nil, err
	}

	out := make(map[string]models.ConceptMastery, len(rows))
	for _, m := range rows {
		// Guard against out-of-range values written by older graders.
		if m.PKnow < 0 {
			m.PKnow = 0
		} else if m.PKnow > 1 {
			m.PKnow = 1
		}
		out[m.ConceptID] = m
	}
	log.Debug("found mastery for %d concepts", len(out))
	return out, nil
}
