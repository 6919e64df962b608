package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/repository"
)

type statsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sqlx.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) LearnerSummary(ctx context.Context, learnerID string) (*models.LearnerSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching learner summary: learner_id=%s", learnerID)

	var s models.LearnerSummary
	err := r.db.GetContext(ctx, &s, `
SELECT
    (SELECT COUNT(*) FROM items i WHERE i.active = 1 AND i.deleted_at IS NULL) AS total_items,
    COUNT(sc.item_id) AS items_scheduled,
    COUNT(CASE WHEN sc.due_at IS NOT NULL AND sc.due_at <= CURRENT_TIMESTAMP THEN 1 END) AS items_due,
    (SELECT COUNT(*) FROM items i
     WHERE i.active = 1 AND i.deleted_at IS NULL
       AND NOT EXISTS (SELECT 1 FROM item_scheduling s2 WHERE s2.item_id = i.id AND s2.learner_id = ?)) AS items_new,
    (SELECT COUNT(*) FROM concept_mastery m WHERE m.learner_id = ?) AS concepts_tracked,
    (SELECT COUNT(*) FROM concept_mastery m WHERE m.learner_id = ? AND m.p_know >= 0.8) AS concepts_mastered,
    (SELECT COUNT(*) FROM concept_mastery m WHERE m.learner_id = ? AND m.p_know < 0.5 AND m.total_attempts >= 3) AS concepts_struggling,
    (SELECT COALESCE(AVG(m.p_know), 0) FROM concept_mastery m WHERE m.learner_id = ?) AS avg_p_know,
    COALESCE(AVG(sc.stability), 0) AS avg_stability,
    COALESCE(SUM(sc.lapses), 0) AS total_lapses,
    COALESCE(SUM(sc.repetitions), 0) AS total_repetitions
FROM item_scheduling sc
JOIN items i ON i.id = sc.item_id AND i.active = 1 AND i.deleted_at IS NULL
WHERE sc.learner_id = ?
`, learnerID, learnerID, learnerID, learnerID, learnerID, learnerID)
	if err != nil {
		log.Error("failed to get learner summary: %v", err)
		return nil, err
	}
	return &s, nil
}
