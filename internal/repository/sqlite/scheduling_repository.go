package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/repository"
)

type schedulingRepository struct {
	db *sqlx.DB
}

// NewSchedulingRepository creates a new SchedulingRepository implementation
func NewSchedulingRepository(db *sqlx.DB) repository.SchedulingRepository {
	return &schedulingRepository{db: db}
}

func (r *schedulingRepository) SchedulingByLearner(ctx context.Context, learnerID string, dueBefore *time.Time) (map[string]models.ItemScheduling, error) {
	log := logger.FromContext(ctx).WithPrefix("scheduling_repo")
	log.Debug("fetching item scheduling: learner_id=%s, due_before=%v", learnerID, dueBefore)

	q := sqlBuilder.
		Select("s.learner_id", "s.item_id", "s.stability", "s.difficulty",
			"s.due_at", "s.last_review_at", "s.repetitions", "s.lapses", "s.state").
		From("item_scheduling s").
		Join("items i ON i.id = s.item_id").
		Where(activeOnly("i")).
		Where("s.learner_id = ?", learnerID)
	// Rows with no due time must survive the prefilter: they carry real
	// review history and are never excluded by due-ness checks.
	if dueBefore != nil {
		q = q.Where("(s.due_at IS NULL OR s.due_at <= ?)", *dueBefore)
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Error("failed to build scheduling query: %v", err)
		return nil, err
	}

	var rows []models.ItemScheduling
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to query item scheduling: %v", err)
		return nil, err
	}

	out := make(map[string]models.ItemScheduling, len(rows))
	for _, s := range rows {
		out[s.ItemID] = s
	}
	log.Debug("found scheduling for %d items", len(out))
	return out, nil
}
